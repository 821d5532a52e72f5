package tui

import (
	"prtrack/internal/eventloop"

	"github.com/rivo/tview"
)

// appLoop runs gateway work on its own goroutine and hands the completion
// back to the tview event loop.
type appLoop struct {
	app *tview.Application
}

func (l *appLoop) Go(task eventloop.Task) {
	go func() {
		if done := task(); done != nil {
			l.app.QueueUpdateDraw(done)
		}
	}()
}
