package tui

import (
	"fmt"
	"prtrack/internal/domain/pullrequest"
	"prtrack/internal/domain/repository"
	"prtrack/internal/eventloop"
	"prtrack/internal/overlay"
	"prtrack/internal/prlist"
	"prtrack/internal/tracker"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	mainPage = "main"
	menuPage = "row_menu"
)

type Options struct {
	Config       *viper.Viper
	Repos        repository.Gateway
	PullRequests pullrequest.Gateway
	// PrefillOwner and PrefillName seed the add form.
	PrefillOwner string
	PrefillName  string
}

type ui struct {
	app   *tview.Application
	pages *tview.Pages
	bus   *overlay.EventBus

	tracker *tracker.Controller
	prs     *prlist.Controller

	form       *addForm
	repos      *repoTable
	prTable    *pullRequestTable
	menu       *rowMenu
	repoStatus *tview.TextView
	prStatus   *tview.TextView

	menuShown    bool
	menuRow      repository.EntityID
	screenHeight int
}

func newUI(app *tview.Application, loop eventloop.Loop, o *Options) *ui {
	config := o.Config
	if config == nil {
		config = viper.New()
	}
	icons := initIconsMap(config)
	geometry := menuGeometry(config)

	u := &ui{
		app:   app,
		pages: tview.NewPages(),
		bus:   overlay.NewEventBus(),
	}

	u.prs = prlist.NewController(&prlist.ControllerOptions{
		Gateway: o.PullRequests,
		Loop:    loop,
	})
	u.tracker = tracker.NewController(&tracker.ControllerOptions{
		Gateway:  o.Repos,
		Loop:     loop,
		Listener: u.prs,
		Geometry: geometry,
	})

	u.form = newAddForm(u.tracker)
	u.repos = newRepoTable(icons)
	u.prTable = newPullRequestTable(icons)
	u.menu = newRowMenu(u.tracker, u.repos, u.bus, geometry)
	u.repoStatus = tview.NewTextView().SetDynamicColors(true)
	u.prStatus = tview.NewTextView().SetDynamicColors(true)

	u.bindKeys()

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(u.form.View, 7, 0, false).
		AddItem(u.repos.View, 0, 1, true).
		AddItem(u.repoStatus, 1, 0, false)
	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(u.prTable.View, 0, 1, false).
		AddItem(u.prStatus, 1, 0, false)
	grid := tview.NewFlex().
		AddItem(left, 0, 1, true).
		AddItem(right, 0, 2, false)

	u.pages.
		AddPage(mainPage, grid, true, true).
		AddPage(menuPage, u.menu.List, false, false)

	u.tracker.OnChange(u.renderRepos)
	u.prs.OnChange(u.renderPullRequests)

	if o.PrefillOwner != "" || o.PrefillName != "" {
		u.tracker.SetInput(o.PrefillOwner, o.PrefillName)
	}
	u.renderRepos()
	u.renderPullRequests()

	return u
}

func (u *ui) bindKeys() {
	u.repos.View.SetSelectedFunc(func(row, column int) {
		if r, ok := u.repos.repoAtRow(row); ok {
			u.tracker.SelectRepo(r.Owner, r.Name)
		}
	})
	u.repos.View.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			u.app.SetFocus(u.prTable.View)
			return nil
		}

		switch event.Rune() {
		case 'q':
			u.app.Stop()
			return nil
		case 'r':
			u.tracker.Reload()
			return nil
		case 'm':
			if r, ok := u.repos.selectedRepo(); ok {
				u.toggleMenu(r.ID)
			}
			return nil
		case 'a':
			u.app.SetFocus(u.form.View)
			return nil
		}

		return event
	})

	u.prTable.View.SetSelectedFunc(func(row, column int) {
		pr, ok := u.prTable.pullRequestAtRow(row)
		if !ok || pr.HTMLURL == "" {
			return
		}
		if err := openInBrowser(pr.HTMLURL); err != nil {
			log.Error().Err(err).Str("url", pr.HTMLURL).Msg("cannot open pull request")
		}
	})
	u.prTable.View.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab, tcell.KeyEscape:
			u.app.SetFocus(u.repos.View)
			return nil
		}
		if event.Rune() == 'q' {
			u.app.Stop()
			return nil
		}

		return event
	})

	u.form.View.SetCancelFunc(func() {
		u.app.SetFocus(u.repos.View)
	})

	u.app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		_, u.screenHeight = screen.Size()
		return false
	})
	u.app.SetMouseCapture(func(event *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
		if action != tview.MouseLeftClick {
			return event, action
		}

		x, y := event.Position()
		if u.handleClick(x, y) {
			return nil, action
		}

		return event, action
	})
}

// handleClick lets open menus see the click first, then toggles the menu of
// the row whose trigger was hit. It reports whether the click was consumed.
func (u *ui) handleClick(x, y int) bool {
	u.bus.Publish(overlay.TopicClick, overlay.ClickEvent{X: x, Y: y})

	r, ok := u.repos.triggerAt(x, y)
	if !ok {
		return false
	}

	u.toggleMenu(r.ID)

	return true
}

func (u *ui) toggleMenu(id repository.EntityID) {
	b, ok := u.repos.triggerBounds(id)
	if !ok {
		return
	}

	u.tracker.ToggleMenu(id, b, u.screenHeight)
}

func (u *ui) renderRepos() {
	repos := u.tracker.Repos()
	selection, hasSelection := u.tracker.Selection()
	openID, _ := u.tracker.OpenMenu()

	u.repos.redraw(repos, selection, hasSelection, openID)
	u.form.sync(u.tracker.Input())
	u.menu.sync(repos)

	switch {
	case u.tracker.Loading():
		u.repoStatus.SetText("Loading...")
	case u.tracker.Error() != "":
		u.repoStatus.SetText(fmt.Sprintf("[red]%s[-]", tview.Escape(u.tracker.Error())))
	default:
		u.repoStatus.SetText(fmt.Sprintf("[gray]%d repositories  a:add  m:menu  r:reload  q:quit[-]", len(repos)))
	}

	if u.menu.place() {
		// Keep the cursor across redraws of the same row's menu.
		if !u.menuShown || openID != u.menuRow {
			u.menu.List.SetCurrentItem(0)
			u.menuRow = openID
		}
		if !u.menuShown {
			u.pages.ShowPage(menuPage)
			u.app.SetFocus(u.menu.List)
			u.menuShown = true
		}
		return
	}

	if u.menuShown {
		u.pages.HidePage(menuPage)
		u.app.SetFocus(u.repos.View)
		u.menuShown = false
	}
}

func (u *ui) renderPullRequests() {
	prs := u.prs.PullRequests()
	u.prTable.redraw(prs)

	owner, name := u.prs.Selection()
	full := tview.Escape(owner + "/" + name)
	switch {
	case owner == "" || name == "":
		u.prStatus.SetText("[gray]Select a repository to see its pull requests[-]")
	case u.prs.Loading():
		u.prStatus.SetText(fmt.Sprintf("Loading pull requests of %s...", full))
	case u.prs.Error() != "":
		u.prStatus.SetText(fmt.Sprintf("[red]%s[-]", tview.Escape(u.prs.Error())))
	default:
		u.prStatus.SetText(fmt.Sprintf("[gray]%s: %d pull requests[-]", full, len(prs)))
	}
}

func Run(o *Options) error {
	app := tview.NewApplication()
	u := newUI(app, &appLoop{app: app}, o)

	u.tracker.Initialize()

	return app.
		SetRoot(u.pages, true).
		SetFocus(u.repos.View).
		EnableMouse(true).
		Run()
}
