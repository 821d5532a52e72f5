package tui

import (
	"prtrack/internal/domain/repository"
	"prtrack/internal/tracker"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	repoNameColumn = iota
	repoCreatedColumn
	repoMenuColumn
)

// Rows above the first repository.
const repoHeaderRows = 1

type repoTable struct {
	View  *tview.Table
	icons map[string]string
	rows  []*repository.Entity
}

func pad(input string) string {
	return " " + input + " "
}

func newRepoTable(icons map[string]string) *repoTable {
	table := tview.NewTable()
	table.
		SetBorders(false).
		SetFixed(repoHeaderRows, 0).
		SetSelectable(true, false).
		SetTitle("Repositories").
		SetBorder(true)

	return &repoTable{
		View:  table,
		icons: icons,
	}
}

func (rt *repoTable) redraw(repos []*repository.Entity, selected tracker.Selection, hasSelection bool, openMenu repository.EntityID) {
	row, _ := rt.View.GetSelection()
	rt.rows = repos
	rt.View.Clear()

	headerStyle := tcell.StyleDefault.Bold(true)
	headers := []string{rt.icons["Repository"], rt.icons["Created"], ""}
	for i, h := range headers {
		rt.View.SetCell(0, i, tview.NewTableCell(pad(h)).
			SetSelectable(false).
			SetStyle(headerStyle))
	}

	for i, r := range repos {
		color := NormalColor
		if hasSelection && r.Owner == selected.Owner && r.Name == selected.Name {
			color = SelectedColor
		}

		created := "-"
		if r.CreatedAt != nil {
			created = r.CreatedAt.Local().Format("2006-01-02")
		}

		menuColor := MutedColor
		if openMenu != "" && r.ID == openMenu {
			menuColor = SelectedColor
		}

		rt.View.SetCell(i+repoHeaderRows, repoNameColumn, tview.NewTableCell(pad(tview.Escape(r.FullName()))).
			SetTextColor(color).
			SetExpansion(1))
		rt.View.SetCell(i+repoHeaderRows, repoCreatedColumn, tview.NewTableCell(pad(created)).
			SetTextColor(MutedColor))
		rt.View.SetCell(i+repoHeaderRows, repoMenuColumn, tview.NewTableCell(pad(rt.icons["Menu"])).
			SetTextColor(menuColor).
			SetAlign(tview.AlignRight))
	}

	if len(repos) == 0 {
		return
	}
	if row < repoHeaderRows {
		row = repoHeaderRows
	}
	if row > len(repos) {
		row = len(repos)
	}
	rt.View.Select(row, 0)
}

func (rt *repoTable) repoAtRow(row int) (*repository.Entity, bool) {
	i := row - repoHeaderRows
	if i < 0 || i >= len(rt.rows) {
		return nil, false
	}

	return rt.rows[i], true
}

func (rt *repoTable) selectedRepo() (*repository.Entity, bool) {
	row, _ := rt.View.GetSelection()
	return rt.repoAtRow(row)
}

// rowAtY maps a screen line inside the table onto a table row, accounting for
// the fixed header and the scroll offset.
func rowAtY(innerY, rowOffset, y int) int {
	rel := y - innerY
	if rel < repoHeaderRows {
		return rel
	}

	return rel + rowOffset
}

// rowScreenY is the inverse of rowAtY. It reports false for rows scrolled out
// of view.
func rowScreenY(innerY, innerHeight, rowOffset, row int) (int, bool) {
	if row < repoHeaderRows {
		return innerY + row, row >= 0
	}

	rel := row - rowOffset
	if rel < repoHeaderRows || rel >= innerHeight {
		return 0, false
	}

	return innerY + rel, true
}

func (rt *repoTable) triggerLeft() int {
	x, _, w, _ := rt.View.GetInnerRect()
	return x + w - triggerWidth
}

// triggerAt reports the repository whose menu trigger covers the screen
// point.
func (rt *repoTable) triggerAt(x, y int) (*repository.Entity, bool) {
	ix, iy, iw, ih := rt.View.GetInnerRect()
	if x < rt.triggerLeft() || x >= ix+iw || y < iy || y >= iy+ih {
		return nil, false
	}

	rowOffset, _ := rt.View.GetOffset()
	return rt.repoAtRow(rowAtY(iy, rowOffset, y))
}

// triggerBounds is the trigger cell of the repository's row on screen.
func (rt *repoTable) triggerBounds(id repository.EntityID) (tracker.Bounds, bool) {
	for i, r := range rt.rows {
		if r.ID != id {
			continue
		}

		_, iy, _, ih := rt.View.GetInnerRect()
		rowOffset, _ := rt.View.GetOffset()
		y, ok := rowScreenY(iy, ih, rowOffset, i+repoHeaderRows)
		if !ok {
			return tracker.Bounds{}, false
		}

		return tracker.Bounds{Left: rt.triggerLeft(), Top: y, Bottom: y + 1}, true
	}

	return tracker.Bounds{}, false
}

// triggerElement is the on-screen trigger of one repository row.
type triggerElement struct {
	table *repoTable
	id    repository.EntityID
}

func (t triggerElement) InRect(x, y int) bool {
	r, ok := t.table.triggerAt(x, y)
	return ok && r.ID == t.id
}
