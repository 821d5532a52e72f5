package tui

import (
	"prtrack/internal/domain/repository"
	"prtrack/internal/overlay"
	"prtrack/internal/tracker"

	"github.com/rivo/tview"
)

const (
	menuItemView   = "View pull requests"
	menuItemDelete = "Delete repository"
)

// rowMenu draws the tracker's single open row menu. Every row owns a
// ClickOutside instance; only the open row's one is enabled.
type rowMenu struct {
	List    *tview.List
	tracker *tracker.Controller
	table   *repoTable
	bus     *overlay.EventBus
	outside map[repository.EntityID]*overlay.ClickOutside
	width   int
	height  int
}

func newRowMenu(
	t *tracker.Controller,
	table *repoTable,
	bus *overlay.EventBus,
	geometry tracker.MenuGeometry,
) *rowMenu {
	m := &rowMenu{
		List:    tview.NewList(),
		tracker: t,
		table:   table,
		bus:     bus,
		outside: make(map[repository.EntityID]*overlay.ClickOutside),
		width:   geometry.Width,
		height:  geometry.HeightEstimate,
	}

	m.List.
		ShowSecondaryText(false).
		AddItem(menuItemView, "", 'v', m.viewPullRequests).
		AddItem(menuItemDelete, "", 'd', m.deleteRepository).
		SetDoneFunc(t.CloseMenu).
		SetBorder(true)

	return m
}

func (m *rowMenu) viewPullRequests() {
	id, ok := m.tracker.OpenMenu()
	if !ok {
		return
	}
	r, ok := m.tracker.Repo(id)
	if !ok {
		return
	}

	m.tracker.CloseMenu()
	m.tracker.SelectRepo(r.Owner, r.Name)
}

func (m *rowMenu) deleteRepository() {
	if id, ok := m.tracker.OpenMenu(); ok {
		m.tracker.RequestDelete(id)
	}
}

// sync mounts a listener for every new row, drops the ones of removed rows
// and enables only the row whose menu is open.
func (m *rowMenu) sync(repos []*repository.Entity) {
	seen := make(map[repository.EntityID]bool, len(repos))
	for _, r := range repos {
		id := r.ID
		seen[id] = true

		co, ok := m.outside[id]
		if !ok {
			co = overlay.NewClickOutside(
				overlay.Union(m.List, triggerElement{table: m.table, id: id}),
				func() {
					if m.tracker.IsMenuOpen(id) {
						m.tracker.CloseMenu()
					}
				},
			)
			co.Mount(m.bus)
			m.outside[id] = co
		}
		co.Enabled = m.tracker.IsMenuOpen(id)
	}

	for id, co := range m.outside {
		if !seen[id] {
			co.Unmount()
			delete(m.outside, id)
		}
	}
}

// place moves the list to the tracker's menu position. It reports false while
// no menu is open.
func (m *rowMenu) place() bool {
	pos, ok := m.tracker.MenuPosition()
	if !ok {
		return false
	}

	m.List.SetRect(pos.X, pos.Y, m.width, m.height)

	return true
}
