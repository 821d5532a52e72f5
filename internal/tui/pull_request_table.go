package tui

import (
	"fmt"
	"prtrack/internal/domain/pullrequest"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	prNumberColumn = iota
	prTitleColumn
	prAuthorColumn
	prLabelsColumn
	prStatusColumn
	prAgeColumn
)

var now = time.Now

type pullRequestTable struct {
	View  *tview.Table
	icons map[string]string
	rows  []*pullrequest.Entity
}

func newPullRequestTable(icons map[string]string) *pullRequestTable {
	table := tview.NewTable()
	table.
		SetBorders(false).
		SetFixed(1, 0).
		SetSelectable(true, false).
		SetTitle("Pull requests").
		SetBorder(true)

	return &pullRequestTable{
		View:  table,
		icons: icons,
	}
}

// labelColor normalizes a server color ("d73a4a" or "#d73a4a") into a tview
// color tag value.
func labelColor(c string) string {
	c = strings.TrimPrefix(strings.TrimSpace(c), "#")
	if len(c) != 6 {
		return ""
	}
	if _, err := strconv.ParseUint(c, 16, 32); err != nil {
		return ""
	}

	return "#" + strings.ToLower(c)
}

func labelsText(labels []pullrequest.Label) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		name := tview.Escape(l.Name)
		if c := labelColor(l.Color); c != "" {
			name = fmt.Sprintf("[%s]%s[-]", c, name)
		}
		parts = append(parts, name)
	}

	return strings.Join(parts, " ")
}

func ageText(createdAt string, at time.Time) string {
	created, err := pullrequest.ParseCreatedAt(createdAt, at.Location())
	if err != nil {
		return "-"
	}

	return fmt.Sprintf("%dd", pullrequest.ElapsedDays(created, at))
}

func (prt *pullRequestTable) titleText(pr *pullrequest.Entity) string {
	title := tview.Escape(pr.Title)
	if pr.Draft {
		title = tview.Escape(prt.icons["Draft"]) + " " + title
	}

	return title
}

func (prt *pullRequestTable) redraw(prs []*pullrequest.Entity) {
	prt.rows = prs
	prt.View.Clear()

	headerStyle := tcell.StyleDefault.Bold(true)
	headers := []string{
		prt.icons["ID"],
		prt.icons["Title"],
		prt.icons["User"],
		prt.icons["Labels"],
		prt.icons["Status"],
		prt.icons["Age"],
	}
	for i, h := range headers {
		prt.View.SetCell(0, i, tview.NewTableCell(pad(h)).
			SetSelectable(false).
			SetStyle(headerStyle))
	}

	at := now()
	for i, pr := range prs {
		row := i + 1

		number := ""
		if pr.Number > 0 {
			number = strconv.Itoa(pr.Number)
		}

		titleColor := NormalColor
		if pr.Draft {
			titleColor = MutedColor
		}

		status := pullrequest.ClassifyStatus(pr.Status)
		age := pullrequest.ClassifyAgeAt(pr.CreatedAt, at)

		prt.View.SetCell(row, prNumberColumn, tview.NewTableCell(pad(number)).
			SetTextColor(MutedColor))
		prt.View.SetCell(row, prTitleColumn, tview.NewTableCell(pad(prt.titleText(pr))).
			SetTextColor(titleColor).
			SetExpansion(1).
			SetMaxWidth(60))
		prt.View.SetCell(row, prAuthorColumn, tview.NewTableCell(pad(tview.Escape(pr.Author))))
		prt.View.SetCell(row, prLabelsColumn, tview.NewTableCell(pad(labelsText(pr.Labels))))
		prt.View.SetCell(row, prStatusColumn, tview.NewTableCell(pad(status.String())).
			SetTextColor(statusColor(status)))
		prt.View.SetCell(row, prAgeColumn, tview.NewTableCell(pad(ageText(pr.CreatedAt, at))).
			SetTextColor(ageColor(age)).
			SetAlign(tview.AlignRight))
	}

	if len(prs) > 0 {
		prt.View.Select(1, 0)
	}
}

func (prt *pullRequestTable) pullRequestAtRow(row int) (*pullrequest.Entity, bool) {
	i := row - 1
	if i < 0 || i >= len(prt.rows) {
		return nil, false
	}

	return prt.rows[i], true
}
