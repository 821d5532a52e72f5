package tui

import (
	"prtrack/internal/tracker"

	"github.com/rivo/tview"
)

type addForm struct {
	View  *tview.Form
	owner *tview.InputField
	name  *tview.InputField
}

func newAddForm(t *tracker.Controller) *addForm {
	f := &addForm{
		owner: tview.NewInputField().SetLabel("Owner").SetPlaceholder("acme"),
		name:  tview.NewInputField().SetLabel("Name").SetPlaceholder("core"),
	}

	changed := func(string) {
		t.SetInput(f.owner.GetText(), f.name.GetText())
	}
	f.owner.SetChangedFunc(changed)
	f.name.SetChangedFunc(changed)

	f.View = tview.NewForm().
		AddFormItem(f.owner).
		AddFormItem(f.name).
		AddButton("Add", func() {
			owner, name := t.Input()
			t.SubmitAdd(owner, name)
		})
	f.View.
		SetTitle("Add repository").
		SetBorder(true)

	return f
}

// sync mirrors the controller's input into the fields. Fields are only
// touched when they differ so the cursor stays put while typing.
func (f *addForm) sync(owner, name string) {
	if f.owner.GetText() != owner {
		f.owner.SetText(owner)
	}
	if f.name.GetText() != name {
		f.name.SetText(name)
	}
}
