package prlist

import (
	"errors"
	"prtrack/internal/domain/pullrequest"
	"prtrack/internal/domain/repository"
	"prtrack/internal/eventloop"
	"prtrack/internal/tracker"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func titles(prs []*pullrequest.Entity) []string {
	out := make([]string, 0, len(prs))
	for _, pr := range prs {
		out = append(out, pr.Title)
	}

	return out
}

func twoRepoGateway() *pullrequest.MockGateway {
	return &pullrequest.MockGateway{Values: map[string][]*pullrequest.Entity{
		"acme/a": {{ID: "1", Title: "from a"}},
		"acme/b": {{ID: "2", Title: "from b"}, {ID: "3", Title: "also b"}},
	}}
}

func TestController_SetSelection(t *testing.T) {
	t.Run("loads once per change", func(t *testing.T) {
		gw := twoRepoGateway()
		c := NewController(&ControllerOptions{Gateway: gw})

		c.SetSelection("acme", "a")
		c.SetSelection("acme", "a")
		assert.Equal(t, 1, gw.CallCount())
		assert.Equal(t, []string{"from a"}, titles(c.PullRequests()))

		c.SetSelection("acme", "b")
		assert.Equal(t, 2, gw.CallCount())
		assert.Equal(t, &pullrequest.ListOptions{Owner: "acme", Name: "b"}, gw.Calls[1])
		assert.Equal(t, []string{"from b", "also b"}, titles(c.PullRequests()))
	})

	t.Run("does not load while a field is empty", func(t *testing.T) {
		gw := twoRepoGateway()
		c := NewController(&ControllerOptions{Gateway: gw})

		c.SetSelection("", "a")
		c.SetSelection("acme", "")
		assert.Equal(t, 0, gw.CallCount())
		assert.False(t, c.Loading())

		owner, name := c.Selection()
		assert.Equal(t, "acme", owner)
		assert.Equal(t, "", name)
	})
}

func TestController_Load(t *testing.T) {
	t.Run("clears the list as soon as a fetch starts", func(t *testing.T) {
		loop := &eventloop.Manual{}
		c := NewController(&ControllerOptions{Gateway: twoRepoGateway(), Loop: loop})

		c.SetSelection("acme", "a")
		loop.CompleteAll()
		assert.Len(t, c.PullRequests(), 1)

		c.SetSelection("acme", "b")
		assert.True(t, c.Loading())
		assert.Empty(t, c.PullRequests())

		loop.CompleteAll()
		assert.False(t, c.Loading())
		assert.Len(t, c.PullRequests(), 2)
	})

	t.Run("reports a fixed message and stays empty on failure", func(t *testing.T) {
		gw := twoRepoGateway()
		c := NewController(&ControllerOptions{Gateway: gw})
		c.SetSelection("acme", "a")

		gw.ErrorValue = errors.New("timeout")
		c.Load()

		assert.Equal(t, MsgLoadFailed, c.Error())
		assert.False(t, c.Loading())
		assert.Empty(t, c.PullRequests())
	})

	t.Run("clears the error on the next load", func(t *testing.T) {
		gw := twoRepoGateway()
		gw.ErrorValue = errors.New("timeout")
		loop := &eventloop.Manual{}
		c := NewController(&ControllerOptions{Gateway: gw, Loop: loop})
		c.SetSelection("acme", "a")
		loop.CompleteAll()
		assert.Equal(t, MsgLoadFailed, c.Error())

		gw.ErrorValue = nil
		c.Load()
		assert.Equal(t, "", c.Error())
		loop.CompleteAll()
		assert.Equal(t, []string{"from a"}, titles(c.PullRequests()))
	})

	t.Run("returns without a selection", func(t *testing.T) {
		gw := twoRepoGateway()
		c := NewController(&ControllerOptions{Gateway: gw})
		changes := 0
		c.OnChange(func() { changes++ })

		c.Load()
		assert.Equal(t, 0, gw.CallCount())
		assert.Equal(t, 0, changes)
	})
}

func TestController_OutOfOrderResponses(t *testing.T) {
	t.Run("newer response arriving first is shown", func(t *testing.T) {
		loop := &eventloop.Manual{}
		c := NewController(&ControllerOptions{Gateway: twoRepoGateway(), Loop: loop})

		c.SetSelection("acme", "a")
		c.SetSelection("acme", "b")
		assert.True(t, loop.Complete(1))

		assert.Equal(t, []string{"from b", "also b"}, titles(c.PullRequests()))
		assert.False(t, c.Loading())
	})

	t.Run("older response arriving last overwrites the newer one", func(t *testing.T) {
		loop := &eventloop.Manual{}
		c := NewController(&ControllerOptions{Gateway: twoRepoGateway(), Loop: loop})

		c.SetSelection("acme", "a")
		c.SetSelection("acme", "b")
		loop.Complete(1)
		loop.Complete(0)

		assert.Equal(t, []string{"from a"}, titles(c.PullRequests()))
		owner, name := c.Selection()
		assert.Equal(t, "acme", owner)
		assert.Equal(t, "b", name)
	})

	t.Run("responses in request order show the latest selection", func(t *testing.T) {
		loop := &eventloop.Manual{}
		c := NewController(&ControllerOptions{Gateway: twoRepoGateway(), Loop: loop})

		c.SetSelection("acme", "a")
		c.SetSelection("acme", "b")
		loop.CompleteAll()

		assert.Equal(t, []string{"from b", "also b"}, titles(c.PullRequests()))
	})
}

func TestController_TrackerSelection(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	gw := &pullrequest.MockGateway{Values: map[string][]*pullrequest.Entity{
		"acme/core": {{
			ID:        "pr1",
			Number:    7,
			Title:     "Fix",
			Status:    "Open",
			CreatedAt: now.Add(-6 * 24 * time.Hour).Format(time.RFC3339),
		}},
	}}
	prs := NewController(&ControllerOptions{Gateway: gw})
	repos := tracker.NewController(&tracker.ControllerOptions{
		Gateway: &repository.MockGateway{ListValue: []*repository.Entity{
			{ID: "1", Owner: "acme", Name: "core"},
		}},
		Listener: prs,
	})
	repos.Initialize()

	repos.SelectRepo("acme", "core")

	got := prs.PullRequests()
	if assert.Len(t, got, 1) {
		assert.Equal(t, pullrequest.StatusOpen, pullrequest.ClassifyStatus(got[0].Status))
		assert.Equal(t, pullrequest.AgeStale, pullrequest.ClassifyAgeAt(got[0].CreatedAt, now))
	}
	assert.Equal(t, 1, gw.CallCount())
}
