// Package prlist keeps the pull requests of the currently selected
// repository.
package prlist

import (
	"context"
	"prtrack/internal/domain/pullrequest"
	"prtrack/internal/eventloop"

	"github.com/rs/zerolog/log"
)

const MsgLoadFailed = "Failed to load pull requests"

type ControllerOptions struct {
	Gateway pullrequest.Gateway
	Loop    eventloop.Loop
	Context context.Context
}

// Controller fetches on every selection change. Responses are not tagged with
// the selection that issued them: whichever completion is applied last wins,
// even when it belongs to an older selection.
type Controller struct {
	gateway  pullrequest.Gateway
	loop     eventloop.Loop
	ctx      context.Context
	onChange []func()

	owner string
	name  string

	pullRequests []*pullrequest.Entity
	loading      bool
	err          string
}

func NewController(o *ControllerOptions) *Controller {
	c := &Controller{
		gateway:      o.Gateway,
		loop:         o.Loop,
		ctx:          o.Context,
		pullRequests: []*pullrequest.Entity{},
	}

	if c.loop == nil {
		c.loop = eventloop.Immediate{}
	}
	if c.ctx == nil {
		c.ctx = context.Background()
	}

	return c
}

func (c *Controller) OnChange(fn func()) {
	c.onChange = append(c.onChange, fn)
}

func (c *Controller) notify() {
	for _, fn := range c.onChange {
		fn()
	}
}

// SetSelection loads once per change of owner or name. Re-setting the same
// pair does nothing.
func (c *Controller) SetSelection(owner, name string) {
	if owner == c.owner && name == c.name {
		return
	}

	c.owner = owner
	c.name = name
	c.Load()
}

func (c *Controller) Load() {
	owner, name := c.owner, c.name
	if owner == "" || name == "" {
		return
	}

	c.loading = true
	c.pullRequests = []*pullrequest.Entity{}
	c.err = ""
	c.notify()

	c.loop.Go(func() func() {
		prs, err := c.gateway.List(c.ctx, &pullrequest.ListOptions{
			Owner: owner,
			Name:  name,
		})

		return func() {
			if err != nil {
				log.Error().Err(err).
					Str("owner", owner).
					Str("name", name).
					Msg("cannot load pull requests")
				c.err = MsgLoadFailed
				c.loading = false
				c.notify()
				return
			}

			log.Debug().
				Str("owner", owner).
				Str("name", name).
				Int("count", len(prs)).
				Msg("pull requests loaded")
			c.pullRequests = append([]*pullrequest.Entity{}, prs...)
			c.loading = false
			c.notify()
		}
	})
}

func (c *Controller) PullRequests() []*pullrequest.Entity {
	return append([]*pullrequest.Entity{}, c.pullRequests...)
}

func (c *Controller) Loading() bool {
	return c.loading
}

func (c *Controller) Error() string {
	return c.err
}

// Selection returns the pair the controller last loaded or was asked to load.
func (c *Controller) Selection() (owner, name string) {
	return c.owner, c.name
}
