package tracker

import (
	"context"
	"prtrack/internal/domain/repository"
	"prtrack/internal/eventloop"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

const (
	MsgLoadFailed   = "Failed to load repositories"
	MsgAddFailed    = "Failed to add repository"
	MsgDeleteFailed = "Failed to delete repository"
)

type Selection struct {
	Owner string
	Name  string
}

// SelectionListener receives every explicit repository selection.
type SelectionListener interface {
	SetSelection(owner, name string)
}

type ControllerOptions struct {
	Gateway  repository.Gateway
	Loop     eventloop.Loop
	Listener SelectionListener
	// Geometry defaults to DefaultMenuGeometry when zero.
	Geometry MenuGeometry
	Context  context.Context
}

// Controller owns the tracked repository collection, the add form, the
// current selection and the single open row menu. All methods must be called
// from the goroutine the Loop delivers completions on.
type Controller struct {
	gateway  repository.Gateway
	loop     eventloop.Loop
	listener SelectionListener
	geometry MenuGeometry
	ctx      context.Context
	onChange []func()

	repos   []*repository.Entity
	loading bool
	err     string

	inputOwner string
	inputName  string

	selection    Selection
	hasSelection bool

	openMenuID   repository.EntityID
	menuOpen     bool
	menuPosition Position
}

func NewController(o *ControllerOptions) *Controller {
	c := &Controller{
		gateway:  o.Gateway,
		loop:     o.Loop,
		listener: o.Listener,
		geometry: o.Geometry,
		ctx:      o.Context,
		repos:    []*repository.Entity{},
	}

	if c.loop == nil {
		c.loop = eventloop.Immediate{}
	}
	if c.geometry == (MenuGeometry{}) {
		c.geometry = DefaultMenuGeometry
	}
	if c.ctx == nil {
		c.ctx = context.Background()
	}

	return c
}

// OnChange registers fn to run after every state mutation.
func (c *Controller) OnChange(fn func()) {
	c.onChange = append(c.onChange, fn)
}

func (c *Controller) notify() {
	for _, fn := range c.onChange {
		fn()
	}
}

func (c *Controller) Initialize() {
	c.loading = true
	c.err = ""
	c.notify()

	c.loop.Go(func() func() {
		repos, err := c.gateway.List(c.ctx)

		return func() {
			if err != nil {
				log.Error().Err(err).Msg("cannot load repositories")
				c.err = MsgLoadFailed
				c.loading = false
				c.notify()
				return
			}

			c.repos = append([]*repository.Entity{}, repos...)
			c.loading = false
			c.notify()
		}
	})
}

func (c *Controller) Reload() {
	c.Initialize()
}

func (c *Controller) SetInput(owner, name string) {
	c.inputOwner = owner
	c.inputName = name
}

func (c *Controller) Input() (owner, name string) {
	return c.inputOwner, c.inputName
}

// SubmitAdd does nothing unless both fields are set. Form input is cleared
// only when the server accepts the repository.
func (c *Controller) SubmitAdd(owner, name string) {
	if owner == "" || name == "" {
		return
	}

	c.loading = true
	c.notify()

	c.loop.Go(func() func() {
		repo, err := c.gateway.Add(c.ctx, &repository.AddOptions{
			Owner: owner,
			Name:  name,
		})

		return func() {
			if err != nil {
				log.Error().Err(err).
					Str("owner", owner).
					Str("name", name).
					Msg("cannot add repository")
				c.err = MsgAddFailed
				c.loading = false
				c.notify()
				return
			}

			c.repos = append(c.repos, repo)
			c.inputOwner = ""
			c.inputName = ""
			c.loading = false
			c.notify()
		}
	})
}

// RequestDelete closes whichever menu is open, then removes the repository
// locally once the server confirms.
func (c *Controller) RequestDelete(id repository.EntityID) {
	c.loading = true
	c.menuOpen = false
	c.openMenuID = ""
	c.notify()

	c.loop.Go(func() func() {
		err := c.gateway.Delete(c.ctx, &repository.DeleteOptions{ID: id})

		return func() {
			if err != nil {
				log.Error().Err(err).Str("id", string(id)).Msg("cannot delete repository")
				c.err = MsgDeleteFailed
				c.loading = false
				c.notify()
				return
			}

			idx := slices.IndexFunc(c.repos, func(r *repository.Entity) bool {
				return r.ID == id
			})
			if idx != -1 {
				c.repos = slices.Delete(c.repos, idx, idx+1)
			}
			c.loading = false
			c.notify()
		}
	})
}

// SelectRepo records the selection and hands it to the listener. It never
// fetches anything itself.
func (c *Controller) SelectRepo(owner, name string) {
	c.selection = Selection{Owner: owner, Name: name}
	c.hasSelection = true
	if c.listener != nil {
		c.listener.SetSelection(owner, name)
	}
	c.notify()
}

func (c *Controller) ToggleMenu(id repository.EntityID, trigger Bounds, viewportHeight int) {
	if c.menuOpen && c.openMenuID == id {
		c.CloseMenu()
		return
	}

	c.menuPosition = c.geometry.Place(trigger, viewportHeight)
	c.openMenuID = id
	c.menuOpen = true
	c.notify()
}

func (c *Controller) CloseMenu() {
	c.menuOpen = false
	c.openMenuID = ""
	c.notify()
}

func (c *Controller) IsMenuOpen(id repository.EntityID) bool {
	return c.menuOpen && c.openMenuID == id
}

func (c *Controller) OpenMenu() (repository.EntityID, bool) {
	return c.openMenuID, c.menuOpen
}

// MenuPosition is only meaningful while a menu is open.
func (c *Controller) MenuPosition() (Position, bool) {
	if !c.menuOpen {
		return Position{}, false
	}

	return c.menuPosition, true
}

func (c *Controller) Repos() []*repository.Entity {
	return append([]*repository.Entity{}, c.repos...)
}

// Repo looks a repository up in the local collection.
func (c *Controller) Repo(id repository.EntityID) (*repository.Entity, bool) {
	idx := slices.IndexFunc(c.repos, func(r *repository.Entity) bool {
		return r.ID == id
	})
	if idx == -1 {
		return nil, false
	}

	return c.repos[idx], true
}

func (c *Controller) Loading() bool {
	return c.loading
}

func (c *Controller) Error() string {
	return c.err
}

func (c *Controller) Selection() (Selection, bool) {
	return c.selection, c.hasSelection
}
