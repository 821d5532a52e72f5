// Package overlay detects interactions that land outside an element, the
// building block for dismissing transient menus.
package overlay

// Element is anything that can answer whether a screen point falls inside
// it. tview primitives satisfy it through Box.InRect.
type Element interface {
	InRect(x, y int) bool
}

// Rect is a half-open cell rectangle [Left, Right) x [Top, Bottom).
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

func (r Rect) InRect(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

type union []Element

func (u union) InRect(x, y int) bool {
	for _, e := range u {
		if e != nil && e.InRect(x, y) {
			return true
		}
	}

	return false
}

// Union treats a point as inside when any of the elements contains it.
func Union(elements ...Element) Element {
	return union(elements)
}

// ClickOutside signals once per click whose point lies outside its element,
// and only while Enabled is set.
type ClickOutside struct {
	Enabled bool

	element   Element
	onOutside func()
	unmount   func()
}

func NewClickOutside(element Element, onOutside func()) *ClickOutside {
	return &ClickOutside{
		Enabled:   true,
		element:   element,
		onOutside: onOutside,
	}
}

// SetElement swaps the element containment is evaluated against.
func (c *ClickOutside) SetElement(element Element) {
	c.element = element
}

func (c *ClickOutside) HandleClick(x, y int) {
	if !c.Enabled || c.onOutside == nil {
		return
	}
	if c.element != nil && c.element.InRect(x, y) {
		return
	}

	c.onOutside()
}

// Mount installs the instance's single listener on bus. Mounting twice
// replaces the previous listener.
func (c *ClickOutside) Mount(bus *EventBus) {
	c.Unmount()
	c.unmount = bus.Subscribe(TopicClick, func(data interface{}) {
		if e, ok := data.(ClickEvent); ok {
			c.HandleClick(e.X, e.Y)
		}
	})
}

func (c *ClickOutside) Unmount() {
	if c.unmount != nil {
		c.unmount()
		c.unmount = nil
	}
}

func (c *ClickOutside) Mounted() bool {
	return c.unmount != nil
}
