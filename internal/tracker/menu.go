package tracker

const (
	MenuWidth          = 192
	MenuHeightEstimate = 100
)

// Bounds is the bounding box of the element that triggered a menu.
type Bounds struct {
	Left   int
	Top    int
	Bottom int
}

type Position struct {
	X int
	Y int
}

// MenuGeometry parametrizes the placement heuristic. It assumes a menu of
// fixed estimated size and does no real collision detection.
type MenuGeometry struct {
	Width          int
	HeightEstimate int
	// AnchorOffset shifts the menu right so it overlaps the trigger.
	AnchorOffset int
	// EdgeMargin is the smallest x kept before snapping to the trigger.
	EdgeMargin int
	// Gap separates the menu from the bottom of the trigger.
	Gap int
}

var DefaultMenuGeometry = MenuGeometry{
	Width:          MenuWidth,
	HeightEstimate: MenuHeightEstimate,
	AnchorOffset:   20,
	EdgeMargin:     10,
	Gap:            5,
}

// Place puts the menu to the left of the trigger and below it, snapping to
// the trigger's left edge near the screen edge and flipping above the
// trigger when the estimated height would run past the viewport.
func (g MenuGeometry) Place(trigger Bounds, viewportHeight int) Position {
	x := trigger.Left - g.Width + g.AnchorOffset
	if x < g.EdgeMargin {
		x = trigger.Left
	}

	y := trigger.Bottom + g.Gap
	if y+g.HeightEstimate > viewportHeight {
		y = trigger.Top - g.HeightEstimate
	}

	return Position{X: x, Y: y}
}
