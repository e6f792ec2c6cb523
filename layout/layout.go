// Package layout arranges one-dimensional sequences of rectangles inside a
// container rect. Layouts work on plain anchors and dimensions; they know
// nothing about entities or the host engine.
package layout

import "github.com/jakecoffman/cp"

// Control marks special behavior for an item inside a Container.
type Control int

const (
	// ControlNone causes no special behavior.
	ControlNone Control = iota
	// ControlIgnoreLayout opts the item out of layout placement entirely.
	// The layout pass handles it; Place never sees these items.
	ControlIgnoreLayout
	// ControlLinebreak breaks the line in a paragraph after this item.
	ControlLinebreak
	// ControlLinebreakMarker breaks the line without taking up space. The
	// item's dimension sets the line height and the item is discarded.
	ControlLinebreakMarker
	// ControlWhiteSpace is trimmed at the start and end of each row. Trimmed
	// items are discarded.
	ControlWhiteSpace
)

// IsLinebreak reports whether the control forces a line break.
func (c Control) IsLinebreak() bool {
	return c == ControlLinebreak || c == ControlLinebreakMarker
}

// Item is one entry handed to a layout. Index identifies the item back to the
// caller; placements refer to it.
type Item struct {
	// Index of the item in the caller's order.
	Index int
	// Anchor of the item within its cell, -0.5..0.5 space.
	Anchor cp.Vector
	// Dimension of the item.
	Dimension cp.Vector
	// Control behavior of the item.
	Control Control
}

// Placed pins an item at a normalized parent anchor.
type Placed struct {
	Index  int
	Anchor cp.Vector
}

// Info describes the container being laid into.
type Info struct {
	// Dimension of the container. Dynamic layouts may ignore it.
	Dimension cp.Vector
	// Margin between cells, always along the x and y axes regardless of
	// layout direction.
	Margin cp.Vector
}

// Output of a layout.
type Output struct {
	// Anchors of the placed items, normalized to -0.5..0.5 of Dimension.
	// Discarded items (markers, trimmed whitespace) are absent.
	Anchors []Placed
	// Dimension the content occupies.
	Dimension cp.Vector
	// MaxCount is the scrollable unit count: items for stacks and spans,
	// lines for paragraphs.
	MaxCount int
}

// Layout places a one-dimensional sequence of items.
//
// Implementations read and clamp rng to pick the visible window of content.
type Layout interface {
	Place(info Info, items []Item, rng *Range) Output
	// SizeAgnostic reports whether the result ignores the container
	// dimension.
	SizeAgnostic() bool
}

// normalize converts an absolute position inside dim (0..dim space, y up)
// into -0.5..0.5 anchor space. Zero axes map to the center.
func normalize(pos, dim cp.Vector) cp.Vector {
	return cp.Vector{X: normalizeAxis(pos.X, dim.X), Y: normalizeAxis(pos.Y, dim.Y)}
}

func normalizeAxis(pos, dim float64) float64 {
	if dim == 0 {
		return 0
	}
	return pos/dim - 0.5
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
