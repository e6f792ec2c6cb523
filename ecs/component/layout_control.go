package component

import "github.com/milk9111/framerect/layout"

// LayoutControl changes how a container treats this child.
type LayoutControl int

const (
	// LayoutControlNone participates normally.
	LayoutControlNone LayoutControl = iota
	// LayoutControlIgnore opts the child out of its container; it resolves
	// against the container's rectangle like a free child.
	LayoutControlIgnore
	// LayoutControlLinebreak breaks the line after this child.
	LayoutControlLinebreak
	// LayoutControlLinebreakMarker breaks without occupying space; the
	// child's dimension sets the minimum line height.
	LayoutControlLinebreakMarker
	// LayoutControlWhiteSpace occupies space but renders nothing and is
	// trimmed at line boundaries.
	LayoutControlWhiteSpace
)

// Layout maps the control onto the layout engine's vocabulary. Ignore is
// handled by the layout pass before items reach the engine.
func (c LayoutControl) Layout() layout.Control {
	switch c {
	case LayoutControlLinebreak:
		return layout.ControlLinebreak
	case LayoutControlLinebreakMarker:
		return layout.ControlLinebreakMarker
	case LayoutControlWhiteSpace:
		return layout.ControlWhiteSpace
	default:
		return layout.ControlNone
	}
}

var LayoutControlComponent = NewComponent[LayoutControl]()
