package layout

import "github.com/jakecoffman/cp"

// Container is a configurable box that lays out a sequence of items.
type Container struct {
	// Layout policy; nil means DefaultBounds.
	Layout Layout
	// Margin between cells, always along the x and y axes regardless of
	// layout direction.
	Margin cp.Vector
	// Padding around the content, per side.
	Padding cp.Vector
	// Range windows the visible content.
	Range Range
	// Maximum is the runtime unit count of the last placement: items,
	// lines, or pages depending on the layout.
	Maximum int
}

// NewContainer returns a container using the given layout.
func NewContainer(l Layout) *Container {
	return &Container{Layout: l}
}

// Place lays out items inside a container of the given dimension, applying
// the visible range and padding, and records the unit count for scrolling.
func (c *Container) Place(dim cp.Vector, items []Item) Output {
	l := c.Layout
	if l == nil {
		l = DefaultBounds()
	}
	out := l.Place(Info{Dimension: dim, Margin: c.Margin}, items, &c.Range)
	c.Maximum = out.MaxCount

	padded := out.Dimension.Add(c.Padding.Mult(2))
	// Anchors stay pinned to the content area: rescale them from content
	// space to padded space.
	fac := cp.Vector{
		X: safeRatio(out.Dimension.X, padded.X),
		Y: safeRatio(out.Dimension.Y, padded.Y),
	}
	for i := range out.Anchors {
		out.Anchors[i].Anchor.X *= fac.X
		out.Anchors[i].Anchor.Y *= fac.Y
	}
	out.Dimension = padded
	return out
}

// SizeAgnostic reports whether the effective layout sizes itself from its
// content instead of the container dimension.
func (c *Container) SizeAgnostic() bool {
	if c.Layout == nil {
		return DefaultBounds().SizeAgnostic()
	}
	return c.Layout.SizeAgnostic()
}

// ScrollFraction returns the scroll position in 0..1.
func (c *Container) ScrollFraction() float64 {
	frac := 0.0
	switch c.Range.Kind {
	case RangeAll:
	case RangeBounded:
		if c.Maximum > c.Range.Len {
			frac = float64(c.Range.Min) / float64(c.Maximum-c.Range.Len)
		}
	case RangeCapped:
		if c.Maximum > 0 {
			frac = float64(c.Range.Min) / float64(c.Maximum)
		}
	case RangeStepped:
		if c.Range.Len > 0 {
			if pages := c.Maximum / c.Range.Len; pages > 0 {
				frac = float64(c.Range.Step) / float64(pages)
			}
		}
	}
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// SetScrollFraction moves the scroll position to a 0..1 fraction.
func (c *Container) SetScrollFraction(frac float64) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	switch c.Range.Kind {
	case RangeAll:
	case RangeBounded:
		if c.Maximum > c.Range.Len {
			c.Range.Min = int(float64(c.Maximum-c.Range.Len) * frac)
		} else {
			c.Range.Min = 0
		}
	case RangeCapped:
		c.Range.Min = int(float64(c.Maximum) * frac)
	case RangeStepped:
		if c.Range.Len > 0 {
			c.Range.Step = int(float64(c.Maximum/c.Range.Len) * frac)
		}
	}
}

// ScrollBy moves the window by a number of units. The next Place clamps any
// overshoot.
func (c *Container) ScrollBy(units int) {
	switch c.Range.Kind {
	case RangeAll:
	case RangeBounded, RangeCapped:
		c.Range.Min += units
		if c.Range.Min < 0 {
			c.Range.Min = 0
		}
	case RangeStepped:
		c.Range.Step += units
		if c.Range.Step < 0 {
			c.Range.Step = 0
		}
	}
}

func safeRatio(a, b float64) float64 {
	if b == 0 {
		return 1
	}
	return a / b
}
