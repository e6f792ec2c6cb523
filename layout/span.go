package layout

// Span is a fixed-size single line. Items are grouped by their main-axis
// anchor into start, center, and end buckets and packed within each group;
// Stretch spreads the groups across the free space instead.
type Span struct {
	Direction Direction
	// Stretch justifies the line: equal gaps between all items, first and
	// last flush with the edges.
	Stretch bool
}

// HBox returns a left to right span.
func HBox() Span {
	return Span{Direction: LeftToRight}
}

// VBox returns a top to bottom span.
func VBox() Span {
	return Span{Direction: TopToBottom}
}

// spanBucket thresholds follow anchor naming: anchors within 0.16 of an axis
// count as centered.
const spanEpsilon = 0.16

func (s Span) Place(info Info, items []Item, rng *Range) Output {
	rng.Resolve(len(items))
	lo, hi := rng.Span(len(items))
	// Markers have no meaning on a single line. Whitespace occupies space
	// between items but is trimmed at the row ends, like paragraph rows.
	visible := make([]Item, 0, hi-lo)
	for _, item := range items[lo:hi] {
		if item.Control == ControlLinebreakMarker {
			continue
		}
		visible = append(visible, item)
	}
	for len(visible) > 0 && visible[0].Control == ControlWhiteSpace {
		visible = visible[1:]
	}
	for len(visible) > 0 && visible[len(visible)-1].Control == ControlWhiteSpace {
		visible = visible[:len(visible)-1]
	}

	d := s.Direction
	dimMain := d.main(info.Dimension)
	crossDim := 0.0
	for _, item := range visible {
		crossDim = maxf(crossDim, d.cross(item.Dimension))
	}
	crossDim = maxf(crossDim, d.cross(info.Dimension))
	dim := d.compose(dimMain, crossDim)

	positions := s.mainPositions(dimMain, d.main(info.Margin), visible)

	anchors := make([]Placed, 0, len(visible))
	for i, item := range visible {
		if item.Control == ControlWhiteSpace {
			continue
		}
		main := positions[i]
		if d.reversed() {
			main = dimMain - main
		}
		pos := d.compose(main, (d.cross(item.Anchor)+0.5)*crossDim)
		anchors = append(anchors, Placed{Index: item.Index, Anchor: normalize(pos, dim)})
	}
	return Output{Anchors: anchors, Dimension: dim, MaxCount: len(items)}
}

// mainPositions returns the main-axis position of each item's anchor in
// forward 0..dimMain coordinates, in input order.
func (s Span) mainPositions(dimMain, margin float64, visible []Item) []float64 {
	d := s.Direction
	positions := make([]float64, len(visible))

	if s.Stretch && len(visible) > 0 {
		content := 0.0
		for _, item := range visible {
			content += d.main(item.Dimension)
		}
		gap := 0.0
		if len(visible) > 1 {
			gap = (dimMain - content) / float64(len(visible)-1)
			if gap < margin {
				gap = margin
			}
		}
		cursor := 0.0
		if len(visible) == 1 {
			cursor = (dimMain - content) / 2
		}
		for i, item := range visible {
			length := d.main(item.Dimension)
			positions[i] = cursor + (d.flowAnchor(d.main(item.Anchor))+0.5)*length
			cursor += length + gap
		}
		return positions
	}

	type group struct {
		indices []int
		length  float64
	}
	var start, center, end group
	for i, item := range visible {
		g := &center
		switch anc := d.flowAnchor(d.main(item.Anchor)); {
		case anc < -spanEpsilon:
			g = &start
		case anc > spanEpsilon:
			g = &end
		}
		if len(g.indices) > 0 {
			g.length += margin
		}
		g.indices = append(g.indices, i)
		g.length += d.main(item.Dimension)
	}

	place := func(g group, cursor float64) {
		for _, i := range g.indices {
			length := d.main(visible[i].Dimension)
			positions[i] = cursor + (d.flowAnchor(d.main(visible[i].Anchor))+0.5)*length
			cursor += length + margin
		}
	}
	place(start, 0)
	place(center, (dimMain-center.length)/2)
	place(end, dimMain-end.length)
	return positions
}

func (s Span) SizeAgnostic() bool {
	return false
}
