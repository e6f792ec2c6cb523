package layout

// Stack is a size-agnostic mono-directional flow: cells are placed one after
// another along the direction and the layout grows to fit them.
type Stack struct {
	Direction Direction
}

// HStack returns a left to right stack.
func HStack() Stack {
	return Stack{Direction: LeftToRight}
}

// VStack returns a top to bottom stack.
func VStack() Stack {
	return Stack{Direction: TopToBottom}
}

func (s Stack) Place(info Info, items []Item, rng *Range) Output {
	d := s.Direction
	rng.Resolve(len(items))
	lo, hi := rng.Span(len(items))
	visible := items[lo:hi]

	margin := d.main(info.Margin)
	cursor := 0.0
	crossDim := 0.0
	type placement struct {
		index       int
		main, cross float64
	}
	placements := make([]placement, 0, len(visible))
	for _, item := range visible {
		if item.Control == ControlLinebreakMarker {
			continue
		}
		length := d.main(item.Dimension)
		if item.Control != ControlWhiteSpace {
			placements = append(placements, placement{
				index: item.Index,
				main:  cursor + (d.flowAnchor(d.main(item.Anchor))+0.5)*length,
				cross: d.cross(item.Anchor),
			})
		}
		cursor += length + margin
		crossDim = maxf(crossDim, d.cross(item.Dimension))
	}
	totalMain := cursor
	if len(placements) > 0 {
		totalMain -= margin
	}

	dim := d.compose(totalMain, crossDim)
	anchors := make([]Placed, 0, len(placements))
	for _, p := range placements {
		main := p.main
		if d.reversed() {
			main = totalMain - main
		}
		// The cross axis keeps the item's own anchor within the line.
		pos := d.compose(main, (p.cross+0.5)*crossDim)
		anchors = append(anchors, Placed{Index: p.index, Anchor: normalize(pos, dim)})
	}
	return Output{Anchors: anchors, Dimension: dim, MaxCount: len(items)}
}

func (s Stack) SizeAgnostic() bool {
	return true
}
