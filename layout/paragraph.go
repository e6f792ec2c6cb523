package layout

// Paragraph is a multi-line span, like the layout of a webpage paragraph:
// items flow along Direction, wrap at the container's main-axis length, and
// lines stack along Stack. Range pages by line.
type Paragraph struct {
	// Direction of flow within a line.
	Direction Direction
	// Stack is the direction lines pile up in.
	Stack Direction
	// Stretch justifies every line but the last.
	Stretch bool
}

// NewParagraph returns a left to right, top to bottom paragraph.
func NewParagraph() Paragraph {
	return Paragraph{Direction: LeftToRight, Stack: TopToBottom}
}

type line struct {
	items []Item
	// extra minimum height contributed by linebreak markers.
	markerCross float64
}

func (p Paragraph) Place(info Info, items []Item, rng *Range) Output {
	d := p.Direction
	c := d.orthogonal(p.Stack)
	dimMain := d.main(info.Dimension)
	marginMain := d.main(info.Margin)
	marginCross := d.cross(info.Margin)

	lines := p.wrap(dimMain, marginMain, items)
	rng.Resolve(len(lines))
	lo, hi := rng.Span(len(lines))
	visible := lines[lo:hi]

	// First pass sizes each visible line, so item cross anchors can be
	// resolved against their own line.
	crossLens := make([]float64, len(visible))
	totalCross := 0.0
	for i, ln := range visible {
		crossLen := ln.markerCross
		for _, item := range ln.items {
			crossLen = maxf(crossLen, d.cross(item.Dimension))
		}
		crossLens[i] = crossLen
		totalCross += crossLen
		if i > 0 {
			totalCross += marginCross
		}
	}

	dim := d.compose(dimMain, totalCross)
	var anchors []Placed
	crossCursor := 0.0
	for i, ln := range visible {
		span := Span{Direction: d, Stretch: p.Stretch && lo+i < len(lines)-1}
		positions := span.mainPositions(dimMain, marginMain, ln.items)
		for j, item := range ln.items {
			if item.Control == ControlWhiteSpace {
				continue
			}
			main := positions[j]
			if d.reversed() {
				main = dimMain - main
			}
			flowCross := crossCursor + (c.flowAnchor(d.cross(item.Anchor))+0.5)*crossLens[i]
			cross := flowCross
			if c.reversed() {
				cross = totalCross - flowCross
			}
			pos := d.compose(main, cross)
			anchors = append(anchors, Placed{Index: item.Index, Anchor: normalize(pos, dim)})
		}
		crossCursor += crossLens[i] + marginCross
	}
	return Output{Anchors: anchors, Dimension: dim, MaxCount: len(lines)}
}

// wrap splits items into lines: greedy fill up to dimMain, explicit breaks on
// linebreak controls, whitespace trimmed at both ends of each line.
func (p Paragraph) wrap(dimMain, margin float64, items []Item) []line {
	d := p.Direction
	var lines []line
	var cur line
	curLen := 0.0

	flush := func() {
		for len(cur.items) > 0 && cur.items[len(cur.items)-1].Control == ControlWhiteSpace {
			cur.items = cur.items[:len(cur.items)-1]
		}
		if len(cur.items) > 0 || cur.markerCross > 0 {
			lines = append(lines, cur)
		}
		cur = line{}
		curLen = 0
	}

	for _, item := range items {
		if item.Control == ControlWhiteSpace && len(cur.items) == 0 {
			continue
		}
		if item.Control == ControlLinebreakMarker {
			cur.markerCross = maxf(cur.markerCross, d.cross(item.Dimension))
			flush()
			continue
		}
		length := d.main(item.Dimension)
		if len(cur.items) > 0 && curLen+margin+length > dimMain {
			flush()
			if item.Control == ControlWhiteSpace {
				continue
			}
		}
		if len(cur.items) > 0 {
			curLen += margin
		}
		cur.items = append(cur.items, item)
		curLen += length
		if item.Control == ControlLinebreak {
			flush()
		}
	}
	flush()
	return lines
}

func (p Paragraph) SizeAgnostic() bool {
	return false
}
