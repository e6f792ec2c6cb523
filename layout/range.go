package layout

// RangeKind selects how a Range windows content.
type RangeKind int

const (
	// RangeAll shows everything.
	RangeAll RangeKind = iota
	// RangeBounded shows Len units starting at Min; Min clamps so the
	// window stays full when possible.
	RangeBounded
	// RangeCapped shows up to Len units starting at Min; Min clamps to the
	// last unit, so the tail may show fewer.
	RangeCapped
	// RangeStepped pages by Len: page Step shows units [Step*Len, Step*Len+Len).
	RangeStepped
)

// Range is the window of content displayed in a layout. What a unit means
// depends on the layout: items for stacks and spans, lines for paragraphs.
type Range struct {
	Kind RangeKind
	// Min is the first visible unit for Bounded and Capped.
	Min int
	// Len is the window size, or the page size for Stepped.
	Len int
	// Step is the page index for Stepped.
	Step int
}

// Bounded returns a window of len units starting at min.
func Bounded(min, len int) Range {
	return Range{Kind: RangeBounded, Min: min, Len: len}
}

// Capped returns a window of up to len units starting at min.
func Capped(min, len int) Range {
	return Range{Kind: RangeCapped, Min: min, Len: len}
}

// Paged returns page step of size len.
func Paged(step, len int) Range {
	return Range{Kind: RangeStepped, Step: step, Len: len}
}

// Unbounded reports whether this range shows everything.
func (r Range) Unbounded() bool {
	return r.Kind == RangeAll
}

// Resolve clamps the range against the total unit count. Layouts call this
// before slicing so stale scroll positions self-correct.
func (r *Range) Resolve(total int) {
	switch r.Kind {
	case RangeAll:
	case RangeBounded:
		if max := total - r.Len; r.Min > max {
			r.Min = max
		}
		if r.Min < 0 {
			r.Min = 0
		}
	case RangeCapped:
		if r.Min > total-1 {
			r.Min = total - 1
		}
		if r.Min < 0 {
			r.Min = 0
		}
	case RangeStepped:
		if r.Len <= 0 {
			r.Step = 0
			return
		}
		if max := total / r.Len; r.Step > max {
			r.Step = max
		}
		if r.Step < 0 {
			r.Step = 0
		}
	}
}

// Span returns the visible half-open unit interval [lo, hi).
func (r Range) Span(total int) (lo, hi int) {
	switch r.Kind {
	case RangeAll:
		return 0, total
	case RangeBounded, RangeCapped:
		lo = r.Min
		hi = r.Min + r.Len
	case RangeStepped:
		lo = r.Step * r.Len
		hi = lo + r.Len
	}
	if lo < 0 {
		lo = 0
	}
	if hi > total {
		hi = total
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}
