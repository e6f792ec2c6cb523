package layout

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func vecApprox(a, b cp.Vector) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func findPlaced(t *testing.T, out Output, index int) Placed {
	t.Helper()
	for _, p := range out.Anchors {
		if p.Index == index {
			return p
		}
	}
	t.Fatalf("item %d not placed; anchors: %v", index, out.Anchors)
	return Placed{}
}

func TestHStackPlacement(t *testing.T) {
	items := []Item{
		{Index: 0, Dimension: cp.Vector{X: 10, Y: 10}},
		{Index: 1, Dimension: cp.Vector{X: 20, Y: 10}},
	}
	rng := Range{}
	out := HStack().Place(Info{}, items, &rng)

	if !vecApprox(out.Dimension, cp.Vector{X: 30, Y: 10}) {
		t.Fatalf("dimension = %v, want (30, 10)", out.Dimension)
	}
	if out.MaxCount != 2 {
		t.Fatalf("max count = %d, want 2", out.MaxCount)
	}
	a := findPlaced(t, out, 0)
	if !vecApprox(a.Anchor, cp.Vector{X: -1.0 / 3, Y: 0}) {
		t.Fatalf("first anchor = %v, want (-1/3, 0)", a.Anchor)
	}
	b := findPlaced(t, out, 1)
	if !vecApprox(b.Anchor, cp.Vector{X: 1.0 / 6, Y: 0}) {
		t.Fatalf("second anchor = %v, want (1/6, 0)", b.Anchor)
	}
}

func TestHStackMargin(t *testing.T) {
	items := []Item{
		{Index: 0, Dimension: cp.Vector{X: 10, Y: 10}},
		{Index: 1, Dimension: cp.Vector{X: 20, Y: 10}},
	}
	rng := Range{}
	out := HStack().Place(Info{Margin: cp.Vector{X: 5}}, items, &rng)

	if !vecApprox(out.Dimension, cp.Vector{X: 35, Y: 10}) {
		t.Fatalf("dimension = %v, want (35, 10)", out.Dimension)
	}
	a := findPlaced(t, out, 0)
	if !approx(a.Anchor.X, 5.0/35-0.5) {
		t.Fatalf("first anchor x = %v, want %v", a.Anchor.X, 5.0/35-0.5)
	}
	b := findPlaced(t, out, 1)
	if !approx(b.Anchor.X, 25.0/35-0.5) {
		t.Fatalf("second anchor x = %v, want %v", b.Anchor.X, 25.0/35-0.5)
	}
}

func TestVStackTopToBottom(t *testing.T) {
	items := []Item{
		{Index: 0, Dimension: cp.Vector{X: 10, Y: 10}},
		{Index: 1, Dimension: cp.Vector{X: 10, Y: 20}},
	}
	rng := Range{}
	out := VStack().Place(Info{}, items, &rng)

	if !vecApprox(out.Dimension, cp.Vector{X: 10, Y: 30}) {
		t.Fatalf("dimension = %v, want (10, 30)", out.Dimension)
	}
	// The first item lands on top.
	a := findPlaced(t, out, 0)
	if !approx(a.Anchor.Y, 1.0/3) {
		t.Fatalf("first anchor y = %v, want 1/3", a.Anchor.Y)
	}
	b := findPlaced(t, out, 1)
	if !approx(b.Anchor.Y, -1.0/6) {
		t.Fatalf("second anchor y = %v, want -1/6", b.Anchor.Y)
	}
}

func TestStackCrossAxisAnchor(t *testing.T) {
	items := []Item{
		{Index: 0, Anchor: cp.Vector{Y: 0.5}, Dimension: cp.Vector{X: 10, Y: 10}},
		{Index: 1, Anchor: cp.Vector{Y: -0.5}, Dimension: cp.Vector{X: 10, Y: 20}},
	}
	rng := Range{}
	out := HStack().Place(Info{}, items, &rng)

	// Line is 20 tall; the first item's top anchor sits at the line top,
	// the second item's bottom anchor at the line bottom.
	a := findPlaced(t, out, 0)
	if !approx(a.Anchor.Y, 0.5) {
		t.Fatalf("top-anchored item y = %v, want 0.5", a.Anchor.Y)
	}
	b := findPlaced(t, out, 1)
	if !approx(b.Anchor.Y, -0.5) {
		t.Fatalf("bottom-anchored item y = %v, want -0.5", b.Anchor.Y)
	}
}

func TestStackRangeWindow(t *testing.T) {
	items := []Item{
		{Index: 0, Dimension: cp.Vector{X: 10, Y: 10}},
		{Index: 1, Dimension: cp.Vector{X: 20, Y: 10}},
		{Index: 2, Dimension: cp.Vector{X: 30, Y: 10}},
	}
	rng := Bounded(1, 1)
	out := HStack().Place(Info{}, items, &rng)

	if len(out.Anchors) != 1 || out.Anchors[0].Index != 1 {
		t.Fatalf("anchors = %v, want only item 1", out.Anchors)
	}
	if !vecApprox(out.Dimension, cp.Vector{X: 20, Y: 10}) {
		t.Fatalf("dimension = %v, want (20, 10)", out.Dimension)
	}
	if out.MaxCount != 3 {
		t.Fatalf("max count = %d, want 3", out.MaxCount)
	}
}

func TestStackWhitespaceOccupiesWithoutAnchor(t *testing.T) {
	items := []Item{
		{Index: 0, Dimension: cp.Vector{X: 10, Y: 10}},
		{Index: 1, Dimension: cp.Vector{X: 5, Y: 0}, Control: ControlWhiteSpace},
		{Index: 2, Dimension: cp.Vector{X: 10, Y: 10}},
	}
	rng := Range{}
	out := HStack().Place(Info{}, items, &rng)

	if len(out.Anchors) != 2 {
		t.Fatalf("anchors = %v, want 2 placements", out.Anchors)
	}
	if !approx(out.Dimension.X, 25) {
		t.Fatalf("dimension x = %v, want 25", out.Dimension.X)
	}
	// Second word starts after the gap.
	b := findPlaced(t, out, 2)
	if !approx(b.Anchor.X, 20.0/25-0.5) {
		t.Fatalf("second anchor x = %v, want %v", b.Anchor.X, 20.0/25-0.5)
	}
}
