package layout

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestHBoxBuckets(t *testing.T) {
	info := Info{Dimension: cp.Vector{X: 100, Y: 20}}
	items := []Item{
		{Index: 0, Anchor: cp.Vector{X: -0.5}, Dimension: cp.Vector{X: 10, Y: 10}},
		{Index: 1, Anchor: cp.Vector{X: -0.5}, Dimension: cp.Vector{X: 10, Y: 10}},
		{Index: 2, Dimension: cp.Vector{X: 10, Y: 10}},
		{Index: 3, Anchor: cp.Vector{X: 0.5}, Dimension: cp.Vector{X: 20, Y: 10}},
	}
	rng := Range{}
	out := HBox().Place(info, items, &rng)

	if !vecApprox(out.Dimension, cp.Vector{X: 100, Y: 20}) {
		t.Fatalf("dimension = %v, want (100, 20)", out.Dimension)
	}

	cases := []struct {
		index int
		wantX float64
	}{
		{0, -0.5},        // flush left
		{1, 10.0/100 - 0.5}, // packed after the first
		{2, 0},           // centered
		{3, 0.5},         // flush right
	}
	for _, c := range cases {
		p := findPlaced(t, out, c.index)
		if !approx(p.Anchor.X, c.wantX) {
			t.Fatalf("item %d anchor x = %v, want %v", c.index, p.Anchor.X, c.wantX)
		}
	}
}

func TestHBoxStretch(t *testing.T) {
	info := Info{Dimension: cp.Vector{X: 100, Y: 10}}
	items := []Item{
		{Index: 0, Dimension: cp.Vector{X: 10, Y: 10}},
		{Index: 1, Dimension: cp.Vector{X: 10, Y: 10}},
		{Index: 2, Dimension: cp.Vector{X: 10, Y: 10}},
	}
	rng := Range{}
	span := Span{Direction: LeftToRight, Stretch: true}
	out := span.Place(info, items, &rng)

	wantX := []float64{-0.45, 0, 0.45}
	for i, want := range wantX {
		p := findPlaced(t, out, i)
		if !approx(p.Anchor.X, want) {
			t.Fatalf("item %d anchor x = %v, want %v", i, p.Anchor.X, want)
		}
	}
}

func TestVBoxRespectsAnchorsTopToBottom(t *testing.T) {
	info := Info{Dimension: cp.Vector{X: 10, Y: 100}}
	items := []Item{
		{Index: 0, Anchor: cp.Vector{Y: 0.5}, Dimension: cp.Vector{X: 10, Y: 10}},
		{Index: 1, Anchor: cp.Vector{Y: -0.5}, Dimension: cp.Vector{X: 10, Y: 10}},
	}
	rng := Range{}
	out := VBox().Place(info, items, &rng)

	top := findPlaced(t, out, 0)
	if !approx(top.Anchor.Y, 0.5) {
		t.Fatalf("top-anchored item y = %v, want 0.5", top.Anchor.Y)
	}
	bottom := findPlaced(t, out, 1)
	if !approx(bottom.Anchor.Y, -0.5) {
		t.Fatalf("bottom-anchored item y = %v, want -0.5", bottom.Anchor.Y)
	}
}

func TestHBoxTrimsEdgeWhitespace(t *testing.T) {
	info := Info{Dimension: cp.Vector{X: 100, Y: 10}}
	items := []Item{
		{Index: 0, Anchor: cp.Vector{X: -0.5}, Dimension: cp.Vector{X: 10, Y: 10}, Control: ControlWhiteSpace},
		{Index: 1, Anchor: cp.Vector{X: -0.5}, Dimension: cp.Vector{X: 20, Y: 10}},
		{Index: 2, Anchor: cp.Vector{X: 0.5}, Dimension: cp.Vector{X: 10, Y: 10}, Control: ControlWhiteSpace},
	}
	rng := Range{}
	out := HBox().Place(info, items, &rng)

	if len(out.Anchors) != 1 {
		t.Fatalf("anchors = %d, want only the solid item", len(out.Anchors))
	}
	// trimmed whitespace must not displace the item from the edge
	p := findPlaced(t, out, 1)
	if !approx(p.Anchor.X, -0.5) {
		t.Fatalf("anchor x = %v, want flush left -0.5", p.Anchor.X)
	}
}

func TestHBoxInteriorWhitespaceSeparates(t *testing.T) {
	info := Info{Dimension: cp.Vector{X: 100, Y: 10}}
	items := []Item{
		{Index: 0, Anchor: cp.Vector{X: -0.5}, Dimension: cp.Vector{X: 10, Y: 10}},
		{Index: 1, Anchor: cp.Vector{X: -0.5}, Dimension: cp.Vector{X: 10, Y: 10}, Control: ControlWhiteSpace},
		{Index: 2, Anchor: cp.Vector{X: -0.5}, Dimension: cp.Vector{X: 10, Y: 10}},
	}
	rng := Range{}
	out := HBox().Place(info, items, &rng)

	if len(out.Anchors) != 2 {
		t.Fatalf("anchors = %d, want 2", len(out.Anchors))
	}
	second := findPlaced(t, out, 2)
	if !approx(second.Anchor.X, -0.3) {
		t.Fatalf("second item anchor x = %v, want -0.3 past the gap", second.Anchor.X)
	}
}

func TestSpanSingleStretchedItemCenters(t *testing.T) {
	info := Info{Dimension: cp.Vector{X: 100, Y: 10}}
	items := []Item{{Index: 0, Dimension: cp.Vector{X: 20, Y: 10}}}
	rng := Range{}
	span := Span{Direction: LeftToRight, Stretch: true}
	out := span.Place(info, items, &rng)

	p := findPlaced(t, out, 0)
	if !approx(p.Anchor.X, 0) {
		t.Fatalf("anchor x = %v, want 0", p.Anchor.X)
	}
}
