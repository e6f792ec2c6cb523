package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/framerect"
	"github.com/milk9111/framerect/ecs"
	"github.com/milk9111/framerect/ecs/component"
	"github.com/milk9111/framerect/layout"
)

const epsilon = 1e-9

func approx(got, want float64) bool {
	return math.Abs(got-want) <= epsilon
}

func vecApprox(got, want cp.Vector) bool {
	return approx(got.X, want.X) && approx(got.Y, want.Y)
}

func newFrame(t *testing.T, w *ecs.World, dim cp.Vector) ecs.Entity {
	t.Helper()
	root := ecs.CreateEntity(w)
	frame := component.FrameFromDimension(dim)
	if err := ecs.Add(w, root, component.FrameComponent, &frame); err != nil {
		t.Fatal(err)
	}
	return root
}

func addChild(t *testing.T, w *ecs.World, parent ecs.Entity, t2d framerect.Transform2D, dim cp.Vector) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.Transform2DComponent, &t2d); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.DimensionComponent, &component.Dimension{Size: dim}); err != nil {
		t.Fatal(err)
	}
	w.SetParent(e, parent)
	return e
}

func rectOf(t *testing.T, w *ecs.World, e ecs.Entity) framerect.RotatedRect {
	t.Helper()
	r, ok := ecs.Get(w, e, component.RotatedRectComponent)
	if !ok {
		t.Fatalf("entity %v has no resolved rect", e)
	}
	return *r
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) framerect.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		t.Fatalf("entity %v has no output transform", e)
	}
	return *tr
}

func TestLayoutLeafResolve(t *testing.T) {
	w := ecs.NewWorld()
	root := newFrame(t, w, cp.Vector{X: 200, Y: 100})

	t2d := framerect.Identity2D()
	t2d.Anchor = framerect.TopLeft
	t2d.Offset = cp.Vector{X: 10, Y: -5}
	child := addChild(t, w, root, t2d, cp.Vector{X: 40, Y: 20})

	NewLayoutSystem().Update(w)

	rect := rectOf(t, w, child)
	if !vecApprox(rect.Center, cp.Vector{X: -70, Y: 35}) {
		t.Fatalf("rect center = %v, want (-70, 35)", rect.Center)
	}
	if !vecApprox(rect.Dimension, cp.Vector{X: 40, Y: 20}) {
		t.Fatalf("rect dimension = %v, want (40, 20)", rect.Dimension)
	}
	tr := transformOf(t, w, child)
	if !vecApprox(tr.Translation, rect.Center) {
		t.Fatalf("translation = %v, want rect center %v", tr.Translation, rect.Center)
	}
}

func TestLayoutContainerPlacesChildren(t *testing.T) {
	w := ecs.NewWorld()
	root := newFrame(t, w, cp.Vector{X: 200, Y: 100})

	box := addChild(t, w, root, framerect.Identity2D(), cp.Vector{})
	cont := component.NewContainer(layout.HStack())
	if err := ecs.Add(w, box, component.ContainerComponent, &cont); err != nil {
		t.Fatal(err)
	}
	a := addChild(t, w, box, framerect.Identity2D(), cp.Vector{X: 10, Y: 10})
	b := addChild(t, w, box, framerect.Identity2D(), cp.Vector{X: 20, Y: 10})

	NewLayoutSystem().Update(w)

	// the stack grows the container to its content
	boxRect := rectOf(t, w, box)
	if !vecApprox(boxRect.Dimension, cp.Vector{X: 30, Y: 10}) {
		t.Fatalf("container dimension = %v, want (30, 10)", boxRect.Dimension)
	}
	if d, ok := ecs.Get(w, box, component.DimensionComponent); !ok || !vecApprox(d.Size, cp.Vector{X: 30, Y: 10}) {
		t.Fatalf("container Dimension component not updated: %v", d)
	}

	if rect := rectOf(t, w, a); !vecApprox(rect.Center, cp.Vector{X: -10, Y: 0}) {
		t.Fatalf("first child center = %v, want (-10, 0)", rect.Center)
	}
	if rect := rectOf(t, w, b); !vecApprox(rect.Center, cp.Vector{X: 5, Y: 0}) {
		t.Fatalf("second child center = %v, want (5, 0)", rect.Center)
	}
}

func TestLayoutPaddedFixedContainerKeepsDimension(t *testing.T) {
	w := ecs.NewWorld()
	root := newFrame(t, w, cp.Vector{X: 200, Y: 100})

	box := addChild(t, w, root, framerect.Identity2D(), cp.Vector{X: 100, Y: 20})
	cont := component.NewContainer(layout.HBox())
	cont.Padding = cp.Vector{X: 10, Y: 10}
	if err := ecs.Add(w, box, component.ContainerComponent, &cont); err != nil {
		t.Fatal(err)
	}
	addChild(t, w, box, framerect.Identity2D(), cp.Vector{X: 30, Y: 10})

	sys := NewLayoutSystem()
	// padding must not feed back into the stored dimension across frames
	for pass := 0; pass < 3; pass++ {
		sys.Update(w)

		rect := rectOf(t, w, box)
		if !vecApprox(rect.Dimension, cp.Vector{X: 120, Y: 40}) {
			t.Fatalf("pass %d: container rect dimension = %v, want (120, 40)", pass, rect.Dimension)
		}
		d, ok := ecs.Get(w, box, component.DimensionComponent)
		if !ok || !vecApprox(d.Size, cp.Vector{X: 100, Y: 20}) {
			t.Fatalf("pass %d: container Dimension = %v, want the original (100, 20)", pass, d)
		}
	}
}

func TestLayoutRangeHidesScrolledOutChildren(t *testing.T) {
	w := ecs.NewWorld()
	root := newFrame(t, w, cp.Vector{X: 200, Y: 100})

	box := addChild(t, w, root, framerect.Identity2D(), cp.Vector{})
	cont := component.NewContainer(layout.HStack())
	cont.Range = layout.Bounded(0, 1)
	if err := ecs.Add(w, box, component.ContainerComponent, &cont); err != nil {
		t.Fatal(err)
	}
	a := addChild(t, w, box, framerect.Identity2D(), cp.Vector{X: 10, Y: 10})
	b := addChild(t, w, box, framerect.Identity2D(), cp.Vector{X: 20, Y: 10})

	NewLayoutSystem().Update(w)

	if rect := rectOf(t, w, a); rect.Dimension == (cp.Vector{}) {
		t.Fatal("visible child should keep its dimension")
	}
	if rect := rectOf(t, w, b); rect.Dimension != (cp.Vector{}) {
		t.Fatalf("scrolled-out child should collapse, got %v", rect)
	}
}

func TestLayoutIgnoredChildBypassesContainer(t *testing.T) {
	w := ecs.NewWorld()
	root := newFrame(t, w, cp.Vector{X: 200, Y: 100})

	box := addChild(t, w, root, framerect.Identity2D(), cp.Vector{})
	cont := component.NewContainer(layout.HStack())
	if err := ecs.Add(w, box, component.ContainerComponent, &cont); err != nil {
		t.Fatal(err)
	}
	addChild(t, w, box, framerect.Identity2D(), cp.Vector{X: 10, Y: 10})

	free := addChild(t, w, box, framerect.Identity2D(), cp.Vector{X: 6, Y: 6})
	ctrl := component.LayoutControlIgnore
	if err := ecs.Add(w, free, component.LayoutControlComponent, &ctrl); err != nil {
		t.Fatal(err)
	}

	NewLayoutSystem().Update(w)

	// the ignored child resolves against the container center, not the stack
	if rect := rectOf(t, w, free); !vecApprox(rect.Center, cp.Vector{X: 0, Y: 0}) {
		t.Fatalf("ignored child center = %v, want (0, 0)", rect.Center)
	}
	// and does not contribute to the container's content size
	if rect := rectOf(t, w, box); !vecApprox(rect.Dimension, cp.Vector{X: 10, Y: 10}) {
		t.Fatalf("container dimension = %v, want (10, 10)", rect.Dimension)
	}
}

func TestLayoutNudgeKeepsRectInFrame(t *testing.T) {
	w := ecs.NewWorld()
	root := newFrame(t, w, cp.Vector{X: 100, Y: 100})

	t2d := framerect.Identity2D()
	t2d.ParentAnchor = framerect.TopRight
	t2d.Offset = cp.Vector{X: 20, Y: 0}
	child := addChild(t, w, root, t2d, cp.Vector{X: 20, Y: 20})
	oof := component.OutOfFrame{Mode: component.OutOfFrameNudge}
	if err := ecs.Add(w, child, component.OutOfFrameComponent, &oof); err != nil {
		t.Fatal(err)
	}

	NewLayoutSystem().Update(w)

	rect := rectOf(t, w, child)
	if !vecApprox(rect.Center, cp.Vector{X: 40, Y: 40}) {
		t.Fatalf("nudged center = %v, want (40, 40)", rect.Center)
	}
}

func TestLayoutTooltipAnchorSwap(t *testing.T) {
	w := ecs.NewWorld()
	root := newFrame(t, w, cp.Vector{X: 100, Y: 100})

	// a box hugging the top edge of the frame
	pt := framerect.Identity2D()
	pt.ParentAnchor = framerect.TopCenter
	pt.Anchor = framerect.TopCenter
	parent := addChild(t, w, root, pt, cp.Vector{X: 40, Y: 20})

	// tooltip prefers above, which cannot fit
	ct := framerect.Identity2D()
	ct.Anchor = framerect.BottomCenter
	ct.ParentAnchor = framerect.TopCenter
	tipE := addChild(t, w, parent, ct, cp.Vector{X: 30, Y: 20})
	tip := component.Tooltip{Directions: []component.AnchorDirection{component.DirectionTop, component.DirectionBottom}}
	if err := ecs.Add(w, tipE, component.TooltipComponent, &tip); err != nil {
		t.Fatal(err)
	}

	sched := ecs.NewScheduler(NewTooltipSystem(), NewLayoutSystem())
	sched.Update(w)

	rect := rectOf(t, w, tipE)
	if !vecApprox(rect.Center, cp.Vector{X: 0, Y: 20}) {
		t.Fatalf("tooltip center = %v, want flipped below at (0, 20)", rect.Center)
	}
}

func TestLayoutInterpolateExponentialDecay(t *testing.T) {
	w := ecs.NewWorld()
	root := newFrame(t, w, cp.Vector{X: 200, Y: 100})

	t2d := framerect.Identity2D()
	child := addChild(t, w, root, t2d, cp.Vector{X: 10, Y: 10})
	interp := component.Interpolate{Mode: component.InterpolateExponentialDecay, Factor: 0.5}
	if err := ecs.Add(w, child, component.InterpolateComponent, &interp); err != nil {
		t.Fatal(err)
	}

	sys := NewLayoutSystem()
	sys.Update(w)
	if tr := transformOf(t, w, child); !vecApprox(tr.Translation, cp.Vector{}) {
		t.Fatalf("first frame should snap, got %v", tr.Translation)
	}

	t2c, _ := ecs.Get(w, child, component.Transform2DComponent)
	t2c.Offset = cp.Vector{X: 10, Y: 0}

	sys.Update(w)
	if tr := transformOf(t, w, child); !vecApprox(tr.Translation, cp.Vector{X: 5, Y: 0}) {
		t.Fatalf("second frame should cover half the distance, got %v", tr.Translation)
	}
	sys.Update(w)
	if tr := transformOf(t, w, child); !vecApprox(tr.Translation, cp.Vector{X: 7.5, Y: 0}) {
		t.Fatalf("third frame should cover half the remainder, got %v", tr.Translation)
	}
}
