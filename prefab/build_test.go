package prefab

import (
	"path/filepath"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/framerect"
	"github.com/milk9111/framerect/ecs"
	"github.com/milk9111/framerect/ecs/component"
	"github.com/milk9111/framerect/layout"
)

func TestLoadSceneSpec(t *testing.T) {
	spec, err := LoadSceneSpec(filepath.Join("testdata", "menu.yaml"))
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}
	if spec.Frame.Width != 320 || spec.Frame.Height != 240 || !spec.Frame.Window {
		t.Fatalf("frame spec = %+v, want 320x240 window", spec.Frame)
	}
	if len(spec.Nodes) != 2 {
		t.Fatalf("got %d top nodes, want 2", len(spec.Nodes))
	}
	if len(spec.Nodes[0].Children) != 2 {
		t.Fatalf("menu has %d children, want 2", len(spec.Nodes[0].Children))
	}
}

func TestLoadSceneSpecMissingFile(t *testing.T) {
	if _, err := LoadSceneSpec(filepath.Join("testdata", "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestBuildSpawnsTree(t *testing.T) {
	spec, err := LoadSceneSpec(filepath.Join("testdata", "menu.yaml"))
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}

	w := ecs.NewWorld()
	root, err := Build(w, spec)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	frame, ok := ecs.Get(w, root, component.FrameComponent)
	if !ok || frame.Dimension != (cp.Vector{X: 320, Y: 240}) {
		t.Fatalf("frame = %+v ok=%v, want 320x240", frame, ok)
	}
	if !ecs.Has(w, root, component.WindowFrameComponent) {
		t.Fatal("window frame marker missing")
	}

	kids := w.Children(root)
	if len(kids) != 2 {
		t.Fatalf("root has %d children, want 2", len(kids))
	}
	menu, hint := kids[0], kids[1]

	cont, ok := ecs.Get(w, menu, component.ContainerComponent)
	if !ok {
		t.Fatal("menu should be a container")
	}
	stack, ok := cont.Layout.(layout.Stack)
	if !ok || stack.Direction != layout.TopToBottom {
		t.Fatalf("menu layout = %#v, want top to bottom stack", cont.Layout)
	}
	if cont.Margin != (cp.Vector{Y: 4}) || cont.Padding != (cp.Vector{X: 2, Y: 2}) {
		t.Fatalf("margin %v padding %v, want (0,4) and (2,2)", cont.Margin, cont.Padding)
	}
	t2d, ok := ecs.Get(w, menu, component.Transform2DComponent)
	if !ok || t2d.Anchor != framerect.TopCenter || !approxVec(t2d.Offset, cp.Vector{Y: -10}) {
		t.Fatalf("menu transform = %+v", t2d)
	}

	buttons := w.Children(menu)
	if len(buttons) != 2 {
		t.Fatalf("menu has %d children, want 2", len(buttons))
	}
	start, _ := ecs.Get(w, buttons[0], component.PickableComponent)
	if start == nil || start.Layer != component.DefaultPickLayer {
		t.Fatalf("start pickable = %+v, want default layer", start)
	}
	quit, _ := ecs.Get(w, buttons[1], component.PickableComponent)
	if quit == nil || quit.Layer != component.PickLayer(2) {
		t.Fatalf("quit pickable = %+v, want layer 2", quit)
	}

	ctrl, ok := ecs.Get(w, hint, component.LayoutControlComponent)
	if !ok || *ctrl != component.LayoutControlIgnore {
		t.Fatalf("hint control = %v, want ignore", ctrl)
	}
	label, ok := ecs.Get(w, hint, component.LabelComponent)
	if !ok || label.Text != "press start" {
		t.Fatalf("hint label = %+v", label)
	}
	interp, ok := ecs.Get(w, hint, component.InterpolateComponent)
	if !ok || interp.Mode != component.InterpolateExponentialDecay || interp.Factor != 0.25 {
		t.Fatalf("hint interpolate = %+v", interp)
	}
}

func TestBuildRejectsBadSpecs(t *testing.T) {
	cases := []struct {
		name string
		spec SceneSpec
	}{
		{"bad_frame_anchor", SceneSpec{Frame: FrameSpec{Anchor: "middle"}}},
		{"bad_layout_kind", SceneSpec{Nodes: []NodeSpec{{Layout: &LayoutSpec{Kind: "grid"}}}}},
		{"bad_control", SceneSpec{Nodes: []NodeSpec{{Control: "skip"}}}},
		{"bad_direction", SceneSpec{Nodes: []NodeSpec{{Tooltip: []string{"up"}}}}},
		{"bad_anchor", SceneSpec{Nodes: []NodeSpec{{Transform: &TransformSpec{Anchor: "middle"}}}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			if _, err := Build(w, &c.spec); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func approxVec(got, want cp.Vector) bool {
	const eps = 1e-9
	dx, dy := got.X-want.X, got.Y-want.Y
	return dx < eps && dx > -eps && dy < eps && dy > -eps
}
