package prefab

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/framerect"
	"github.com/milk9111/framerect/ecs"
	"github.com/milk9111/framerect/ecs/component"
	"github.com/milk9111/framerect/layout"
)

// Build spawns the scene's entity tree into the world and returns the frame
// root.
func Build(w *ecs.World, spec *SceneSpec) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, fmt.Errorf("prefab: build: nil world or spec")
	}

	root := ecs.CreateEntity(w)
	at := framerect.Center
	if spec.Frame.Anchor != "" {
		parsed, ok := framerect.ParseAnchor(spec.Frame.Anchor)
		if !ok {
			return 0, fmt.Errorf("prefab: build: unknown frame anchor %q", spec.Frame.Anchor)
		}
		at = parsed
	}
	frame := component.FrameFromAnchorDimension(at, cp.Vector{X: spec.Frame.Width, Y: spec.Frame.Height}).WithZ(spec.Frame.Z)
	if err := ecs.Add(w, root, component.FrameComponent, &frame); err != nil {
		return 0, fmt.Errorf("prefab: build: %w", err)
	}
	if spec.Frame.Window {
		if err := ecs.Add(w, root, component.WindowFrameComponent, &component.WindowFrame{}); err != nil {
			return 0, fmt.Errorf("prefab: build: %w", err)
		}
	}

	for i := range spec.Nodes {
		if _, err := buildNode(w, root, &spec.Nodes[i]); err != nil {
			return 0, err
		}
	}
	return root, nil
}

func buildNode(w *ecs.World, parent ecs.Entity, node *NodeSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	w.SetParent(e, parent)

	t, err := node.Transform.toTransform2D()
	if err != nil {
		return 0, fmt.Errorf("prefab: node %s: %w", node.Name, err)
	}
	if err := ecs.Add(w, e, component.Transform2DComponent, &t); err != nil {
		return 0, fmt.Errorf("prefab: node %s: %w", node.Name, err)
	}

	if node.Dimension != nil {
		d := component.Dimension{Size: cp.Vector{X: node.Dimension.Width, Y: node.Dimension.Height}}
		if err := ecs.Add(w, e, component.DimensionComponent, &d); err != nil {
			return 0, fmt.Errorf("prefab: node %s: %w", node.Name, err)
		}
	}

	if node.Layout != nil {
		cont, err := node.Layout.toContainer()
		if err != nil {
			return 0, fmt.Errorf("prefab: node %s: %w", node.Name, err)
		}
		if err := ecs.Add(w, e, component.ContainerComponent, &cont); err != nil {
			return 0, fmt.Errorf("prefab: node %s: %w", node.Name, err)
		}
	}

	if node.Control != "" {
		ctrl, err := parseControl(node.Control)
		if err != nil {
			return 0, fmt.Errorf("prefab: node %s: %w", node.Name, err)
		}
		if err := ecs.Add(w, e, component.LayoutControlComponent, &ctrl); err != nil {
			return 0, fmt.Errorf("prefab: node %s: %w", node.Name, err)
		}
	}

	if node.Pickable != nil {
		pick := component.NewPickable()
		if node.Pickable.Layer != 0 {
			pick.Layer = component.PickLayer(node.Pickable.Layer)
		}
		if err := ecs.Add(w, e, component.PickableComponent, &pick); err != nil {
			return 0, fmt.Errorf("prefab: node %s: %w", node.Name, err)
		}
	}

	if node.OutOfFrame != nil {
		oof, err := node.OutOfFrame.toComponent()
		if err != nil {
			return 0, fmt.Errorf("prefab: node %s: %w", node.Name, err)
		}
		if err := ecs.Add(w, e, component.OutOfFrameComponent, &oof); err != nil {
			return 0, fmt.Errorf("prefab: node %s: %w", node.Name, err)
		}
	}

	if len(node.Tooltip) > 0 {
		dirs, err := parseDirections(node.Tooltip)
		if err != nil {
			return 0, fmt.Errorf("prefab: node %s: %w", node.Name, err)
		}
		tip := component.Tooltip{Directions: dirs}
		if err := ecs.Add(w, e, component.TooltipComponent, &tip); err != nil {
			return 0, fmt.Errorf("prefab: node %s: %w", node.Name, err)
		}
	}

	if node.Interpolate != nil {
		interp := component.Interpolate{
			Mode:   component.InterpolateExponentialDecay,
			Factor: node.Interpolate.Factor,
		}
		if err := ecs.Add(w, e, component.InterpolateComponent, &interp); err != nil {
			return 0, fmt.Errorf("prefab: node %s: %w", node.Name, err)
		}
	}

	if node.Label != nil {
		label := component.Label{Text: node.Label.Text}
		if err := ecs.Add(w, e, component.LabelComponent, &label); err != nil {
			return 0, fmt.Errorf("prefab: node %s: %w", node.Name, err)
		}
	}

	for i := range node.Children {
		if _, err := buildNode(w, e, &node.Children[i]); err != nil {
			return 0, err
		}
	}
	return e, nil
}

func (s *TransformSpec) toTransform2D() (framerect.Transform2D, error) {
	t := framerect.Identity2D()
	if s == nil {
		return t, nil
	}
	parse := func(name string, dst *framerect.Anchor) error {
		if name == "" {
			return nil
		}
		a, ok := framerect.ParseAnchor(name)
		if !ok {
			return fmt.Errorf("unknown anchor %q", name)
		}
		*dst = a
		return nil
	}
	if err := parse(s.Anchor, &t.Anchor); err != nil {
		return t, err
	}
	if err := parse(s.ParentAnchor, &t.ParentAnchor); err != nil {
		return t, err
	}
	if err := parse(s.Center, &t.Center); err != nil {
		return t, err
	}
	t.Offset = cp.Vector{X: s.OffsetX, Y: s.OffsetY}
	if s.Z != 0 {
		t.Z = s.Z
	}
	t.Rotation = s.Rotation
	if s.ScaleX != 0 || s.ScaleY != 0 {
		t.Scale = cp.Vector{X: s.ScaleX, Y: s.ScaleY}
	}
	return t, nil
}

func (s *LayoutSpec) toContainer() (component.Container, error) {
	var l layout.Layout
	switch s.Kind {
	case "", "bounds":
		l = layout.DefaultBounds()
	case "hstack":
		l = layout.HStack()
	case "vstack":
		l = layout.VStack()
	case "hbox":
		l = layout.Span{Direction: layout.LeftToRight, Stretch: s.Stretch}
	case "vbox":
		l = layout.Span{Direction: layout.TopToBottom, Stretch: s.Stretch}
	case "paragraph":
		l = layout.Paragraph{Direction: layout.LeftToRight, Stack: layout.TopToBottom, Stretch: s.Stretch}
	default:
		return component.Container{}, fmt.Errorf("unknown layout kind %q", s.Kind)
	}
	cont := component.NewContainer(l)
	cont.Margin = cp.Vector{X: s.MarginX, Y: s.MarginY}
	cont.Padding = cp.Vector{X: s.PaddingX, Y: s.PaddingY}
	return cont, nil
}

func (s *OutOfFrameSpec) toComponent() (component.OutOfFrame, error) {
	switch s.Mode {
	case "nudge":
		return component.OutOfFrame{Mode: component.OutOfFrameNudge}, nil
	case "anchor_swap":
		dirs, err := parseDirections(s.Directions)
		if err != nil {
			return component.OutOfFrame{}, err
		}
		return component.OutOfFrame{Mode: component.OutOfFrameAnchorSwap, Directions: dirs}, nil
	default:
		return component.OutOfFrame{}, fmt.Errorf("unknown out_of_frame mode %q", s.Mode)
	}
}

func parseControl(name string) (component.LayoutControl, error) {
	switch name {
	case "none":
		return component.LayoutControlNone, nil
	case "ignore":
		return component.LayoutControlIgnore, nil
	case "linebreak":
		return component.LayoutControlLinebreak, nil
	case "linebreak_marker":
		return component.LayoutControlLinebreakMarker, nil
	case "whitespace":
		return component.LayoutControlWhiteSpace, nil
	default:
		return 0, fmt.Errorf("unknown layout control %q", name)
	}
}

func parseDirections(names []string) ([]component.AnchorDirection, error) {
	out := make([]component.AnchorDirection, 0, len(names))
	for _, name := range names {
		switch name {
		case "top":
			out = append(out, component.DirectionTop)
		case "bottom":
			out = append(out, component.DirectionBottom)
		case "left":
			out = append(out, component.DirectionLeft)
		case "right":
			out = append(out, component.DirectionRight)
		default:
			return nil, fmt.Errorf("unknown direction %q", name)
		}
	}
	return out, nil
}
