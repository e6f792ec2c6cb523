package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/framerect"
	"github.com/milk9111/framerect/ecs"
	"github.com/milk9111/framerect/ecs/component"
	"github.com/milk9111/framerect/layout"
)

// LayoutSystem resolves every Frame tree each frame: containers place their
// children, every visited entity gets a RotatedRect in frame space and a
// parent-relative Transform.
type LayoutSystem struct {
	queue []layoutEntry
	next  []layoutEntry
}

func NewLayoutSystem() *LayoutSystem { return &LayoutSystem{} }

type layoutEntry struct {
	entity ecs.Entity
	parent framerect.ParentInfo
	chain  framerect.Affine
	// hidden subtrees (scrolled out of range) collapse to zero rects.
	hidden bool
}

func (s *LayoutSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, root := range w.Query(component.FrameComponent) {
		frame, ok := ecs.Get(w, root, component.FrameComponent)
		if !ok {
			continue
		}
		s.layoutFrame(w, root, *frame)
	}
}

func (s *LayoutSystem) layoutFrame(w *ecs.World, root ecs.Entity, frame component.Frame) {
	rect := frame.Rect()
	bounds := rect.BB()
	chain := rect.ChainAt(framerect.Center)

	setComponent(w, root, component.RotatedRectComponent, rect)

	s.queue = s.queue[:0]
	for _, child := range w.Children(root) {
		s.queue = append(s.queue, layoutEntry{
			entity: child,
			parent: framerect.ParentInfo{Dimension: frame.Dimension},
			chain:  chain,
		})
	}
	// breadth-first with a double-buffered queue, so siblings resolve
	// against a settled parent before any grandchild runs
	for len(s.queue) > 0 {
		s.next = s.next[:0]
		for _, entry := range s.queue {
			s.place(w, entry, bounds)
		}
		s.queue, s.next = s.next, s.queue
	}
}

func (s *LayoutSystem) place(w *ecs.World, entry layoutEntry, bounds cp.BB) {
	e := entry.entity
	if entry.hidden {
		setComponent(w, e, component.RotatedRectComponent, framerect.RotatedRect{})
		setComponent(w, e, component.TransformComponent, framerect.Transform{})
		for _, child := range w.Children(e) {
			s.next = append(s.next, layoutEntry{entity: child, hidden: true})
		}
		return
	}

	t := framerect.Identity2D()
	if tc, ok := ecs.Get(w, e, component.Transform2DComponent); ok {
		t = *tc
	}
	dim := cp.Vector{}
	if d, ok := ecs.Get(w, e, component.DimensionComponent); ok {
		dim = d.Size
	}

	local := framerect.Resolve(entry.parent, t, dim)

	kids := w.Children(e)
	cont, isContainer := ecs.Get(w, e, component.ContainerComponent)
	var placed []layout.Placed
	var laidOut []ecs.Entity
	if isContainer && len(kids) > 0 {
		var free []ecs.Entity
		items := make([]layout.Item, 0, len(kids))
		for _, k := range kids {
			ctrl := component.LayoutControlNone
			if c, ok := ecs.Get(w, k, component.LayoutControlComponent); ok {
				ctrl = *c
			}
			if ctrl == component.LayoutControlIgnore {
				free = append(free, k)
				continue
			}
			kt := framerect.Identity2D()
			if tc, ok := ecs.Get(w, k, component.Transform2DComponent); ok {
				kt = *tc
			}
			kdim := cp.Vector{}
			if d, ok := ecs.Get(w, k, component.DimensionComponent); ok {
				kdim = d.Size
			}
			items = append(items, layout.Item{
				Index:     len(laidOut),
				Anchor:    kt.GetParentAnchor().Vector(),
				Dimension: kdim,
				Control:   ctrl.Layout(),
			})
			laidOut = append(laidOut, k)
		}

		out := cont.Place(local.Dimension, items)
		placed = out.Anchors
		if out.Dimension != local.Dimension {
			local = framerect.Resolve(entry.parent, t, out.Dimension)
			// Only content-sized layouts persist their dimension. Fixed-size
			// layouts echo the input plus padding, and feeding that back
			// would inflate the container every pass.
			if cont.SizeAgnostic() {
				if d, ok := ecs.Get(w, e, component.DimensionComponent); ok {
					d.Size = out.Dimension
				} else {
					setComponent(w, e, component.DimensionComponent, component.Dimension{Size: out.Dimension})
				}
			}
		}
		kids = free
	}

	local = s.applyOutOfFrame(w, e, entry, t, local, bounds)

	target := local.TransformAt(t.GetCenter())
	if interp, ok := ecs.Get(w, e, component.InterpolateComponent); ok && interp.Mode == component.InterpolateExponentialDecay {
		if interp.Started {
			target = lerpTransform(interp.Last, target, interp.Factor)
		}
		interp.Last = target
		interp.Started = true
	}

	setComponent(w, e, component.RotatedRectComponent, entry.chain.ApplyRect(local))
	setComponent(w, e, component.TransformComponent, target)

	if len(kids) == 0 && len(laidOut) == 0 {
		return
	}
	childChain := entry.chain.Mul(local.ChainAt(framerect.Center))
	childParent := framerect.ParentInfo{Dimension: local.Dimension}

	// free children resolve against the container rect like any other child
	for _, k := range kids {
		s.next = append(s.next, layoutEntry{entity: k, parent: childParent, chain: childChain})
	}

	anchors := make(map[int]cp.Vector, len(placed))
	for _, p := range placed {
		anchors[p.Index] = p.Anchor
	}
	for i, k := range laidOut {
		a, ok := anchors[i]
		if !ok {
			// whitespace, markers, and range-hidden children collapse
			s.next = append(s.next, layoutEntry{entity: k, hidden: true})
			continue
		}
		s.next = append(s.next, layoutEntry{
			entity: k,
			parent: childParent.WithAnchor(a),
			chain:  childChain,
		})
	}
}

// applyOutOfFrame adjusts a resolved rect that escaped the frame bounds per
// the entity's OutOfFrame behavior.
func (s *LayoutSystem) applyOutOfFrame(w *ecs.World, e ecs.Entity, entry layoutEntry, t framerect.Transform2D, local framerect.RotatedRect, bounds cp.BB) framerect.RotatedRect {
	oof, ok := ecs.Get(w, e, component.OutOfFrameComponent)
	if !ok || oof.Mode == component.OutOfFrameNone {
		return local
	}
	frameRect := entry.chain.ApplyRect(local)
	if frameRect.Inside(bounds) {
		return local
	}
	switch oof.Mode {
	case component.OutOfFrameNudge:
		delta := frameRect.NudgeInside(bounds)
		localDelta := entry.chain.Unapply(frameRect.Center.Add(delta)).
			Sub(entry.chain.Unapply(frameRect.Center))
		local.Center = local.Center.Add(localDelta)
	case component.OutOfFrameAnchorSwap:
		for _, dir := range oof.Directions {
			anchor, parentAnchor := dir.Anchors()
			candidate := framerect.ResolveAt(entry.parent, t, parentAnchor, anchor, local.Dimension)
			if entry.chain.ApplyRect(candidate).Inside(bounds) {
				return candidate
			}
		}
	}
	return local
}

func lerpTransform(from, to framerect.Transform, fac float64) framerect.Transform {
	if fac <= 0 {
		return from
	}
	if fac >= 1 {
		return to
	}
	return framerect.Transform{
		Translation: from.Translation.Lerp(to.Translation, fac),
		Z:           from.Z + (to.Z-from.Z)*fac,
		Rotation:    from.Rotation + (to.Rotation-from.Rotation)*fac,
		Scale:       from.Scale.Lerp(to.Scale, fac),
	}
}

// setComponent writes a component value, reusing the stored pointer when the
// entity already has one.
func setComponent[T any](w *ecs.World, e ecs.Entity, h component.Handle[T], v T) {
	if cur, ok := ecs.Get(w, e, h); ok {
		*cur = v
		return
	}
	if err := ecs.Add(w, e, h, &v); err != nil {
		// only reachable with a dead entity mid-frame; drop the write
		return
	}
}
