package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/framerect"
	"github.com/milk9111/framerect/ecs"
	"github.com/milk9111/framerect/ecs/component"
)

// HitEventType tags pick results on the world event queue.
const HitEventType = "framerect.hit"

// Pointer is one picking ray: a screen position plus the layers it can see.
type Pointer struct {
	// ID distinguishes pointers; the mouse cursor is -1, touches use their
	// touch id.
	ID       int
	Position cp.Vector
	Mask     component.PickLayer
}

// PointerSource supplies the frame's pointers. The default reads the ebiten
// cursor and touches; hosts inject their own for other input schemes.
type PointerSource interface {
	Pointers() []Pointer
}

// Hit is a single pickable under a pointer.
type Hit struct {
	Entity ecs.Entity
	Z      float64
	// Local is the pointer position in the rect's unrotated local space.
	Local cp.Vector
}

// HitEvent is the pick result for one pointer, topmost hit first. An event
// is emitted for every pointer, empty when nothing is under it, so hosts can
// clear hover state.
type HitEvent struct {
	Pointer Pointer
	Hits    []Hit
}

// PickingSystem hit-tests every Pickable's resolved rectangle against the
// frame's pointers and emits HitEvents. Runs after LayoutSystem.
type PickingSystem struct {
	source PointerSource
	camera framerect.Affine
}

// NewPickingSystem returns a picking system; a nil source uses the ebiten
// cursor and touches.
func NewPickingSystem(source PointerSource) *PickingSystem {
	if source == nil {
		source = &ebitenPointers{}
	}
	return &PickingSystem{source: source, camera: framerect.IdentityAffine()}
}

// SetCamera sets the frame-to-screen transform pointers are mapped through.
func (s *PickingSystem) SetCamera(camera framerect.Affine) {
	s.camera = camera
}

func (s *PickingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pickables := w.Query(component.PickableComponent, component.RotatedRectComponent)
	for _, p := range s.source.Pointers() {
		point := s.camera.Unapply(p.Position)

		var hits []Hit
		for _, e := range pickables {
			pick, ok := ecs.Get(w, e, component.PickableComponent)
			if !ok || !pick.Layer.Matches(p.Mask) {
				continue
			}
			rect, ok := ecs.Get(w, e, component.RotatedRectComponent)
			if !ok || !rect.Contains(point) {
				continue
			}
			hits = append(hits, Hit{Entity: e, Z: rect.Z, Local: rect.LocalSpace(point)})
		}
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].Z > hits[j].Z })

		w.Events().Push(ecs.Event{Type: HitEventType, Data: HitEvent{Pointer: p, Hits: hits}})
	}
}

// ebitenPointers reads the cursor and active touches.
type ebitenPointers struct {
	touches []ebiten.TouchID
}

func (p *ebitenPointers) Pointers() []Pointer {
	x, y := ebiten.CursorPosition()
	out := []Pointer{{
		ID:       -1,
		Position: cp.Vector{X: float64(x), Y: float64(y)},
		Mask:     component.DefaultPickLayer,
	}}
	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	for _, id := range p.touches {
		tx, ty := ebiten.TouchPosition(id)
		out = append(out, Pointer{
			ID:       int(id),
			Position: cp.Vector{X: float64(tx), Y: float64(ty)},
			Mask:     component.DefaultPickLayer,
		})
	}
	return out
}
