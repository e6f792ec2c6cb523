// Command gallery is a small ebiten host showing the layout and picking
// pipeline: a window frame, stack and paragraph containers, labels, and
// hover highlighting driven by pick events.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/framerect"
	"github.com/milk9111/framerect/ecs"
	"github.com/milk9111/framerect/ecs/component"
	"github.com/milk9111/framerect/ecs/system"
	"github.com/milk9111/framerect/layout"
	"github.com/milk9111/framerect/prefab"
)

const (
	baseWidth  = 960
	baseHeight = 600
)

func main() {
	scenePath := flag.String("scene", "", "YAML scene to load instead of the built-in gallery")
	watch := flag.Bool("watch", false, "hot reload the scene file on change")
	debug := flag.Bool("debug", false, "print FPS and hover info")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("framerect gallery")

	game, err := NewGame(*scenePath, *watch, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	windowSys *system.WindowFrameSystem
	pickSys   *system.PickingSystem
	hover     *hoverTracker

	scenePath string
	watcher   *prefab.Watcher

	face   text.Face
	debug  bool
	width  float64
	height float64
}

func NewGame(scenePath string, watch, debug bool) (*Game, error) {
	g := &Game{
		scenePath: scenePath,
		face:      text.NewGoXFace(basicfont.Face7x13),
		debug:     debug,
		width:     baseWidth,
		height:    baseHeight,
	}
	if err := g.buildWorld(); err != nil {
		return nil, err
	}

	if watch && scenePath != "" {
		watcher, err := prefab.NewWatcher(filepath.Dir(scenePath))
		if err != nil {
			return nil, fmt.Errorf("gallery: watch %s: %w", scenePath, err)
		}
		g.watcher = watcher
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) buildWorld() error {
	g.world = ecs.NewWorld()
	g.windowSys = system.NewWindowFrameSystem()
	g.pickSys = system.NewPickingSystem(nil)
	g.hover = &hoverTracker{hovered: map[ecs.Entity]bool{}}
	g.scheduler = ecs.NewScheduler(
		g.windowSys,
		system.NewLabelSyncSystem(),
		system.NewSpriteSyncSystem(),
		system.NewTooltipSystem(),
		system.NewLayoutSystem(),
		g.pickSys,
		g.hover,
	)

	if g.scenePath != "" {
		spec, err := prefab.LoadSceneSpec(g.scenePath)
		if err != nil {
			return err
		}
		if _, err := prefab.Build(g.world, spec); err != nil {
			return err
		}
		g.fillLabelFaces()
		return nil
	}
	g.buildGallery()
	return nil
}

// fillLabelFaces gives prefab-built labels a measurable face.
func (g *Game) fillLabelFaces() {
	ecs.ForEach(g.world, component.LabelComponent, func(_ ecs.Entity, label *component.Label) {
		if label.Face == nil {
			label.Face = basicfont.Face7x13
		}
	})
}

func (g *Game) buildGallery() {
	w := g.world
	root := ecs.CreateEntity(w)
	frame := component.FrameFromDimension(cp.Vector{X: baseWidth, Y: baseHeight})
	mustAdd(w, root, component.FrameComponent, &frame)
	mustAdd(w, root, component.WindowFrameComponent, &component.WindowFrame{})

	// vertical menu hugging the top left
	menu := g.container(root, layout.VStack(), framerect.Identity2D().
		WithAnchor(framerect.TopLeft).
		WithParentAnchor(framerect.TopLeft).
		WithOffset(cp.Vector{X: 20, Y: -20}))
	if cont, ok := ecs.Get(w, menu, component.ContainerComponent); ok {
		cont.Margin = cp.Vector{Y: 8}
		cont.Padding = cp.Vector{X: 6, Y: 6}
	}
	for _, name := range []string{"new game", "continue", "settings", "quit"} {
		g.button(menu, name, cp.Vector{X: 140, Y: 24})
	}

	// justified toolbar across the bottom
	bar := g.container(root, layout.Span{Direction: layout.LeftToRight, Stretch: true},
		framerect.Identity2D().
			WithAnchor(framerect.BottomCenter).
			WithParentAnchor(framerect.BottomCenter).
			WithOffset(cp.Vector{Y: 16}))
	mustAdd(w, bar, component.DimensionComponent, &component.Dimension{Size: cp.Vector{X: 600, Y: 32}})
	for _, name := range []string{"files", "edit", "view", "help"} {
		g.button(bar, name, cp.Vector{X: 80, Y: 24})
	}

	// wrapped paragraph in the middle
	para := g.container(root, layout.NewParagraph(), framerect.Identity2D())
	mustAdd(w, para, component.DimensionComponent, &component.Dimension{Size: cp.Vector{X: 360, Y: 200}})
	words := strings.Fields("rectangles flow and wrap inside this paragraph like words on a page")
	for i, word := range words {
		g.label(para, word)
		if i < len(words)-1 {
			space := ecs.CreateEntity(w)
			mustAdd(w, space, component.DimensionComponent, &component.Dimension{Size: cp.Vector{X: 7, Y: 13}})
			ctrl := component.LayoutControlWhiteSpace
			mustAdd(w, space, component.LayoutControlComponent, &ctrl)
			w.SetParent(space, para)
		}
	}
}

func (g *Game) container(parent ecs.Entity, l layout.Layout, t framerect.Transform2D) ecs.Entity {
	e := ecs.CreateEntity(g.world)
	mustAdd(g.world, e, component.Transform2DComponent, &t)
	cont := component.NewContainer(l)
	mustAdd(g.world, e, component.ContainerComponent, &cont)
	g.world.SetParent(e, parent)
	return e
}

func (g *Game) button(parent ecs.Entity, name string, size cp.Vector) ecs.Entity {
	e := ecs.CreateEntity(g.world)
	mustAdd(g.world, e, component.Transform2DComponent, ptr(framerect.Identity2D()))
	mustAdd(g.world, e, component.DimensionComponent, &component.Dimension{Size: size})
	mustAdd(g.world, e, component.PickableComponent, ptr(component.NewPickable()))
	mustAdd(g.world, e, component.LabelComponent, &component.Label{Text: name})
	g.world.SetParent(e, parent)
	return e
}

func (g *Game) label(parent ecs.Entity, textValue string) ecs.Entity {
	e := ecs.CreateEntity(g.world)
	mustAdd(g.world, e, component.Transform2DComponent, ptr(framerect.Identity2D()))
	mustAdd(g.world, e, component.LabelComponent, &component.Label{Text: textValue, Face: basicfont.Face7x13})
	g.world.SetParent(e, parent)
	return e
}

func (g *Game) Update() error {
	if g.watcher != nil {
		select {
		case path := <-g.watcher.Events:
			log.Printf("gallery: reloading %s", path)
			if err := g.buildWorld(); err != nil {
				log.Printf("gallery: reload failed: %v", err)
			}
		case err := <-g.watcher.Errors:
			log.Printf("gallery: watcher: %v", err)
		default:
		}
	}

	// labels built from scenes get a face before measuring
	g.fillLabelFaces()

	g.windowSys.SetSize(g.width, g.height)
	camera := framerect.IdentityAffine()
	camera.Translation = cp.Vector{X: g.width / 2, Y: g.height / 2}
	camera.Scale = cp.Vector{X: 1, Y: -1}
	g.pickSys.SetCamera(camera)

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, e := range g.world.Query(component.RotatedRectComponent) {
		rect, ok := ecs.Get(g.world, e, component.RotatedRectComponent)
		if !ok || rect.Dimension == (cp.Vector{}) {
			continue
		}
		bb := rect.BB()
		x, y := g.toScreen(cp.Vector{X: bb.L, Y: bb.T})
		wpx := float32(bb.R - bb.L)
		hpx := float32(bb.T - bb.B)

		if g.hover.hovered[e] {
			vector.FillRect(screen, x, y, wpx, hpx, color.RGBA{R: 70, G: 70, B: 110, A: 255}, false)
		}
		vector.StrokeRect(screen, x, y, wpx, hpx, 1, color.RGBA{R: 160, G: 160, B: 160, A: 255}, false)

		if label, ok := ecs.Get(g.world, e, component.LabelComponent); ok {
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(x)+2, float64(y)+2)
			text.Draw(screen, label.Text, g.face, op)
		}
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  hovered: %d", ebiten.ActualFPS(), len(g.hover.hovered)))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = float64(outsideWidth)
	g.height = float64(outsideHeight)
	return outsideWidth, outsideHeight
}

// toScreen maps frame space (y up, origin at frame center) to screen pixels.
func (g *Game) toScreen(v cp.Vector) (float32, float32) {
	return float32(v.X + g.width/2), float32(g.height/2 - v.Y)
}

// hoverTracker drains pick events after the picking system runs.
type hoverTracker struct {
	hovered map[ecs.Entity]bool
}

func (h *hoverTracker) Update(w *ecs.World) {
	clear(h.hovered)
	for _, evt := range w.Events().Drain() {
		if evt.Type != system.HitEventType {
			continue
		}
		hit, ok := evt.Data.(system.HitEvent)
		if !ok || len(hit.Hits) == 0 {
			continue
		}
		// topmost only
		h.hovered[hit.Hits[0].Entity] = true
	}
}

func mustAdd[T any](w *ecs.World, e ecs.Entity, h component.Handle[T], v *T) {
	if err := ecs.Add(w, e, h, v); err != nil {
		log.Fatalf("gallery: add component: %v", err)
	}
}

func ptr[T any](v T) *T { return &v }
