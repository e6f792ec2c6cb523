package system

import (
	"strings"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/milk9111/framerect/ecs"
	"github.com/milk9111/framerect/ecs/component"
)

// LabelSyncSystem measures each Label's text and writes the result into the
// entity's Dimension, so text participates in layout like any sized item.
type LabelSyncSystem struct{}

func NewLabelSyncSystem() *LabelSyncSystem { return &LabelSyncSystem{} }

func (s *LabelSyncSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.LabelComponent, func(e ecs.Entity, label *component.Label) {
		if label.Face == nil {
			return
		}
		size := measureText(label.Face, label.Text)
		if d, ok := ecs.Get(w, e, component.DimensionComponent); ok {
			d.Size = size
		} else {
			setComponent(w, e, component.DimensionComponent, component.Dimension{Size: size})
		}
	})
}

func measureText(face font.Face, text string) cp.Vector {
	metrics := face.Metrics()
	lineHeight := fixedToFloat(metrics.Height)
	if lineHeight == 0 {
		lineHeight = fixedToFloat(metrics.Ascent + metrics.Descent)
	}

	lines := strings.Split(text, "\n")
	width := 0.0
	for _, line := range lines {
		if adv := fixedToFloat(font.MeasureString(face, line)); adv > width {
			width = adv
		}
	}
	return cp.Vector{X: width, Y: lineHeight * float64(len(lines))}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
