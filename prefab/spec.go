// Package prefab loads entity trees from YAML scene specs and spawns them
// into a world, with optional hot reload through a file watcher.
package prefab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SceneSpec is a frame plus its node tree.
type SceneSpec struct {
	Frame FrameSpec  `yaml:"frame"`
	Nodes []NodeSpec `yaml:"nodes"`
}

// FrameSpec declares the root frame.
type FrameSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Anchor string  `yaml:"anchor"`
	Z      float64 `yaml:"z"`
	// Window makes the frame track the host layout size.
	Window bool `yaml:"window"`
}

// NodeSpec declares one entity and its children.
type NodeSpec struct {
	Name        string           `yaml:"name"`
	Transform   *TransformSpec   `yaml:"transform"`
	Dimension   *DimensionSpec   `yaml:"dimension"`
	Layout      *LayoutSpec      `yaml:"layout"`
	Control     string           `yaml:"control"`
	Pickable    *PickableSpec    `yaml:"pickable"`
	OutOfFrame  *OutOfFrameSpec  `yaml:"out_of_frame"`
	Tooltip     []string         `yaml:"tooltip"`
	Interpolate *InterpolateSpec `yaml:"interpolate"`
	Label       *LabelSpec       `yaml:"label"`
	Children    []NodeSpec       `yaml:"children"`
}

// TransformSpec mirrors Transform2D. Anchor names follow Anchor.Name:
// "center", "top_left", and so on; empty fields keep the identity defaults.
type TransformSpec struct {
	Anchor       string  `yaml:"anchor"`
	ParentAnchor string  `yaml:"parent_anchor"`
	Center       string  `yaml:"center"`
	OffsetX      float64 `yaml:"offset_x"`
	OffsetY      float64 `yaml:"offset_y"`
	Z            float64 `yaml:"z"`
	Rotation     float64 `yaml:"rotation"`
	ScaleX       float64 `yaml:"scale_x"`
	ScaleY       float64 `yaml:"scale_y"`
}

type DimensionSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LayoutSpec turns a node into a container.
type LayoutSpec struct {
	// Kind: "bounds", "hstack", "vstack", "hbox", "vbox", "paragraph".
	Kind     string  `yaml:"kind"`
	MarginX  float64 `yaml:"margin_x"`
	MarginY  float64 `yaml:"margin_y"`
	PaddingX float64 `yaml:"padding_x"`
	PaddingY float64 `yaml:"padding_y"`
	Stretch  bool    `yaml:"stretch"`
}

type PickableSpec struct {
	// Layer bitmask; 0 means the default layer.
	Layer uint32 `yaml:"layer"`
}

// OutOfFrameSpec selects the escape behavior: "nudge" or "anchor_swap" with
// directions from {"top", "bottom", "left", "right"}.
type OutOfFrameSpec struct {
	Mode       string   `yaml:"mode"`
	Directions []string `yaml:"directions"`
}

type InterpolateSpec struct {
	Factor float64 `yaml:"factor"`
}

type LabelSpec struct {
	Text string `yaml:"text"`
}

// LoadSpec reads and unmarshals a YAML spec file.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := os.ReadFile(filename)
	if err != nil {
		return zero, fmt.Errorf("prefab: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefab: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadSceneSpec reads a scene file.
func LoadSceneSpec(filename string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
