package component

import "golang.org/x/image/font"

// Label is a piece of text whose measured size drives the entity's
// Dimension.
type Label struct {
	Text string
	Face font.Face
}

var LabelComponent = NewComponent[Label]()
