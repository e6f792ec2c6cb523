package component

import "github.com/milk9111/framerect"

// RotatedRectComponent is the layout pass output in frame space. Hosts and
// the picking system read it; writing it by hand is overwritten next frame.
var RotatedRectComponent = NewComponent[framerect.RotatedRect]()
