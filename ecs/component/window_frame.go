package component

// WindowFrame marks a Frame whose dimension follows the host's layout size.
type WindowFrame struct{}

var WindowFrameComponent = NewComponent[WindowFrame]()
