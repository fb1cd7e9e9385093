package canvas

// ButtonState is the edge reported for a mouse button.
type ButtonState int

const (
	Pressed ButtonState = iota
	Released
)

// MouseButton distinguishes the painting button from the rest.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseOther
)

type ButtonEvent struct {
	State ButtonState
	Mouse MouseButton
}

// Frame is the input delivered in one tick. Either field may be nil.
type Frame struct {
	Moved  *Point
	Button *ButtonEvent
}

// PointerState is derived from the last pointer position and button edge.
type PointerState struct {
	Pos          Point
	Down         bool
	InsideCanvas bool
}
