package camera

// Event is the discriminated union of raw input events the camera consumes.
// The window layer (or a test) constructs concrete event values and feeds them
// to Camera.Update in the order they were received; orbit and pan deltas are
// relative to the previous cursor position, so reordering corrupts them.
//
// Event types the camera does not recognize are ignored, never an error — the
// camera must be tolerant of whatever the surrounding window system emits.
type Event interface {
	isInputEvent()
}

// PointerPressed marks the start of a drag at the given cursor position,
// in window pixel coordinates.
type PointerPressed struct {
	X, Y float32
}

// PointerReleased marks the end of a drag.
type PointerReleased struct{}

// PointerMoved reports the current cursor position in window pixel coordinates.
// Pan is true when the pan modifier (Shift, or the middle mouse button) is held,
// which turns the drag into a pan instead of an orbit.
//
// A PointerMoved with no preceding PointerPressed is ignored: deltas are only
// meaningful relative to a captured start position.
type PointerMoved struct {
	X, Y float32
	Pan  bool
}

// Scroll reports a mouse wheel step. Negative delta zooms in (the GLFW wheel
// convention is positive = scroll up = zoom out under this camera's defaults).
type Scroll struct {
	Delta float32
}

// KeyPressed reports a key press using the virtual key codes in package common.
// Arrow keys orbit by one keyboard step; R resets the camera to its
// construction defaults. All other codes are ignored.
type KeyPressed struct {
	Code uint32
}

func (PointerPressed) isInputEvent()  {}
func (PointerReleased) isInputEvent() {}
func (PointerMoved) isInputEvent()    {}
func (Scroll) isInputEvent()          {}
func (KeyPressed) isInputEvent()      {}
