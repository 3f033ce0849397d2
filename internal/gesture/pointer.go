// Package gesture turns raw pointer input into paint strokes.
//
// Mouse and touch input are normalised into a PointerEvent before they reach
// the Tracker, so the paint state machine is shared by both devices.
package gesture

import "fmt"

// Coordinate is a position in surface-local pixel space.
type Coordinate struct {
	X float32
	Y float32
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g,%g)", c.X, c.Y)
}

// Translate converts a window-space position into a position relative to
// a surface whose top-left corner sits at offset.
func Translate(raw, offset Coordinate) Coordinate {
	return Coordinate{X: raw.X - offset.X, Y: raw.Y - offset.Y}
}

// Source identifies the device that produced a pointer event.
type Source int

const (
	SourceMouse Source = iota
	SourceTouch
)

func (s Source) String() string {
	switch s {
	case SourceMouse:
		return "mouse"
	case SourceTouch:
		return "touch"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// PointerEvent is a pointer position reported in window space along with
// the window-space offset of the surface it landed on. Touch drivers report
// one event per finger; callers pass the first active touch point.
type PointerEvent struct {
	Source Source
	Raw    Coordinate
	Offset Coordinate
}

// Mouse builds a PointerEvent for a mouse position.
func Mouse(raw, offset Coordinate) PointerEvent {
	return PointerEvent{Source: SourceMouse, Raw: raw, Offset: offset}
}

// Touch builds a PointerEvent for the first active touch point.
func Touch(raw, offset Coordinate) PointerEvent {
	return PointerEvent{Source: SourceTouch, Raw: raw, Offset: offset}
}

// Coordinate returns the surface-local position of the event.
func (e PointerEvent) Coordinate() Coordinate {
	return Translate(e.Raw, e.Offset)
}
