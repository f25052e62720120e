// Package pinboard implements the client side of the pin positioning
// contract: pointer drags over an owned pin become percentage coordinates
// clamped to [0, 100], and a completed gesture produces at most one position
// update against the server.
package pinboard

import (
	"errors"

	"pinpost/internal/models"
)

var (
	// ErrNotOwner is returned when a drag is attempted on someone else's
	// pin; non-owners get no drag affordance.
	ErrNotOwner = errors.New("pin is not owned by this principal")

	// ErrEmptyViewport is returned when the rendered image has no size yet,
	// so pixel deltas cannot be converted to percentages.
	ErrEmptyViewport = errors.New("viewport has no rendered size")

	// ErrOutsideImage is returned for comment placements outside the
	// rendered image bounds.
	ErrOutsideImage = errors.New("point is outside the rendered image")
)

// Point is a pointer position in screen pixels.
type Point struct {
	X float64
	Y float64
}

// Position is a pin position in percentages of the image size.
type Position struct {
	X float64
	Y float64
}

// Viewport is the rendered image size in pixels. It changes with the window,
// which is why pins live in percentages.
type Viewport struct {
	Width  float64
	Height float64
}

// Clamp bounds a percentage coordinate to [0, 100]. The server applies the
// same function on every write path, so out-of-range values cannot be stored
// no matter which side produced them.
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Drag is one in-progress pointer gesture over an owned pin.
type Drag struct {
	threadID     string
	startPointer Point
	startPin     Position
	confirmed    Position
	current      Position
	viewport     Viewport
}

// BeginDrag starts a gesture at the given pointer position. It refuses pins
// the principal does not own and viewports with no rendered size.
func BeginDrag(thread models.Thread, principal string, pointer Point, viewport Viewport) (*Drag, error) {
	if thread.CreatedBy != principal {
		return nil, ErrNotOwner
	}
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return nil, ErrEmptyViewport
	}

	start := Position{X: thread.X, Y: thread.Y}
	return &Drag{
		threadID:     thread.ID,
		startPointer: pointer,
		startPin:     start,
		confirmed:    start,
		current:      start,
		viewport:     viewport,
	}, nil
}

// ThreadID identifies the pin this gesture moves.
func (d *Drag) ThreadID() string {
	return d.threadID
}

// Move converts the pixel delta from the gesture start into a percentage
// delta against the viewport, adds it to the starting pin position and clamps
// both axes. It returns the live position for rendering.
func (d *Drag) Move(pointer Point) Position {
	deltaX := pointer.X - d.startPointer.X
	deltaY := pointer.Y - d.startPointer.Y

	d.current = Position{
		X: Clamp(d.startPin.X + deltaX/d.viewport.Width*100),
		Y: Clamp(d.startPin.Y + deltaY/d.viewport.Height*100),
	}
	return d.current
}

// End finishes the gesture. The boolean reports whether the final position
// differs from the last server-confirmed one; only then does the caller owe
// the server exactly one position update.
func (d *Drag) End() (Position, bool) {
	return d.current, d.current != d.confirmed
}

// PlaceComment converts a click inside the rendered image into the percentage
// pair a new thread is created with. origin is the image's top-left corner in
// screen pixels.
func PlaceComment(click, origin Point, viewport Viewport) (Position, error) {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return Position{}, ErrEmptyViewport
	}

	offsetX := click.X - origin.X
	offsetY := click.Y - origin.Y
	if offsetX < 0 || offsetY < 0 || offsetX > viewport.Width || offsetY > viewport.Height {
		return Position{}, ErrOutsideImage
	}

	return Position{
		X: offsetX / viewport.Width * 100,
		Y: offsetY / viewport.Height * 100,
	}, nil
}
