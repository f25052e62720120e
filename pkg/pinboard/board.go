package pinboard

import (
	"context"
	"fmt"
	"strings"

	"pinpost/internal/models"
)

// API is the slice of the server client the board needs.
type API interface {
	CreateThread(ctx context.Context, imageID string, x, y float64, comment string) (*models.Thread, error)
	UpdateThreadPosition(ctx context.Context, threadID string, x, y *float64) (*models.Thread, error)
}

// Board tracks the pins of one image for one principal: per-pin drag state,
// comment placement, and the single-update-per-gesture rule. Concurrent
// drags on different pins are independent. Board methods are meant to be
// driven from one UI goroutine.
type Board struct {
	api       API
	principal string
	imageID   string
	viewport  Viewport
	threads   map[string]models.Thread
	drags     map[string]*Drag
}

// NewBoard creates a board over the given threads.
func NewBoard(api API, principal, imageID string, viewport Viewport, threads []models.Thread) *Board {
	byID := make(map[string]models.Thread, len(threads))
	for _, t := range threads {
		byID[t.ID] = t
	}
	return &Board{
		api:       api,
		principal: principal,
		imageID:   imageID,
		viewport:  viewport,
		threads:   byID,
		drags:     make(map[string]*Drag),
	}
}

// Resize updates the rendered image size; in-flight drags keep the viewport
// they started with.
func (b *Board) Resize(viewport Viewport) {
	b.viewport = viewport
}

// PointerDown starts a drag on the given pin. It reports false when the pin
// is unknown, not owned, or the image has no rendered size yet — the cases
// in which the pointer should fall through to the image itself.
func (b *Board) PointerDown(threadID string, pointer Point) bool {
	thread, ok := b.threads[threadID]
	if !ok {
		return false
	}
	drag, err := BeginDrag(thread, b.principal, pointer, b.viewport)
	if err != nil {
		return false
	}
	b.drags[threadID] = drag
	return true
}

// PointerMove advances an active drag and returns the live clamped position.
// The boolean is false when no drag is active for the pin.
func (b *Board) PointerMove(threadID string, pointer Point) (Position, bool) {
	drag, ok := b.drags[threadID]
	if !ok {
		return Position{}, false
	}
	return drag.Move(pointer), true
}

// PointerUp completes a drag. When the final position differs from the last
// server-confirmed one it issues exactly one update call and returns the
// confirmed thread; otherwise it makes no network call and returns nil.
func (b *Board) PointerUp(ctx context.Context, threadID string) (*models.Thread, error) {
	drag, ok := b.drags[threadID]
	if !ok {
		return nil, nil
	}
	delete(b.drags, threadID)

	final, moved := drag.End()
	if !moved {
		return nil, nil
	}

	updated, err := b.api.UpdateThreadPosition(ctx, threadID, &final.X, &final.Y)
	if err != nil {
		return nil, fmt.Errorf("failed to update position of thread %s: %w", threadID, err)
	}
	b.threads[threadID] = *updated
	return updated, nil
}

// SubmitComment places a new thread at a click inside the image. A
// whitespace-only comment is a no-op: no thread is created and no call made.
func (b *Board) SubmitComment(ctx context.Context, click, origin Point, comment string) (*models.Thread, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, nil
	}

	pos, err := PlaceComment(click, origin, b.viewport)
	if err != nil {
		return nil, err
	}

	created, err := b.api.CreateThread(ctx, b.imageID, pos.X, pos.Y, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}
	b.threads[created.ID] = *created
	return created, nil
}

// Threads returns the board's current view of the pins.
func (b *Board) Threads() []models.Thread {
	threads := make([]models.Thread, 0, len(b.threads))
	for _, t := range b.threads {
		threads = append(threads, t)
	}
	return threads
}

// Remove drops a pin from the board after a server-side delete.
func (b *Board) Remove(threadID string) {
	delete(b.threads, threadID)
	delete(b.drags, threadID)
}
