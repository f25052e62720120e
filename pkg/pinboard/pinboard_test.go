package pinboard_test

import (
	"testing"

	"pinpost/internal/models"
	"pinpost/pkg/pinboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, pinboard.Clamp(-3.5))
	assert.Equal(t, 0.0, pinboard.Clamp(0))
	assert.Equal(t, 42.5, pinboard.Clamp(42.5))
	assert.Equal(t, 100.0, pinboard.Clamp(100))
	assert.Equal(t, 100.0, pinboard.Clamp(240))
}

func ownedThread() models.Thread {
	return models.Thread{ID: "t1", ImageID: "img1", X: 50, Y: 50, Comment: "hi", CreatedBy: "alice"}
}

func TestBeginDragRefusesNonOwner(t *testing.T) {
	_, err := pinboard.BeginDrag(ownedThread(), "bob", pinboard.Point{X: 100, Y: 100}, pinboard.Viewport{Width: 800, Height: 600})
	assert.ErrorIs(t, err, pinboard.ErrNotOwner)
}

func TestBeginDragRefusesEmptyViewport(t *testing.T) {
	_, err := pinboard.BeginDrag(ownedThread(), "alice", pinboard.Point{}, pinboard.Viewport{})
	assert.ErrorIs(t, err, pinboard.ErrEmptyViewport)
}

func TestDragMoveConvertsPixelsToPercent(t *testing.T) {
	// 800x600 viewport: 80px right is +10% in x, 60px down is +10% in y.
	drag, err := pinboard.BeginDrag(ownedThread(), "alice", pinboard.Point{X: 400, Y: 300}, pinboard.Viewport{Width: 800, Height: 600})
	require.NoError(t, err)

	pos := drag.Move(pinboard.Point{X: 480, Y: 360})
	assert.InDelta(t, 60.0, pos.X, 1e-9)
	assert.InDelta(t, 60.0, pos.Y, 1e-9)
}

func TestDragMoveClampsAtEdges(t *testing.T) {
	drag, err := pinboard.BeginDrag(ownedThread(), "alice", pinboard.Point{X: 400, Y: 300}, pinboard.Viewport{Width: 800, Height: 600})
	require.NoError(t, err)

	// Way past the right/bottom edge.
	pos := drag.Move(pinboard.Point{X: 4000, Y: 3000})
	assert.Equal(t, 100.0, pos.X)
	assert.Equal(t, 100.0, pos.Y)

	// Way past the left/top edge.
	pos = drag.Move(pinboard.Point{X: -4000, Y: -3000})
	assert.Equal(t, 0.0, pos.X)
	assert.Equal(t, 0.0, pos.Y)
}

func TestDragEndReportsWhetherMoved(t *testing.T) {
	drag, err := pinboard.BeginDrag(ownedThread(), "alice", pinboard.Point{X: 400, Y: 300}, pinboard.Viewport{Width: 800, Height: 600})
	require.NoError(t, err)

	// No movement at all: the server is owed nothing.
	_, moved := drag.End()
	assert.False(t, moved)

	// Out and back to the exact start: still nothing.
	drag.Move(pinboard.Point{X: 480, Y: 360})
	drag.Move(pinboard.Point{X: 400, Y: 300})
	_, moved = drag.End()
	assert.False(t, moved)

	drag.Move(pinboard.Point{X: 480, Y: 360})
	final, moved := drag.End()
	assert.True(t, moved)
	assert.InDelta(t, 60.0, final.X, 1e-9)
}

func TestPlaceComment(t *testing.T) {
	viewport := pinboard.Viewport{Width: 800, Height: 600}
	origin := pinboard.Point{X: 100, Y: 50}

	pos, err := pinboard.PlaceComment(pinboard.Point{X: 500, Y: 350}, origin, viewport)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, pos.X, 1e-9)
	assert.InDelta(t, 50.0, pos.Y, 1e-9)
}

func TestPlaceCommentOutsideImage(t *testing.T) {
	viewport := pinboard.Viewport{Width: 800, Height: 600}
	origin := pinboard.Point{X: 100, Y: 50}

	_, err := pinboard.PlaceComment(pinboard.Point{X: 50, Y: 350}, origin, viewport)
	assert.ErrorIs(t, err, pinboard.ErrOutsideImage)

	_, err = pinboard.PlaceComment(pinboard.Point{X: 500, Y: 900}, origin, viewport)
	assert.ErrorIs(t, err, pinboard.ErrOutsideImage)
}
