package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/chroma-cascade/internal/games/cascade/engine"
)

func mustBoard(t *testing.T, rows ...string) *engine.Board {
	t.Helper()
	b, err := engine.ParseBoard(rows)
	require.NoError(t, err)
	return b
}

func TestNewBoardDefaults(t *testing.T) {
	b := engine.NewBoard(0, -1)
	assert.Equal(t, engine.DefaultWidth, b.Width())
	assert.Equal(t, engine.DefaultHeight, b.Height())
	assert.Zero(t, b.FilledCount())
}

func TestParseBoard(t *testing.T) {
	b := mustBoard(t,
		"P..",
		".BG",
	)
	assert.Equal(t, 3, b.Width())
	assert.Equal(t, 2, b.Height())
	assert.Equal(t, engine.ColorPink, b.At(0, 0))
	assert.Equal(t, engine.ColorGreen, b.At(1, 2))
	assert.Equal(t, []string{"P..", ".BG"}, b.Rows())

	_, err := engine.ParseBoard([]string{"PP", "P"})
	assert.Error(t, err)

	_, err = engine.ParseBoard([]string{"PX"})
	assert.Error(t, err)

	_, err = engine.ParseBoard(nil)
	assert.Error(t, err)
}

func TestBoardOutOfBounds(t *testing.T) {
	b := engine.NewBoard(3, 3)
	b.Set(-1, 0, engine.ColorBlue)
	b.Set(0, 3, engine.ColorBlue)
	assert.Zero(t, b.FilledCount())
	assert.Equal(t, engine.Empty, b.At(5, 5))
	assert.False(t, b.IsRowFull(-1))
}

func TestIsRowFullIgnoresColor(t *testing.T) {
	b := mustBoard(t,
		"PB.",
		"PBG",
	)
	assert.False(t, b.IsRowFull(0))
	assert.True(t, b.IsRowFull(1))
}

func TestRemoveRowShiftsDown(t *testing.T) {
	b := mustBoard(t,
		"P..",
		".B.",
		"..G",
		"YYY",
	)
	b.RemoveRow(3)
	assert.Equal(t, []string{
		"...",
		"P..",
		".B.",
		"..G",
	}, b.Rows())

	b.RemoveRow(1)
	assert.Equal(t, []string{
		"...",
		"...",
		".B.",
		"..G",
	}, b.Rows())
}

func TestRemoveFullRowsAdjacent(t *testing.T) {
	b := mustBoard(t,
		"P..",
		"BGB",
		"GBG",
		".Y.",
	)
	assert.Equal(t, 2, b.RemoveFullRows())
	assert.Equal(t, []string{
		"...",
		"...",
		"P..",
		".Y.",
	}, b.Rows())
}

func TestApplyGravityColumn(t *testing.T) {
	// Column top-to-bottom [X, ., Y, ., .] settles to [., ., ., X, Y].
	b := mustBoard(t,
		"P",
		".",
		"B",
		".",
		".",
	)
	assert.True(t, b.ApplyGravity())
	assert.Equal(t, []string{".", ".", ".", "P", "B"}, b.Rows())
	assert.False(t, b.ApplyGravity())
}

func TestApplyGravityColumnsIndependent(t *testing.T) {
	b := mustBoard(t,
		"PB.",
		"..G",
		"...",
	)
	b.ApplyGravity()
	assert.Equal(t, []string{
		"...",
		"...",
		"PBG",
	}, b.Rows())
}

func TestCloneAndEqual(t *testing.T) {
	b := mustBoard(t, "P.", ".B")
	c := b.Clone()
	assert.True(t, b.Equal(c))
	c.ClearCell(0, 0)
	assert.False(t, b.Equal(c))
	assert.Equal(t, engine.ColorPink, b.At(0, 0))
	assert.False(t, b.Equal(engine.NewBoard(3, 2)))
}

func TestCollides(t *testing.T) {
	b := engine.NewBoard(10, 20)
	p := engine.NewPiece(engine.ShapeI)
	assert.False(t, b.Collides(p))

	// I row sits in mask row 1; its left end is mask col 0.
	assert.True(t, b.Collides(p.Moved(-4, 0)))
	assert.True(t, b.Collides(p.Moved(4, 0)))
	assert.True(t, b.Collides(p.Moved(0, 19)))
	assert.False(t, b.Collides(p.Moved(0, 18)))

	// Blocks above the top are allowed.
	assert.False(t, b.Collides(p.Moved(0, -3)))

	b.Set(1, 5, engine.ColorBlue)
	assert.True(t, b.Collides(p))
}

func TestMergeAboveTop(t *testing.T) {
	b := engine.NewBoard(10, 20)
	p := engine.NewPiece(engine.ShapeO, engine.ColorBlue).Moved(0, -2)
	// O occupies mask rows 1-2, so board rows -1 and 0.
	assert.True(t, b.Merge(p))
	assert.Equal(t, 2, b.FilledCount())
	assert.Equal(t, engine.ColorBlue, b.At(0, 4))
	assert.Equal(t, engine.ColorBlue, b.At(0, 5))
}

func TestDropDistanceAndGhost(t *testing.T) {
	b := engine.NewBoard(10, 20)
	p := engine.NewPiece(engine.ShapeO)
	// O bottom row is mask row 2, spawn at Y=0; floor is row 19.
	assert.Equal(t, 17, b.DropDistance(p))
	g := b.Ghost(p)
	assert.Equal(t, 17, g.Y)
	assert.Equal(t, p.X, g.X)

	b.Set(10, 4, engine.ColorGreen)
	assert.Equal(t, 7, b.DropDistance(p))
}
