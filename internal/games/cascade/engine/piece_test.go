package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/chroma-cascade/internal/games/cascade/engine"
)

func TestShapeNames(t *testing.T) {
	for s := engine.ShapeI; s < engine.ShapeCount; s++ {
		parsed, ok := engine.ParseShape(s.String())
		require.True(t, ok, s.String())
		assert.Equal(t, s, parsed)
	}
	_, ok := engine.ParseShape("Q")
	assert.False(t, ok)
}

func TestEveryShapeHasFourBlocks(t *testing.T) {
	for s := engine.ShapeI; s < engine.ShapeCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			p := engine.NewPiece(s)
			assert.Len(t, p.Blocks(), 4)
			assert.Equal(t, engine.SpawnX, p.X)
			assert.Equal(t, engine.SpawnY, p.Y)
		})
	}
}

func TestNewPieceColorsRowMajor(t *testing.T) {
	p := engine.NewPiece(engine.ShapeT, engine.ColorBlue, engine.ColorGreen, engine.ColorYellow, engine.ColorOrange)
	blocks := p.Blocks()
	require.Len(t, blocks, 4)
	assert.Equal(t, engine.ColorBlue, blocks[0].Color)
	assert.Equal(t, engine.ColorGreen, blocks[1].Color)
	assert.Equal(t, engine.ColorYellow, blocks[2].Color)
	assert.Equal(t, engine.ColorOrange, blocks[3].Color)

	cycled := engine.NewPiece(engine.ShapeI, engine.ColorBlue, engine.ColorGreen)
	colors := []engine.Color{}
	for _, b := range cycled.Blocks() {
		colors = append(colors, b.Color)
	}
	assert.Equal(t, []engine.Color{engine.ColorBlue, engine.ColorGreen, engine.ColorBlue, engine.ColorGreen}, colors)
}

func TestRotationRoundTrip(t *testing.T) {
	for s := engine.ShapeI; s < engine.ShapeCount; s++ {
		p := engine.NewPiece(s, engine.ColorPink, engine.ColorBlue, engine.ColorGreen, engine.ColorYellow)

		cw := p
		for range 4 {
			cw = cw.Rotated(true)
		}
		assert.Equal(t, p.Mask(), cw.Mask(), "four clockwise turns on %s", s)
		assert.Equal(t, p.Colors(), cw.Colors())

		back := p.Rotated(true).Rotated(false)
		assert.Equal(t, p.Mask(), back.Mask(), "cw then ccw on %s", s)
		assert.Equal(t, p.Colors(), back.Colors())
	}
}

func TestRotatedDoesNotMutate(t *testing.T) {
	p := engine.NewPiece(engine.ShapeI)
	before := p.Mask()
	r := p.Rotated(true)
	assert.Equal(t, before, p.Mask())
	assert.NotEqual(t, before, r.Mask())
}

func TestRotateClockwiseI(t *testing.T) {
	// Horizontal I in mask row 1 becomes vertical in mask col 2.
	r := engine.NewPiece(engine.ShapeI).Rotated(true)
	m := r.Mask()
	for row := range engine.PieceSize {
		assert.True(t, m[row][2], "row %d", row)
	}
}

func TestRandomPieceUsesPalette(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	palette := engine.Palette(1)
	for range 50 {
		p := engine.NewRandomPiece(rng, engine.RandomShape(rng), palette)
		for _, b := range p.Blocks() {
			assert.Contains(t, palette, b.Color)
		}
	}
}

func TestPaletteSize(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 4}, {3, 4}, {4, 5}, {7, 5}, {8, 6}, {12, 6}, {13, 7}, {40, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, engine.PaletteSize(tt.level), "level %d", tt.level)
		assert.Len(t, engine.Palette(tt.level), tt.want)
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range engine.AllColors() {
		parsed, ok := engine.ParseColor(string(c.Char()))
		require.True(t, ok)
		assert.Equal(t, c, parsed)
	}
	c, ok := engine.ParseColor("red")
	assert.True(t, ok)
	assert.Equal(t, engine.ColorCrimson, c)
	_, ok = engine.ParseColor("Z")
	assert.False(t, ok)
}
