package engine

// PieceSize is the side length of every piece mask.
const PieceSize = 4

// Spawn position of a new piece's bounding box (centered on a 10-wide board).
const (
	SpawnX = 3
	SpawnY = 0
)

// Shape identifies one of the seven canonical tetromino shapes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
	ShapeCount // Sentinel value for iteration
)

// String returns the single-letter shape name.
func (s Shape) String() string {
	if s >= ShapeCount {
		return "?"
	}
	return string("IOTLJSZ"[s])
}

// ParseShape converts a single-letter shape name to a Shape.
func ParseShape(s string) (Shape, bool) {
	for i := ShapeI; i < ShapeCount; i++ {
		if i.String() == s {
			return i, true
		}
	}
	return ShapeI, false
}

// Mask is the occupancy grid of a piece.
type Mask [PieceSize][PieceSize]bool

// ColorMask holds the color of every occupied mask cell (Empty elsewhere).
type ColorMask [PieceSize][PieceSize]Color

var shapeMasks = [ShapeCount]Mask{
	ShapeI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	ShapeO: {
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	ShapeT: {
		{false, false, false, false},
		{false, true, true, true},
		{false, false, true, false},
		{false, false, false, false},
	},
	ShapeL: {
		{false, false, false, false},
		{false, true, true, true},
		{false, true, false, false},
		{false, false, false, false},
	},
	ShapeJ: {
		{false, false, false, false},
		{false, true, true, true},
		{false, false, false, true},
		{false, false, false, false},
	},
	ShapeS: {
		{false, false, false, false},
		{false, false, true, true},
		{false, true, true, false},
		{false, false, false, false},
	},
	ShapeZ: {
		{false, false, false, false},
		{false, true, true, false},
		{false, false, true, true},
		{false, false, false, false},
	},
}

// Rand is the subset of *math/rand.Rand used to generate pieces.
type Rand interface {
	Intn(n int) int
}

// Block is one occupied cell of a piece in board coordinates.
type Block struct {
	X     int // Column
	Y     int // Row, negative above the visible board
	Color Color
}

// Piece is a falling unit. Mask and colors are never mutated in place;
// rotation and movement return new pieces so a rejected attempt is simply dropped.
type Piece struct {
	Shape  Shape
	mask   Mask
	colors ColorMask
	X, Y   int // Board position of the mask's top-left corner
}

// NewPiece creates a piece at the spawn position. Occupied cells are colored
// from colors in row-major order, cycling if fewer colors than cells are given.
// With no colors every cell is ColorPink.
func NewPiece(shape Shape, colors ...Color) *Piece {
	p := &Piece{
		Shape: shape,
		mask:  shapeMasks[shape],
		X:     SpawnX,
		Y:     SpawnY,
	}
	i := 0
	for r := range PieceSize {
		for c := range PieceSize {
			if !p.mask[r][c] {
				continue
			}
			if len(colors) == 0 {
				p.colors[r][c] = ColorPink
			} else {
				p.colors[r][c] = colors[i%len(colors)]
			}
			i++
		}
	}
	return p
}

// NewRandomPiece creates a piece of the given shape with each cell colored
// independently from palette.
func NewRandomPiece(rng Rand, shape Shape, palette []Color) *Piece {
	if len(palette) == 0 {
		palette = AllColors()
	}
	colors := make([]Color, 0, PieceSize)
	for range PieceSize {
		colors = append(colors, palette[rng.Intn(len(palette))])
	}
	return NewPiece(shape, colors...)
}

// RandomShape picks one of the seven shapes uniformly.
func RandomShape(rng Rand) Shape {
	return Shape(rng.Intn(int(ShapeCount)))
}

// Mask returns the occupancy mask.
func (p *Piece) Mask() Mask {
	return p.mask
}

// Colors returns the color mask.
func (p *Piece) Colors() ColorMask {
	return p.colors
}

// Clone returns an independent copy.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Moved returns a copy shifted by (dx, dy).
func (p *Piece) Moved(dx, dy int) *Piece {
	c := p.Clone()
	c.X += dx
	c.Y += dy
	return c
}

// Blocks returns the occupied cells in board coordinates, row-major.
func (p *Piece) Blocks() []Block {
	blocks := make([]Block, 0, PieceSize)
	for r := range PieceSize {
		for c := range PieceSize {
			if p.mask[r][c] {
				blocks = append(blocks, Block{
					X:     p.X + c,
					Y:     p.Y + r,
					Color: p.colors[r][c],
				})
			}
		}
	}
	return blocks
}

// Rotated returns a copy turned 90 degrees at the same position.
// Clockwise maps mask cell (r, c) to (c, N-1-r); counter-clockwise maps it
// to (N-1-c, r). Colors travel with their cells.
func (p *Piece) Rotated(clockwise bool) *Piece {
	out := p.Clone()
	var mask Mask
	var colors ColorMask
	const n = PieceSize
	for r := range n {
		for c := range n {
			if clockwise {
				mask[c][n-1-r] = p.mask[r][c]
				colors[c][n-1-r] = p.colors[r][c]
			} else {
				mask[n-1-c][r] = p.mask[r][c]
				colors[n-1-c][r] = p.colors[r][c]
			}
		}
	}
	out.mask = mask
	out.colors = colors
	return out
}
