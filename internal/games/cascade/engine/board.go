package engine

import (
	"fmt"
	"strings"
)

// Default board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Cell addresses a board position. Row 0 is the top row.
type Cell struct {
	Row int
	Col int
}

// Board is a fixed-size grid of colors stored in row-major order.
// Dimensions never change after creation; all mutation goes through methods.
type Board struct {
	w     int
	h     int
	cells []Color
}

// NewBoard creates an empty board. Non-positive dimensions fall back to the defaults.
func NewBoard(w, h int) *Board {
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return &Board{
		w:     w,
		h:     h,
		cells: make([]Color, w*h),
	}
}

// ParseBoard builds a board from rows of color codes, top row first.
// Every row must have the same length.
func ParseBoard(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("engine: board has no rows")
	}
	w := len([]rune(rows[0]))
	b := NewBoard(w, len(rows))
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != w {
			return nil, fmt.Errorf("engine: row %d has width %d, expected %d", r, len(runes), w)
		}
		for c, ch := range runes {
			color, ok := ParseColor(string(ch))
			if !ok {
				return nil, fmt.Errorf("engine: unknown color %q at row %d col %d", ch, r, c)
			}
			b.Set(r, c, color)
		}
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

func (b *Board) index(row, col int) int {
	return row*b.w + col
}

// InBounds reports whether (row, col) is on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.h && col >= 0 && col < b.w
}

// At returns the color at (row, col), or Empty when out of bounds.
func (b *Board) At(row, col int) Color {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[b.index(row, col)]
}

// Set writes a color. Out-of-bounds writes are ignored.
func (b *Board) Set(row, col int, c Color) {
	if b.InBounds(row, col) {
		b.cells[b.index(row, col)] = c
	}
}

// ClearCell empties (row, col).
func (b *Board) ClearCell(row, col int) {
	b.Set(row, col, Empty)
}

// Row returns a copy of one row.
func (b *Board) Row(row int) []Color {
	out := make([]Color, b.w)
	if row >= 0 && row < b.h {
		copy(out, b.cells[row*b.w:(row+1)*b.w])
	}
	return out
}

// IsRowFull reports whether every cell of the row is occupied, regardless of color.
func (b *Board) IsRowFull(row int) bool {
	if row < 0 || row >= b.h {
		return false
	}
	for col := range b.w {
		if b.cells[b.index(row, col)] == Empty {
			return false
		}
	}
	return true
}

// RemoveRow deletes a row, shifts every row above it down by one and
// inserts an empty row at the top.
func (b *Board) RemoveRow(row int) {
	if row < 0 || row >= b.h {
		return
	}
	// Rows [0, row) move to [1, row+1).
	copy(b.cells[b.w:(row+1)*b.w], b.cells[:row*b.w])
	for col := range b.w {
		b.cells[col] = Empty
	}
}

// RemoveFullRows removes every full row, scanning from the bottom up.
// After a removal the same index is checked again, since it now holds the
// row that was above. Returns the number of rows removed.
func (b *Board) RemoveFullRows() int {
	removed := 0
	for row := b.h - 1; row >= 0; {
		if b.IsRowFull(row) {
			b.RemoveRow(row)
			removed++
			continue
		}
		row--
	}
	return removed
}

// ApplyGravity compacts every column independently: filled cells slide down
// to close gaps, keeping their relative order. Pieces do not fall as rigid
// units. Returns true if any cell moved.
func (b *Board) ApplyGravity() bool {
	moved := false
	for col := range b.w {
		write := b.h - 1
		for row := b.h - 1; row >= 0; row-- {
			c := b.At(row, col)
			if c == Empty {
				continue
			}
			if row != write {
				b.Set(write, col, c)
				b.Set(row, col, Empty)
				moved = true
			}
			write--
		}
	}
	return moved
}

// Collides reports whether the piece overlaps a wall, the floor or a filled cell.
// Blocks above row 0 are allowed and never tested against grid contents.
func (b *Board) Collides(p *Piece) bool {
	for _, blk := range p.Blocks() {
		if blk.X < 0 || blk.X >= b.w || blk.Y >= b.h {
			return true
		}
		if blk.Y >= 0 && b.At(blk.Y, blk.X) != Empty {
			return true
		}
	}
	return false
}

// Merge copies the piece's colors into the board. Blocks above row 0 are never
// written; the return value reports whether any such block existed, which the
// caller treats as game over.
func (b *Board) Merge(p *Piece) (aboveTop bool) {
	for _, blk := range p.Blocks() {
		if blk.Y < 0 {
			aboveTop = true
			continue
		}
		b.Set(blk.Y, blk.X, blk.Color)
	}
	return aboveTop
}

// DropDistance returns how many rows the piece can fall before colliding.
func (b *Board) DropDistance(p *Piece) int {
	d := 0
	for !b.Collides(p.Moved(0, d+1)) {
		d++
	}
	return d
}

// Ghost returns where the piece would land after a hard drop.
func (b *Board) Ghost(p *Piece) *Piece {
	return p.Moved(0, b.DropDistance(p))
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{w: b.w, h: b.h, cells: cells}
}

// Equal reports whether two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.w != other.w || b.h != other.h {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Rows returns the board as color-code strings, top row first.
func (b *Board) Rows() []string {
	rows := make([]string, b.h)
	for row := range b.h {
		var sb strings.Builder
		for col := range b.w {
			sb.WriteRune(b.At(row, col).Char())
		}
		rows[row] = sb.String()
	}
	return rows
}

// String returns the rows joined by newlines.
func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}
