package engine

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// MinRun is the shortest same-color run that counts as a match.
const MinRun = 3

// MatchSet is the set of cells that belong to at least one run of MinRun or
// more same-colored cells in a row or column. A cell in both a horizontal and
// a vertical run is stored once.
type MatchSet struct {
	width int
	cells *intmap.Set[int] // row*width + col
}

func newMatchSet(width, capacity int) MatchSet {
	return MatchSet{
		width: width,
		cells: intmap.NewSet[int](capacity),
	}
}

func (m MatchSet) add(row, col int) {
	m.cells.Add(row*m.width + col)
}

// Len returns the number of unique matched cells. This is the match size
// used for scoring.
func (m MatchSet) Len() int {
	return m.cells.Len()
}

// Empty reports whether nothing matched.
func (m MatchSet) Empty() bool {
	return m.Len() == 0
}

// Has reports whether (row, col) is part of a match.
func (m MatchSet) Has(row, col int) bool {
	if m.width == 0 || col < 0 || col >= m.width {
		return false
	}
	return m.cells.Has(row*m.width + col)
}

// Cells returns the matched cells in row-major order.
func (m MatchSet) Cells() []Cell {
	keys := make([]int, 0, m.Len())
	m.cells.ForEach(func(k int) bool {
		keys = append(keys, k)
		return true
	})
	slices.Sort(keys)

	out := make([]Cell, len(keys))
	for i, k := range keys {
		out[i] = Cell{Row: k / m.width, Col: k % m.width}
	}
	return out
}

// FindMatches scans every row and every column for runs of MinRun or more
// identical non-empty colors and returns the union of all run cells.
func FindMatches(b *Board) MatchSet {
	m := newMatchSet(b.Width(), 16)

	// Horizontal runs
	for row := range b.Height() {
		for col := 0; col < b.Width(); {
			run := runLength(b, row, col, 0, 1)
			if run >= MinRun {
				for i := range run {
					m.add(row, col+i)
				}
			}
			col += max(run, 1)
		}
	}

	// Vertical runs
	for col := range b.Width() {
		for row := 0; row < b.Height(); {
			run := runLength(b, row, col, 1, 0)
			if run >= MinRun {
				for i := range run {
					m.add(row+i, col)
				}
			}
			row += max(run, 1)
		}
	}

	return m
}

// runLength counts identical non-empty colors starting at (row, col) and
// stepping by (dr, dc). Returns 0 for an empty start cell.
func runLength(b *Board, row, col, dr, dc int) int {
	color := b.At(row, col)
	if color == Empty {
		return 0
	}
	n := 1
	for b.InBounds(row+dr*n, col+dc*n) && b.At(row+dr*n, col+dc*n) == color {
		n++
	}
	return n
}
