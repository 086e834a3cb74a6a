package engine

// CountFullRows returns the number of rows with every cell occupied.
func CountFullRows(b *Board) int {
	n := 0
	for row := range b.Height() {
		if b.IsRowFull(row) {
			n++
		}
	}
	return n
}

// FullRows returns the indices of all full rows, top to bottom.
func FullRows(b *Board) []int {
	var rows []int
	for row := range b.Height() {
		if b.IsRowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}
