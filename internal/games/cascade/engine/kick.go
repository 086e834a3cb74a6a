package engine

// Kick is a (dx, dy) offset tried after a rotation.
type Kick struct {
	DX, DY int
}

// WallKicks is the ordered offset sequence tried after rotating.
var WallKicks = []Kick{
	{0, 0},
	{-1, 0},
	{1, 0},
	{0, -1},
	{-2, 0},
	{2, 0},
}

// Rotate turns the piece and commits the first wall-kick offset at which it
// fits. If no offset fits, the piece is returned unchanged with ok false.
func Rotate(b *Board, p *Piece, clockwise bool) (rotated *Piece, ok bool) {
	turned := p.Rotated(clockwise)
	for _, k := range WallKicks {
		candidate := turned.Moved(k.DX, k.DY)
		if !b.Collides(candidate) {
			return candidate, true
		}
	}
	return p, false
}
