// Package layout reads and writes board layout files: a board described as
// rows of color codes, optional session counters and an optional piece.
//
//	width: 6
//	height: 4
//	rows:
//	  - "B....."
//	  - ".BB..."
//	  - "PPPP.."
//	session:
//	  level: 1
//	piece:
//	  shape: T
//	  x: 2
//	  y: 0
//	  colors: [P, B, G, Y]
//
// Rows are listed top to bottom. If fewer rows than height are given, the
// missing rows are empty and added at the top.
package layout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/chroma-cascade/internal/games/cascade/engine"
)

// MaxDimension bounds width and height of a layout board.
const MaxDimension = 64

// Parse errors.
var (
	ErrBadDimensions = errors.New("bad board dimensions")
	ErrUnknownColor  = errors.New("unknown color")
	ErrUnknownShape  = errors.New("unknown shape")
	ErrPieceCollides = errors.New("piece overlaps the board")
)

// File is the on-disk form of a layout.
type File struct {
	Width   int          `yaml:"width,omitempty"`
	Height  int          `yaml:"height,omitempty"`
	Rows    []string     `yaml:"rows"`
	Session *SessionSpec `yaml:"session,omitempty"`
	Piece   *PieceSpec   `yaml:"piece,omitempty"`
}

// SessionSpec holds session counters. A zero level means level 1.
type SessionSpec struct {
	Score    int `yaml:"score"`
	Lines    int `yaml:"lines"`
	Level    int `yaml:"level"`
	Combo    int `yaml:"combo"`
	MaxCombo int `yaml:"max_combo,omitempty"`
}

// PieceSpec describes a piece. Colors are applied to occupied cells of the
// unrotated mask in row-major order; Rotation is a count of clockwise turns.
type PieceSpec struct {
	Shape    string   `yaml:"shape"`
	X        int      `yaml:"x"`
	Y        int      `yaml:"y"`
	Rotation int      `yaml:"rotation,omitempty"`
	Colors   []string `yaml:"colors,omitempty"`
}

// Layout is a decoded layout ready for the engine.
type Layout struct {
	Board   *engine.Board
	Session engine.Session
	Piece   *engine.Piece // nil when the file has no piece
}

// Load reads and decodes a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: cannot read %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a layout from YAML.
func Parse(data []byte) (*Layout, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("layout: cannot parse: %w", err)
	}
	return f.Decode()
}

// Decode validates the file and builds the board, session and piece.
func (f File) Decode() (*Layout, error) {
	board, err := f.board()
	if err != nil {
		return nil, err
	}

	l := &Layout{
		Board:   board,
		Session: engine.NewSession(1),
	}
	if f.Session != nil {
		l.Session = engine.Session{
			Score:    f.Session.Score,
			Lines:    f.Session.Lines,
			Level:    max(f.Session.Level, 1),
			Combo:    f.Session.Combo,
			MaxCombo: max(f.Session.MaxCombo, f.Session.Combo),
		}
	}
	if f.Piece != nil {
		p, err := f.Piece.decode()
		if err != nil {
			return nil, err
		}
		if board.Collides(p) {
			return nil, fmt.Errorf("layout: %w at x=%d y=%d", ErrPieceCollides, p.X, p.Y)
		}
		l.Piece = p
	}
	return l, nil
}

func (f File) board() (*engine.Board, error) {
	w, h := f.Width, f.Height
	if w == 0 && len(f.Rows) > 0 {
		w = len([]rune(f.Rows[0]))
	}
	if h == 0 {
		h = len(f.Rows)
	}
	if w <= 0 || h <= 0 || w > MaxDimension || h > MaxDimension {
		return nil, fmt.Errorf("layout: %w: %dx%d", ErrBadDimensions, w, h)
	}
	if len(f.Rows) > h {
		return nil, fmt.Errorf("layout: %w: %d rows for height %d", ErrBadDimensions, len(f.Rows), h)
	}

	b := engine.NewBoard(w, h)
	offset := h - len(f.Rows)
	for i, line := range f.Rows {
		runes := []rune(line)
		if len(runes) != w {
			return nil, fmt.Errorf("layout: %w: row %d has width %d, expected %d", ErrBadDimensions, i, len(runes), w)
		}
		for col, ch := range runes {
			c, ok := engine.ParseColor(string(ch))
			if !ok {
				return nil, fmt.Errorf("layout: row %d col %d: %w %q", i, col, ErrUnknownColor, ch)
			}
			b.Set(offset+i, col, c)
		}
	}
	return b, nil
}

func (s PieceSpec) decode() (*engine.Piece, error) {
	shape, ok := engine.ParseShape(s.Shape)
	if !ok {
		return nil, fmt.Errorf("layout: piece: %w %q", ErrUnknownShape, s.Shape)
	}
	colors := make([]engine.Color, 0, len(s.Colors))
	for _, name := range s.Colors {
		c, ok := engine.ParseColor(name)
		if !ok || c == engine.Empty {
			return nil, fmt.Errorf("layout: piece: %w %q", ErrUnknownColor, name)
		}
		colors = append(colors, c)
	}

	p := engine.NewPiece(shape, colors...)
	for range ((s.Rotation % 4) + 4) % 4 {
		p = p.Rotated(true)
	}
	p.X, p.Y = s.X, s.Y
	return p, nil
}

// Encode builds a file describing the board and session. The result has no
// piece, so it can be fed back to the resolver as is.
func Encode(b *engine.Board, s engine.Session) File {
	return File{
		Width:  b.Width(),
		Height: b.Height(),
		Rows:   b.Rows(),
		Session: &SessionSpec{
			Score:    s.Score,
			Lines:    s.Lines,
			Level:    s.Level,
			Combo:    s.Combo,
			MaxCombo: s.MaxCombo,
		},
	}
}

// Marshal encodes the board and session as YAML.
func Marshal(b *engine.Board, s engine.Session) ([]byte, error) {
	data, err := yaml.Marshal(Encode(b, s))
	if err != nil {
		return nil, fmt.Errorf("layout: cannot encode: %w", err)
	}
	return data, nil
}
