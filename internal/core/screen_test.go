package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 3)

	if s.Width() != 12 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 12x3", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 12)
	for y := range 3 {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected blank", y, got)
		}
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-4, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = %dx%d, expected 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, expected empty", s.String())
	}
}

func TestScreenSetCellClips(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetCell(1, 2, '█', ColorPink)
	if c := s.At(1, 2); c.Rune != '█' || c.Color != ColorPink {
		t.Errorf("At(1, 2) = %+v, expected pink block", c)
	}

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetCell(p[0], p[1], 'X', ColorRed) // Should not panic
		if c := s.At(p[0], p[1]); c != blank {
			t.Errorf("At(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColor(0, 0, "abc", ColorBlue)
	s.Clear()

	if c := s.At(1, 0); c != blank {
		t.Errorf("At(1, 0) after Clear = %+v, expected blank", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)

	s.DrawTextColor(1, 0, "██·", ColorGreen)
	if got := s.Row(0); got != " ██·      " {
		t.Errorf("Row(0) = %q, expected one cell per rune", got)
	}
	if s.At(3, 0).Color != ColorGreen || s.At(0, 0).Color != ColorDefault {
		t.Error("only the drawn cells should be colored")
	}

	s.DrawText(7, 1, "SCORE")
	if got := s.Row(1); got != "       SCO" {
		t.Errorf("Row(1) = %q, expected text clipped at the right edge", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "PAUSED")

	if got := s.Row(1); got != "       PAUSED       " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)

	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("DrawBox:\n%s", got)
	}
	if s.At(5, 3).Color != ColorGray {
		t.Error("box corners should use the box color")
	}
}

func TestScreenClearRect(t *testing.T) {
	s := NewScreen(5, 3)
	for y := range 3 {
		s.DrawText(0, y, "#####")
	}

	s.ClearRect(NewRect(1, 1, 3, 5))
	want := "#####\n#   #\n#   #"
	if got := s.String(); got != want {
		t.Errorf("ClearRect:\n%s\nexpected:\n%s", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColor(0, 0, "HOLD", ColorCyan)
	s.DrawText(0, 1, "next")

	s.Resize(6, 3)
	if got := s.String(); got != "HOLD  \nnext  \n      " {
		t.Errorf("after growing:\n%q", got)
	}
	if s.At(0, 0).Color != ColorCyan {
		t.Error("Resize should keep cell colors")
	}

	s.Resize(2, 1)
	if got := s.String(); got != "HO" {
		t.Errorf("after shrinking: %q", got)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(-1); got != "   " {
		t.Errorf("Row(-1) = %q, expected blank", got)
	}
	if got := s.Row(1); got != "   " {
		t.Errorf("Row(1) = %q, expected blank", got)
	}
}
