package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColor(3, 2, '@', ColorOrange)
	cell := s.GetCell(3, 2)
	if cell.Rune != '@' || cell.Color != ColorOrange {
		t.Errorf("GetCell(3, 2) = %+v, expected '@' orange", cell)
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(5, 1)
	w := s.DrawText(2, 0, "abcdef")

	if got := s.Row(0); got != "  abc" {
		t.Errorf("Row(0) = %q, expected %q", got, "  abc")
	}
	if w != 6 {
		t.Errorf("DrawText width = %d, expected 6", w)
	}
}

func TestScreenDrawWideText(t *testing.T) {
	s := NewScreen(10, 1)
	w := s.DrawText(0, 0, "똥a")

	if w != 3 {
		t.Errorf("DrawText width = %d, expected 3", w)
	}
	if !s.IsContinuation(1, 0) {
		t.Error("cell after a wide rune should be a continuation")
	}
	if got := s.Get(2, 0); got != 'a' {
		t.Errorf("Get(2, 0) = %q, expected 'a'", got)
	}
	// The continuation cell is not emitted, so the row keeps its visual width
	if got := s.Row(0); got != "똥a       " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenWideRuneAtEdgeDropped(t *testing.T) {
	s := NewScreen(3, 1)
	s.DrawText(2, 0, "똥")

	if s.Get(2, 0) != ' ' {
		t.Errorf("wide rune at the last column should be dropped, got %q", s.Get(2, 0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorWhite)

	expected := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(1, 1, '#')
	s.Resize(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("Resize() gave %dx%d", s.Width(), s.Height())
	}
	if strings.ContainsRune(s.String(), '#') {
		t.Error("Resize should clear the buffer")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawHLine(0, 1, 3, '=', ColorYellow)

	if got := s.String(); got != "   \n===" {
		t.Errorf("String() = %q", got)
	}
}
