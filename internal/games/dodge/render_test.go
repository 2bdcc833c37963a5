package dodge

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

func countRune(scr *core.Screen, r rune) int {
	n := 0
	for y := 0; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			if scr.Get(x, y) == r {
				n++
			}
		}
	}
	return n
}

func busyState(cfg config.DodgeConfig) *State {
	s := NewState(cfg, nil)
	s.Score = 12
	s.Objects = append(s.Objects,
		FallingObject{ID: 1, X: 20, Y: 100, Speed: 5, Rotation: 45, Size: 40},
		FallingObject{ID: 2, X: 300, Y: -50, Speed: 6, Rotation: 200, Size: 50},
	)
	return s
}

func TestRenderIsIdempotent(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := busyState(cfg)
	before := s.Clone()

	a := core.NewScreen(40, 22)
	b := core.NewScreen(40, 22)
	Render(a, s, StatusPlaying, 1234, cfg)
	Render(b, s, StatusPlaying, 1234, cfg)
	Render(b, s, StatusPlaying, 1234, cfg)

	if a.String() != b.String() {
		t.Errorf("repeated renders differ:\n%s\n---\n%s", a, b)
	}
	if s.PlayerX != before.PlayerX || len(s.Objects) != len(before.Objects) || s.Objects[0] != before.Objects[0] {
		t.Error("render mutated state")
	}
}

func TestRenderDrawsPlayerAndGround(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := NewState(cfg, nil)
	scr := core.NewScreen(40, 22)

	Render(scr, s, StatusPlaying, 0, cfg)

	if got := scr.Row(21); got != strings.Repeat(string(GroundChar), 40) {
		t.Errorf("ground row = %q", got)
	}
	if countRune(scr, PlayerGlyph) == 0 {
		t.Error("player not drawn")
	}
	// Centered player covers the middle column near the bottom
	if scr.Get(20, 19) != PlayerGlyph {
		t.Errorf("cell (20,19) = %q, want player", scr.Get(20, 19))
	}
}

func TestRenderDefeatedPlayer(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := NewState(cfg, nil)
	scr := core.NewScreen(40, 22)

	Render(scr, s, StatusGameOver, 0, cfg)
	if countRune(scr, PlayerGlyph) != 0 {
		t.Error("live player glyph drawn during GAMEOVER")
	}
	if countRune(scr, DefeatedGlyph) == 0 {
		t.Error("defeated glyph missing")
	}
}

func TestRenderWobbleOnlyWhilePlaying(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := NewState(cfg, nil)

	for _, status := range []Status{StatusStart, StatusGameOver} {
		a := core.NewScreen(40, 22)
		b := core.NewScreen(40, 22)
		Render(a, s, status, 0, cfg)
		Render(b, s, status, 125.6, cfg)
		if a.String() != b.String() {
			t.Errorf("%v: render depends on time", status)
		}
	}
}

func TestRenderObjectsShowRotation(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := busyState(cfg)
	scr := core.NewScreen(40, 22)

	Render(scr, s, StatusPlaying, 0, cfg)
	if countRune(scr, ObjectFill) == 0 {
		t.Error("object body not drawn")
	}
	if countRune(scr, spinGlyph(45)) == 0 {
		t.Errorf("spin glyph %q missing", spinGlyph(45))
	}
	// The second object is still above the field
	for x := 0; x < scr.Width(); x++ {
		if r := scr.Get(x, 0); r != ' ' {
			t.Fatalf("object leaked into HUD row at column %d: %q", x, r)
		}
	}
}

func TestRenderSkipsMissingSurface(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := busyState(cfg)

	Render(nil, s, StatusPlaying, 0, cfg)

	tiny := core.NewScreen(5, 3)
	tiny.DrawText(0, 0, "keep")
	Render(tiny, s, StatusPlaying, 0, cfg)
	if got := tiny.Row(0); got != "keep " {
		t.Errorf("undersized screen was drawn on: %q", got)
	}
}

func TestSpinGlyph(t *testing.T) {
	tests := []struct {
		rot  float64
		want rune
	}{
		{0, '◐'},
		{89.9, '◐'},
		{90, '◓'},
		{180, '◑'},
		{359, '◒'},
		{360, '◐'},
	}

	for _, tt := range tests {
		if got := spinGlyph(tt.rot); got != tt.want {
			t.Errorf("spinGlyph(%v) = %q, want %q", tt.rot, got, tt.want)
		}
	}
}

func TestPointerToArena(t *testing.T) {
	cfg := config.DefaultDodgeConfig()

	tests := []struct {
		col, width int
		want       float64
	}{
		{0, 40, 5},
		{39, 40, 395},
		{20, 40, 205},
		{3, 0, 200},
	}

	for _, tt := range tests {
		if got := PointerToArena(tt.col, tt.width, cfg); got != tt.want {
			t.Errorf("PointerToArena(%d, %d) = %v, want %v", tt.col, tt.width, got, tt.want)
		}
	}
}

func TestGameRenderOverlays(t *testing.T) {
	g, _, _ := newTestGame(quietConfig())
	scr := core.NewScreen(60, 24)

	g.Render(scr, 0, "thinking...")
	if !strings.Contains(scr.String(), "DODGE THE POOP") {
		t.Error("start overlay missing")
	}
	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}

	g.Start()
	g.Frame(0)
	g.Render(scr, 0, "thinking...")
	if strings.Contains(scr.String(), "DODGE THE POOP") {
		t.Error("start overlay shown while playing")
	}

	crash(g)
	res := g.Frame(16)
	g.Render(scr, 16, "thinking...")
	out := scr.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "thinking...") {
		t.Errorf("game over overlay missing pending text:\n%s", out)
	}

	g.SetCommentary(res.Run, "으악! 똥 맞았대요~")
	g.Render(scr, 16, "thinking...")
	if !strings.Contains(scr.String(), "으악! 똥 맞았대요~") {
		t.Errorf("comment not rendered:\n%s", scr.String())
	}
}
