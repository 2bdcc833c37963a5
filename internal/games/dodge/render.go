package dodge

import (
	"math"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Visual characters for rendering
const (
	PlayerGlyph   = '▲'
	DefeatedGlyph = '✖'
	ObjectFill    = '▓'
	GroundChar    = '═'
)

// spinGlyphs show an object's rotation, one per quarter turn.
var spinGlyphs = [4]rune{'◐', '◓', '◑', '◒'}

// Minimum field size in cells; smaller screens skip the frame.
const (
	minFieldW = 10
	minFieldH = 4
)

// viewport maps arena units onto the field area of a screen.
// Row 0 is reserved for the HUD and the last row for the ground.
type viewport struct {
	x0, y0 int
	w, h   int
	sx, sy float64
}

func newViewport(dst *core.Screen, cfg config.DodgeConfig) (viewport, bool) {
	if dst == nil {
		return viewport{}, false
	}
	w, h := dst.Width(), dst.Height()-2
	if w < minFieldW || h < minFieldH {
		return viewport{}, false
	}
	return viewport{
		x0: 0,
		y0: 1,
		w:  w,
		h:  h,
		sx: float64(w) / cfg.Arena.Width,
		sy: float64(h) / cfg.Arena.Height,
	}, true
}

// span converts an arena length to a cell count, never less than one.
func span(length, scale float64) int {
	return core.Max(1, int(math.Round(length*scale)))
}

// box returns the cell rectangle of a size x size body centered at (cx, cy).
func (v viewport) box(cx, cy, size float64) core.Rect {
	cols, rows := span(size, v.sx), span(size, v.sy)
	col := v.x0 + int(math.Floor(cx*v.sx)) - cols/2
	row := v.y0 + int(math.Floor(cy*v.sy)) - rows/2
	return core.NewRect(col, row, cols, rows)
}

// fill draws r clipped to the field so bodies never cover the HUD or ground.
func (v viewport) fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	for y := core.Clamp(r.Y, v.y0, v.y0+v.h); y < core.Clamp(r.Bottom(), v.y0, v.y0+v.h); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColor(x, y, glyph, c)
		}
	}
}

// PointerToArena converts a pointer column on a screen of the given width to arena x.
func PointerToArena(col, screenW int, cfg config.DodgeConfig) float64 {
	if screenW <= 0 {
		return cfg.Arena.Width / 2
	}
	return (float64(col) + 0.5) * cfg.Arena.Width / float64(screenW)
}

// Render draws the arena, the player and every falling object. It only reads
// s; calling it twice with the same arguments produces the same screen.
// A nil or undersized screen is skipped.
func Render(dst *core.Screen, s *State, status Status, nowMs float64, cfg config.DodgeConfig) {
	v, ok := newViewport(dst, cfg)
	if !ok {
		return
	}
	dst.Clear()
	dst.DrawHLine(0, v.y0+v.h, dst.Width(), GroundChar, core.ColorBrightYellow)

	// Player wobbles only while playing
	wobble := 0.0
	if status == StatusPlaying {
		wobble = math.Sin(nowMs/80) * 3
	}
	px, py := PlayerCenter(s, cfg)
	glyph, color := PlayerGlyph, core.ColorBrightMagenta
	if status == StatusGameOver {
		glyph, color = DefeatedGlyph, core.ColorBrightRed
	}
	v.fill(dst, v.box(px, py+wobble, cfg.Player.Size), glyph, color)

	for _, o := range s.Objects {
		drawObject(dst, v, o)
	}
}

// drawObject renders a single object with its rotation shown in the middle cell.
func drawObject(dst *core.Screen, v viewport, o FallingObject) {
	cx, cy := o.Center()
	r := v.box(cx, cy, o.Size)
	v.fill(dst, r, ObjectFill, core.ColorBrown)

	midX, midY := r.X+r.W/2, r.Y+r.H/2
	if midY >= v.y0 && midY < v.y0+v.h {
		dst.SetColor(midX, midY, spinGlyph(o.Rotation), core.ColorOrange)
	}
}

// spinGlyph picks the glyph for a rotation in degrees.
func spinGlyph(rotation float64) rune {
	quarter := int(math.Floor(math.Mod(rotation, 360)/90+4)) % 4
	return spinGlyphs[quarter]
}
