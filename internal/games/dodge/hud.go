package dodge

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

type overlayLine struct {
	text  string
	color core.Color
}

// drawHUD draws the score line on row 0.
func drawHUD(dst *core.Screen, score, best int) {
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", score), core.ColorBrightYellow)
	bestText := fmt.Sprintf(" Best: %d ", best)
	dst.DrawTextColor(dst.Width()-runewidth.StringWidth(bestText)-2, 0, bestText, core.ColorYellow)
}

// drawMessageBox draws lines in a centered box. Empty lines become spacers.
func drawMessageBox(dst *core.Screen, lines []overlayLine) {
	w, h := dst.Width(), dst.Height()

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, runewidth.StringWidth(l.text))
	}
	boxW = min(boxW+4, w)
	boxH := min(len(lines)+2, h)
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		text := runewidth.Truncate(l.text, boxW-2, "…")
		x := box.X + (boxW-runewidth.StringWidth(text))/2
		dst.DrawTextColor(x, box.Y+1+i, text, l.color)
	}
}

func startLines() []overlayLine {
	return []overlayLine{
		{"DODGE THE POOP", core.ColorBrightYellow},
		{"", core.ColorDefault},
		{"Dodge everything that falls!", core.ColorWhite},
		{"←/→ or A/D to move, or just move the mouse", core.ColorYellow},
		{"", core.ColorDefault},
		{"Enter: start   Tab: scores   Q: quit", core.ColorGray},
	}
}

func gameOverLines(score int, comment, pending string) []overlayLine {
	commentLine := overlayLine{pending, core.ColorGray}
	if comment != "" {
		commentLine = overlayLine{"\"" + comment + "\"", core.ColorYellow}
	}
	return []overlayLine{
		{"GAME OVER", core.ColorBrightRed},
		{fmt.Sprintf("Final score: %d", score), core.ColorWhite},
		{"", core.ColorDefault},
		commentLine,
		{"", core.ColorDefault},
		{"Enter: try again   Tab: scores   Q: quit", core.ColorGray},
	}
}
