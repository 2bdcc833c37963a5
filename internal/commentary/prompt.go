package commentary

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// Tones picked by score.
const (
	ToneHigh = "impressed but still sassy"
	ToneLow  = "extremely mocking and funny"
)

// Tone picks the persona's mood for a final score.
func Tone(finalScore, highAbove int) string {
	if finalScore > highAbove {
		return ToneHigh
	}
	return ToneLow
}

// Prompt builds the generation prompt for a final score.
func Prompt(finalScore int, cfg config.CommentaryConfig) string {
	return fmt.Sprintf(`The player got a score of %d in 'Dodge the Poop'.
Provide a very short (max 10 words) commentary in %s.
Character: %s
Tone: %s.
If score is high, praise them in a backhanded way. If low, tease them hard.`,
		finalScore, cfg.Language, persona(cfg), Tone(finalScore, cfg.HighScoreAbove))
}

// persona returns the configured character line, or a plain one when unset.
func persona(cfg config.CommentaryConfig) string {
	if p := strings.TrimSpace(cfg.Persona); p != "" {
		return p
	}
	return "A funny, cocky, sassy guy who loves to tease."
}
