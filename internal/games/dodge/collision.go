package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Collides tests two circles given by their centers and diameters.
// The threshold is the sum of diameters scaled by factor, which is smaller
// than a true sum-of-radii test for factors below 0.5. Touching exactly at
// the threshold does not count.
func Collides(px, py, pSize, ox, oy, oSize, factor float64) bool {
	return core.Distance(px, py, ox, oy) < (pSize+oSize)*factor
}
