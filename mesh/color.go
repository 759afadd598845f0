package mesh

import (
	"fmt"
	"math"
)

// ExhaustedColor is the terminal color of a face exhausted at MaxLevel.
const ExhaustedColor = "#1f1f1f"

const (
	goldenAngle = 137.50776405003785 // degrees; spreads level hues evenly

	coolLightness = 0.72
	hotLightness  = 0.38
	saturation    = 0.85
)

// ColorFor derives the display color of a face from its level and click
// count. Level 0..MaxLevel each get a distinct base hue; every click moves
// the hue toward red and darkens it, so the color is monotone in clicks.
// ExhaustedClicks yields ExhaustedColor.
func ColorFor(level, clicks int) string {
	if clicks >= ExhaustedClicks {
		return ExhaustedColor
	}
	if clicks < 0 {
		clicks = 0
	}
	f := float64(clicks) / ChargeClicks

	hue := math.Mod(float64(level)*goldenAngle, 360)
	// Shortest way round the wheel toward 0°.
	toRed := -hue
	if hue > 180 {
		toRed = 360 - hue
	}
	hue = math.Mod(hue+toRed*f+360, 360)
	light := coolLightness + (hotLightness-coolLightness)*f

	r, g, b := hslToRGB(hue, saturation, light)

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// hslToRGB converts h∈[0,360), s,l∈[0,1] to 8-bit channels.
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r1, g1, b1 float64
	switch {
	case hp < 1:
		r1, g1, b1 = c, x, 0
	case hp < 2:
		r1, g1, b1 = x, c, 0
	case hp < 3:
		r1, g1, b1 = 0, c, x
	case hp < 4:
		r1, g1, b1 = 0, x, c
	case hp < 5:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}
	m := l - c/2
	to8 := func(v float64) uint8 { return uint8(math.Round(math.Max(0, math.Min(1, v+m)) * 255)) }

	return to8(r1), to8(g1), to8(b1)
}
