package mapping

import (
	"fmt"
	"math"
)

// ValenceArousalColor picks an accent color from a position on the
// valence/arousal plane. Negative valence lands in the blues, positive in
// the yellow-to-red range; arousal drives saturation and brightness.
func ValenceArousalColor(valence, arousal float64) Color {
	valence = clampAxis(valence)
	arousal = clampAxis(arousal)

	var hue float64
	if valence < 0 {
		hue = 240 + valence*60 // 240 (blue) down to 180 (cyan)
	} else {
		hue = 60 - valence*60 // 60 (yellow) down to 0 (red)
	}

	saturation := clamp01(0.5 + arousal*0.5)
	brightness := clamp01(0.5 + arousal*0.3)

	r, g, b := hsbToRGB(hue, saturation, brightness)
	return Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
}

func hsbToRGB(hue, saturation, brightness float64) (int, int, int) {
	h := hue / 60
	i := int(math.Floor(h)) % 6
	f := h - math.Floor(h)

	p := brightness * (1 - saturation)
	q := brightness * (1 - saturation*f)
	t := brightness * (1 - saturation*(1-f))

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = brightness, t, p
	case 1:
		r, g, b = q, brightness, p
	case 2:
		r, g, b = p, brightness, t
	case 3:
		r, g, b = p, q, brightness
	case 4:
		r, g, b = t, p, brightness
	default:
		r, g, b = brightness, p, q
	}

	return int(r * 255), int(g * 255), int(b * 255)
}

func clampAxis(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
