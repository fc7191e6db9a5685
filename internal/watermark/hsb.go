package watermark

import "math"

// The mark rides on the brightness component of the HSB color model
// (value = max channel), not on photometric luma.  Hue and saturation
// pass through embedding unchanged, so these two conversions must be
// exact inverses on unmodified pixels.

// rgbToHSB converts 8-bit RGB to hue, saturation, brightness in [0,1].
func rgbToHSB(r, g, b uint8) (h, s, v float64) {
	maxC := r
	if g > maxC {
		maxC = g
	}
	if b > maxC {
		maxC = b
	}
	minC := r
	if g < minC {
		minC = g
	}
	if b < minC {
		minC = b
	}

	v = float64(maxC) / 255
	if maxC == 0 {
		return 0, 0, 0
	}
	delta := float64(maxC - minC)
	s = delta / float64(maxC)
	if delta == 0 {
		return 0, 0, v
	}

	rc := (float64(maxC) - float64(r)) / delta
	gc := (float64(maxC) - float64(g)) / delta
	bc := (float64(maxC) - float64(b)) / delta
	switch maxC {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	h /= 6
	if h < 0 {
		h++
	}
	return h, s, v
}

// hsbToRGB converts hue, saturation, brightness in [0,1] back to 8-bit
// RGB.
func hsbToRGB(h, s, v float64) (uint8, uint8, uint8) {
	if s == 0 {
		c := scale255(v)
		return c, c, c
	}
	h6 := (h - math.Floor(h)) * 6
	f := h6 - math.Floor(h6)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(h6) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return scale255(r), scale255(g), scale255(b)
}

func scale255(v float64) uint8 {
	return uint8(v*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
