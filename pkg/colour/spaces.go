package colour

import (
	"math"

	"github.com/crazy3lf/colorconv"
)

// HSL is hue in degrees [0, 360) with saturation and lightness as
// percentages [0, 100].
type HSL struct {
	H, S, L float64
}

// HWB is hue in degrees [0, 360) with whiteness and blackness as percentages.
type HWB struct {
	H, W, B float64
}

// HSV is hue in degrees [0, 360) with saturation and value as percentages.
type HSV struct {
	H, S, V float64
}

// CMYK holds the four ink coverages as percentages [0, 100].
type CMYK struct {
	C, M, Y, K float64
}

// The derived views are never rounded here. Rounding only happens when a view
// is rendered as text.

// HSL returns the HSL view of v. Achromatic colours report hue 0.
func (v Value) HSL() HSL {
	lo, hi := minMax(v)
	sum, delta := int(lo)+int(hi), int(hi)-int(lo)
	hsl := HSL{L: percentOf(sum, 510)}
	if delta > 0 {
		hsl.H = v.hue()
		hsl.S = percentOf(delta, 255-absInt(sum-255))
	}
	return hsl
}

// HWB returns the HWB view of v. Whiteness is the smallest channel and
// blackness the complement of the largest.
func (v Value) HWB() HWB {
	lo, hi := minMax(v)
	hwb := HWB{W: percentOf(int(lo), 255), B: percentOf(255-int(hi), 255)}
	if hi > lo {
		hwb.H = v.hue()
	}
	return hwb
}

// HSV returns the HSV view of v.
func (v Value) HSV() HSV {
	lo, hi := minMax(v)
	hsv := HSV{V: percentOf(int(hi), 255)}
	if hi > lo {
		hsv.H = v.hue()
		hsv.S = percentOf(int(hi)-int(lo), int(hi))
	}
	return hsv
}

// hue comes from colorconv, which leaves it unrounded. Its saturation,
// lightness and value are rounded to three places, so those are worked out
// from the channels instead.
func (v Value) hue() float64 {
	h, _, _ := colorconv.RGBToHSV(v.r, v.g, v.b)
	return wrapHue(h)
}

// CMYK returns the naive (uncalibrated) CMYK view of v. Pure black has
// c = m = y = 0.
func (v Value) CMYK() CMYK {
	r := float64(v.r) / 255
	g := float64(v.g) / 255
	b := float64(v.b) / 255
	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return CMYK{K: 100}
	}
	return CMYK{
		C: (1 - r - k) / (1 - k) * 100,
		M: (1 - g - k) / (1 - k) * 100,
		Y: (1 - b - k) / (1 - k) * 100,
		K: k * 100,
	}
}

// FromHSL converts an HSL triple to an opaque colour. The hue wraps, s and l
// are clamped to [0, 100].
func FromHSL(h, s, l float64) Value {
	r, g, b := hslToUnit(h, clampPercent(s)/100, clampPercent(l)/100)
	return fromUnit(r, g, b, 1)
}

// FromHWB converts an HWB triple to an opaque colour. If whiteness and
// blackness add up to more than 100% they are scaled down proportionally,
// giving a grey.
func FromHWB(h, w, b float64) Value {
	w = clampPercent(w) / 100
	b = clampPercent(b) / 100
	if w+b >= 1 {
		grey := w / (w + b)
		return fromUnit(grey, grey, grey, 1)
	}
	r, g, bl := hslToUnit(h, 1, 0.5)
	f := 1 - w - b
	return fromUnit(r*f+w, g*f+w, bl*f+w, 1)
}

// FromHSV converts an HSV triple to an opaque colour.
func FromHSV(h, s, val float64) Value {
	s = clampPercent(s) / 100
	val = clampPercent(val) / 100
	return FromHWB(h, (1-s)*val*100, (1-val)*100)
}

// FromCMYK converts ink coverages to an opaque colour.
func FromCMYK(c, m, y, k float64) Value {
	c = clampPercent(c) / 100
	m = clampPercent(m) / 100
	y = clampPercent(y) / 100
	k = clampPercent(k) / 100
	return fromUnit((1-c)*(1-k), (1-m)*(1-k), (1-y)*(1-k), 1)
}

// hslToUnit works in the unit range for s and l and returns unit RGB.
func hslToUnit(h, s, l float64) (r, g, b float64) {
	h = wrapHue(h) / 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

// wrapHue maps any finite angle into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// percentOf is 100*n/d from a single division, so a ratio whose percentage
// lies exactly half way between two integers is represented exactly.
func percentOf(n, d int) float64 {
	return float64(100*n) / float64(d)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clampPercent(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}

func minMax(v Value) (lo, hi uint8) {
	lo, hi = v.r, v.r
	for _, ch := range [2]uint8{v.g, v.b} {
		lo = min(lo, ch)
		hi = max(hi, ch)
	}
	return
}
