// Package colour converts colours between the textual notations used on the
// web (names, hex, rgb(), hsl(), hwb(), cmyk() and a couple of extras). Every
// notation is parsed into a Value, which holds RGB channels plus alpha, and
// every other view is recomputed from those channels when it's asked for.
package colour

import (
	"fmt"
	"image/color"
	"math"
)

// Value is the canonical colour: 8-bit RGB channels and an alpha in [0, 1].
// The zero Value is transparent black; use RGB or FromRGB to get an opaque
// colour. Values are immutable and comparable with ==.
type Value struct {
	r, g, b uint8
	a       float64
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Value {
	return Value{r, g, b, 1}
}

// FromRGB validates its arguments and returns the corresponding colour. The
// channels must be in [0, 255] and alpha in [0, 1].
func FromRGB(r, g, b int, a float64) (Value, error) {
	for _, ch := range [3]int{r, g, b} {
		if ch < 0 || ch > 255 {
			return Value{}, newError(OutOfRangeChannel, "",
				fmt.Sprintf("channel %d outside [0, 255]", ch))
		}
	}
	if math.IsNaN(a) || a < 0 || a > 1 {
		return Value{}, newError(OutOfRangeChannel, "",
			fmt.Sprintf("alpha %g outside [0, 1]", a))
	}
	return Value{uint8(r), uint8(g), uint8(b), a}, nil
}

// fromUnit builds a Value from channels in the unit range, as produced by the
// conversion maths. Overshoot is clamped rather than rejected.
func fromUnit(r, g, b, a float64) Value {
	return Value{unitToByte(r), unitToByte(g), unitToByte(b), clampUnit(a)}
}

// FromColor converts any image/color.Color, undoing alpha premultiplication.
func FromColor(c color.Color) Value {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return RGB(n.R, n.G, n.B)
	}
	return Value{n.R, n.G, n.B, float64(n.A) / 255}
}

// R returns the red channel.
func (v Value) R() uint8 { return v.r }

// G returns the green channel.
func (v Value) G() uint8 { return v.g }

// B returns the blue channel.
func (v Value) B() uint8 { return v.b }

// Alpha returns the opacity in [0, 1].
func (v Value) Alpha() float64 { return v.a }

// Opaque reports whether alpha is 1.
func (v Value) Opaque() bool { return v.a >= 1 }

// WithAlpha returns a copy of v with a different alpha, clamped to [0, 1].
func (v Value) WithAlpha(a float64) Value {
	v.a = clampUnit(a)
	return v
}

// RGBA implements color.Color. The result is alpha-premultiplied.
func (v Value) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: v.r, G: v.g, B: v.b, A: alphaByte(v.a)}.RGBA()
}

// Hex returns the lowercase hex form, #rrggbb or #rrggbbaa.
func (v Value) Hex() string {
	return formatHex(v)
}

// String returns the hex form, handy for %v.
func (v Value) String() string {
	return v.Hex()
}

// key packs the RGB channels into a 24-bit integer, ignoring alpha.
func (v Value) key() uint32 {
	return uint32(v.r)<<16 | uint32(v.g)<<8 | uint32(v.b)
}

func clampUnit(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func unitToByte(x float64) uint8 {
	return uint8(math.Round(clampUnit(x) * 255))
}

func alphaByte(a float64) uint8 {
	return unitToByte(a)
}
