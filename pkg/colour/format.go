package colour

import (
	"fmt"
	"math"
	"strings"
)

// FormatKind selects a textual notation.
type FormatKind int

// The first six kinds are the standard ones; NCol and HSV are extras.
const (
	KindName FormatKind = iota
	KindRGB
	KindHex
	KindHSL
	KindHWB
	KindCMYK
	KindNCol
	KindHSV
	numKinds
)

var kindNames = [numKinds]string{
	"name", "rgb", "hex", "hsl", "hwb", "cmyk", "ncol", "hsv",
}

var kindDescriptions = [numKinds]string{
	"Named colors - Standard CSS color names like 'red', 'blue', etc.",
	"RGB (Red, Green, Blue) - Color model based on adding red, green, and blue light.",
	"HEX - Hexadecimal color representation commonly used in web development.",
	"HSL (Hue, Saturation, Lightness) - Represents colors by their hue, saturation, and lightness values.",
	"HWB (Hue, Whiteness, Blackness) - Similar to HSL but uses whiteness and blackness instead of saturation and lightness.",
	"CMYK (Cyan, Magenta, Yellow, Key/Black) - Subtractive color model used in color printing.",
	"NCol (Natural Color System) - A color system based on how humans perceive color with hue and whiteness/blackness.",
	"HSV (Hue, Saturation, Value) - Represents colors by hue, saturation and brightness.",
}

// unsupported is rendered for a FormatKind outside the known set.
const unsupported = "Format not supported"

// Kinds returns the six standard kinds in display order.
func Kinds() []FormatKind {
	return []FormatKind{KindName, KindRGB, KindHex, KindHSL, KindHWB, KindCMYK}
}

// AllKinds returns every supported kind, the standard six first.
func AllKinds() []FormatKind {
	return append(Kinds(), KindNCol, KindHSV)
}

// ParseKind is the inverse of FormatKind.String, ignoring case.
func ParseKind(s string) (FormatKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if s == name {
			return FormatKind(k), nil
		}
	}
	return 0, fmt.Errorf("colour: unknown format kind %q", s)
}

func (k FormatKind) valid() bool {
	return k >= 0 && k < numKinds
}

func (k FormatKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("FormatKind(%d)", int(k))
	}
	return kindNames[k]
}

// Description is a one-line explanation of the notation, suitable for a
// tooltip.
func (k FormatKind) Description() string {
	if !k.valid() {
		return ""
	}
	return kindDescriptions[k]
}

// Format renders v in the notation selected by kind. It never fails: a colour
// missing from the name table renders as "No name".
func Format(v Value, kind FormatKind) string {
	switch kind {
	case KindName:
		if name, ok := Name(v); ok {
			return name
		}
		return noName
	case KindRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", v.r, v.g, v.b)
	case KindHex:
		return formatHex(v)
	case KindHSL:
		hsl := v.HSL()
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
			roundHue(hsl.H), round(hsl.S), round(hsl.L))
	case KindHWB:
		hwb := v.HWB()
		return fmt.Sprintf("hwb(%d, %d%%, %d%%)",
			roundHue(hwb.H), round(hwb.W), round(hwb.B))
	case KindCMYK:
		cmyk := v.CMYK()
		return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)",
			round(cmyk.C), round(cmyk.M), round(cmyk.Y), round(cmyk.K))
	case KindNCol:
		return formatNCol(v)
	case KindHSV:
		hsv := v.HSV()
		return fmt.Sprintf("hsv(%d, %d%%, %d%%)",
			roundHue(hsv.H), round(hsv.S), round(hsv.V))
	}
	return unsupported
}

// Convert is the same as Format.
func Convert(v Value, kind FormatKind) string {
	return Format(v, kind)
}

// formatHex drops the alpha digits when they would be ff, so the output
// always parses back to the alpha it shows.
func formatHex(v Value) string {
	if alphaByte(v.a) == 255 {
		return fmt.Sprintf("#%02x%02x%02x", v.r, v.g, v.b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", v.r, v.g, v.b, alphaByte(v.a))
}

// ncolLetters are the NCol hue letters, 60 degrees apart starting at red.
const ncolLetters = "RYGCBM"

func formatNCol(v Value) string {
	hwb := v.HWB()
	sector := int(hwb.H / 60)
	pct := round((hwb.H - float64(sector)*60) / 0.6)
	if pct >= 100 {
		sector++
		pct = 0
	}
	return fmt.Sprintf("%c%d, %d%%, %d%%", ncolLetters[sector%6], pct,
		round(hwb.W), round(hwb.B))
}

// round is half away from zero.
func round(x float64) int {
	return int(math.Round(x))
}

func roundHue(h float64) int {
	return round(h) % 360
}
