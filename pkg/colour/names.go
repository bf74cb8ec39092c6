package colour

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// noName is what the name format renders for colours missing from the table.
const noName = "No name"

// canonicalNames lists the CSS/SVG colour keywords in the spelling used for
// display. Order matters: where several names share an RGB value (Aqua and
// Cyan, Fuchsia and Magenta, the Gray/Grey pairs) the first one listed is the
// one returned by a lookup by value.
var canonicalNames = [...]string{
	"AliceBlue",
	"AntiqueWhite",
	"Aqua",
	"Aquamarine",
	"Azure",
	"Beige",
	"Bisque",
	"Black",
	"BlanchedAlmond",
	"Blue",
	"BlueViolet",
	"Brown",
	"BurlyWood",
	"CadetBlue",
	"Chartreuse",
	"Chocolate",
	"Coral",
	"CornflowerBlue",
	"Cornsilk",
	"Crimson",
	"Cyan",
	"DarkBlue",
	"DarkCyan",
	"DarkGoldenRod",
	"DarkGray",
	"DarkGreen",
	"DarkGrey",
	"DarkKhaki",
	"DarkMagenta",
	"DarkOliveGreen",
	"DarkOrange",
	"DarkOrchid",
	"DarkRed",
	"DarkSalmon",
	"DarkSeaGreen",
	"DarkSlateBlue",
	"DarkSlateGray",
	"DarkSlateGrey",
	"DarkTurquoise",
	"DarkViolet",
	"DeepPink",
	"DeepSkyBlue",
	"DimGray",
	"DimGrey",
	"DodgerBlue",
	"FireBrick",
	"FloralWhite",
	"ForestGreen",
	"Fuchsia",
	"Gainsboro",
	"GhostWhite",
	"Gold",
	"GoldenRod",
	"Gray",
	"Grey",
	"Green",
	"GreenYellow",
	"HoneyDew",
	"HotPink",
	"IndianRed",
	"Indigo",
	"Ivory",
	"Khaki",
	"Lavender",
	"LavenderBlush",
	"LawnGreen",
	"LemonChiffon",
	"LightBlue",
	"LightCoral",
	"LightCyan",
	"LightGoldenRodYellow",
	"LightGray",
	"LightGreen",
	"LightGrey",
	"LightPink",
	"LightSalmon",
	"LightSeaGreen",
	"LightSkyBlue",
	"LightSlateGray",
	"LightSlateGrey",
	"LightSteelBlue",
	"LightYellow",
	"Lime",
	"LimeGreen",
	"Linen",
	"Magenta",
	"Maroon",
	"MediumAquaMarine",
	"MediumBlue",
	"MediumOrchid",
	"MediumPurple",
	"MediumSeaGreen",
	"MediumSlateBlue",
	"MediumSpringGreen",
	"MediumTurquoise",
	"MediumVioletRed",
	"MidnightBlue",
	"MintCream",
	"MistyRose",
	"Moccasin",
	"NavajoWhite",
	"Navy",
	"OldLace",
	"Olive",
	"OliveDrab",
	"Orange",
	"OrangeRed",
	"Orchid",
	"PaleGoldenRod",
	"PaleGreen",
	"PaleTurquoise",
	"PaleVioletRed",
	"PapayaWhip",
	"PeachPuff",
	"Peru",
	"Pink",
	"Plum",
	"PowderBlue",
	"Purple",
	"Red",
	"RosyBrown",
	"RoyalBlue",
	"SaddleBrown",
	"Salmon",
	"SandyBrown",
	"SeaGreen",
	"SeaShell",
	"Sienna",
	"Silver",
	"SkyBlue",
	"SlateBlue",
	"SlateGray",
	"SlateGrey",
	"Snow",
	"SpringGreen",
	"SteelBlue",
	"Tan",
	"Teal",
	"Thistle",
	"Tomato",
	"Turquoise",
	"Violet",
	"Wheat",
	"White",
	"WhiteSmoke",
	"Yellow",
	"YellowGreen",
}

// nameTable is built once at package initialisation and never modified, so
// concurrent lookups need no locking.
type nameTable struct {
	byValue map[uint32]string
	byName  map[string]Value
}

var names = buildNameTable()

// foldName gives the case-insensitive key of a name. A Caser keeps state, so
// each call gets its own.
func foldName(name string) string {
	return cases.Fold().String(name)
}

func buildNameTable() *nameTable {
	t := &nameTable{
		byValue: make(map[uint32]string, len(canonicalNames)),
		byName:  make(map[string]Value, len(canonicalNames)),
	}
	for _, name := range canonicalNames {
		rgba, ok := colornames.Map[strings.ToLower(name)]
		if !ok {
			panic(fmt.Sprintf("colour: no RGB value for %q", name))
		}
		v := RGB(rgba.R, rgba.G, rgba.B)
		if _, dup := t.byValue[v.key()]; !dup {
			t.byValue[v.key()] = name
		}
		t.byName[foldName(name)] = v
	}
	return t
}

// Name returns the canonical name of v's RGB value, ignoring alpha. ok is
// false if there's no exact match.
func Name(v Value) (name string, ok bool) {
	name, ok = names.byValue[v.key()]
	return
}

// Lookup finds a colour by name, ignoring case.
func Lookup(name string) (Value, bool) {
	v, ok := names.byName[foldName(name)]
	return v, ok
}

// Names returns the table's names in declaration order.
func Names() []string {
	return append([]string(nil), canonicalNames[:]...)
}
