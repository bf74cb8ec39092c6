package colour

import (
	"strings"
	"testing"

	"golang.org/x/image/colornames"
)

func TestNameTableMatchesSVG(t *testing.T) {
	if len(canonicalNames) != len(colornames.Names) {
		t.Errorf("table has %d names, SVG defines %d", len(canonicalNames), len(colornames.Names))
	}
	for _, name := range Names() {
		v, ok := Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) failed", name)
			continue
		}
		want := colornames.Map[strings.ToLower(name)]
		if v != RGB(want.R, want.G, want.B) {
			t.Errorf("Lookup(%q) = %v, want %v", name, v, RGB(want.R, want.G, want.B))
		}
	}
}

func TestNameLookupByValue(t *testing.T) {
	tests := []struct {
		v    Value
		want string
		ok   bool
	}{
		{RGB(65, 105, 225), "RoyalBlue", true},
		{RGB(0, 0, 0), "Black", true},
		{RGB(255, 255, 255), "White", true},
		{RGB(255, 0, 255), "Fuchsia", true},
		{RGB(0, 255, 255), "Aqua", true},
		{RGB(128, 128, 128), "Gray", true},
		{RGB(47, 79, 79), "DarkSlateGray", true},
		{RGB(65, 105, 225).WithAlpha(0.5), "RoyalBlue", true},
		{RGB(65, 105, 226), "", false},
	}
	for _, tt := range tests {
		got, ok := Name(tt.v)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Name(%v) = %q, %v; want %q, %v", tt.v, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDuplicateNameIsStable(t *testing.T) {
	magenta := RGB(255, 0, 255)
	first := Format(magenta, KindName)
	for i := 0; i < 100; i++ {
		if got := Format(magenta, KindName); got != first {
			t.Fatalf("call %d returned %q, first call %q", i, got, first)
		}
	}
	// Both spellings still parse.
	for _, name := range []string{"fuchsia", "Magenta"} {
		if v, ok := Lookup(name); !ok || v != magenta {
			t.Errorf("Lookup(%q) = %v, %v", name, v, ok)
		}
	}
}

func TestLookupIgnoresCase(t *testing.T) {
	for _, name := range []string{"royalblue", "ROYALBLUE", "RoyalBlue", "rOyAlBlUe"} {
		if v, ok := Lookup(name); !ok || v != RGB(65, 105, 225) {
			t.Errorf("Lookup(%q) = %v, %v", name, v, ok)
		}
	}
	if _, ok := Lookup("rebeccapurple"); ok {
		t.Error("rebeccapurple isn't in the table")
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	n := Names()
	n[0] = "Nonsense"
	if Names()[0] != "AliceBlue" {
		t.Error("Names() exposes the table")
	}
}
