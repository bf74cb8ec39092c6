package colour

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatRoyalBlue(t *testing.T) {
	v, err := Parse("royalblue")
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]string{}
	for _, k := range AllKinds() {
		got[k.String()] = Format(v, k)
	}
	want := map[string]string{
		"name": "RoyalBlue",
		"rgb":  "rgb(65, 105, 225)",
		"hex":  "#4169e1",
		"hsl":  "hsl(225, 73%, 57%)",
		"hwb":  "hwb(225, 25%, 12%)",
		"cmyk": "cmyk(71%, 53%, 0%, 12%)",
		"ncol": "C75, 25%, 12%",
		"hsv":  "hsv(225, 71%, 88%)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		v    Value
		kind FormatKind
		want string
	}{
		{RGB(0, 0, 0), KindCMYK, "cmyk(0%, 0%, 0%, 100%)"},
		{RGB(0, 0, 0), KindHSL, "hsl(0, 0%, 0%)"},
		{RGB(0, 0, 0), KindHWB, "hwb(0, 0%, 100%)"},
		{RGB(0, 0, 0), KindNCol, "R0, 0%, 100%"},
		{RGB(255, 255, 255), KindCMYK, "cmyk(0%, 0%, 0%, 0%)"},
		{RGB(255, 255, 255), KindName, "White"},
		{RGB(255, 0, 255), KindName, "Fuchsia"},
		{RGB(1, 2, 3), KindName, "No name"},
		{RGB(255, 0, 0), KindHex, "#ff0000"},
		{RGB(255, 0, 0).WithAlpha(0.5), KindHex, "#ff000080"},
		{RGB(255, 0, 0).WithAlpha(0.5), KindRGB, "rgb(255, 0, 0)"},
		{RGB(255, 0, 0).WithAlpha(0), KindHex, "#ff000000"},
		{RGB(255, 0, 1), KindHSL, "hsl(0, 100%, 50%)"},
		{RGB(255, 255, 0), KindNCol, "Y0, 0%, 0%"},
		{RGB(128, 128, 128), KindHWB, "hwb(0, 50%, 50%)"},
		{RGB(0, 128, 0), KindHSL, "hsl(120, 100%, 25%)"},
		{RGB(0, 0, 0x1c), KindHSL, "hsl(240, 100%, 5%)"},
		{RGB(0, 0, 0x1c), KindHSV, "hsv(240, 100%, 11%)"},
		{RGB(65, 105, 225).WithAlpha(0.999), KindHex, "#4169e1"},
		{RGB(65, 105, 225).WithAlpha(0.001), KindHex, "#4169e100"},
		{RGB(1, 2, 3), FormatKind(99), "Format not supported"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Format(tt.v, tt.kind); got != tt.want {
				t.Errorf("Format(%v, %v) = %q, want %q", tt.v, tt.kind, got, tt.want)
			}
			if got := Convert(tt.v, tt.kind); got != tt.want {
				t.Errorf("Convert(%v, %v) = %q, want %q", tt.v, tt.kind, got, tt.want)
			}
		})
	}
}

// roundTripTolerance is the largest channel error each notation can
// introduce: hue and percentages are rendered as whole numbers, and one
// percent of lightness is more than two and a half channel steps.
var roundTripTolerance = map[FormatKind]int{
	KindRGB:  0,
	KindHex:  0,
	KindCMYK: 3,
	KindHWB:  4,
	KindNCol: 4,
	KindHSL:  6,
	KindHSV:  6,
}

func TestRoundTrip(t *testing.T) {
	for kind, tol := range roundTripTolerance {
		t.Run(kind.String(), func(t *testing.T) {
			worst := 0
			grid(func(v Value) {
				s := Format(v, kind)
				back, err := Parse(s)
				if err != nil {
					t.Fatalf("Parse(Format(%v, %v) = %q): %v", v, kind, s, err)
				}
				worst = max(worst, channelDiff(v, back))
				if d := channelDiff(v, back); d > tol {
					t.Errorf("%v -> %q -> %v is off by %d", v, s, back, d)
				}
			})
			t.Logf("worst error %d", worst)
		})
	}
}

func TestRoundTripNames(t *testing.T) {
	for _, name := range Names() {
		v, _ := Lookup(name)
		back, err := Parse(Format(v, KindName))
		if err != nil || back != v {
			t.Errorf("%s: got %v, %v", name, back, err)
		}
		for kind, tol := range roundTripTolerance {
			back, err := Parse(Format(v, kind))
			if err != nil {
				t.Fatalf("%s as %v: %v", name, kind, err)
			}
			if d := channelDiff(v, back); d > tol {
				t.Errorf("%s as %q comes back as %v", name, Format(v, kind), back)
			}
		}
	}
}

func TestHexKeepsAlpha(t *testing.T) {
	for a := 0; a < 256; a++ {
		v := RGB(10, 20, 30).WithAlpha(float64(a) / 255)
		back, err := Parse(Format(v, KindHex))
		if err != nil {
			t.Fatal(err)
		}
		if back != v {
			t.Errorf("alpha %d: %v alpha %g came back as %v alpha %g",
				a, v, v.Alpha(), back, back.Alpha())
		}
	}
}

func TestHexIsStable(t *testing.T) {
	for _, a := range []float64{0, 0.001, 0.3, 0.998, 0.999, 0.9999, 1} {
		v := RGB(65, 105, 225).WithAlpha(a)
		s := v.Hex()
		back, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if again := back.Hex(); again != s {
			t.Errorf("alpha %g: %q parses back and renders as %q", a, s, again)
		}
		if len(s) == 9 && back.Opaque() {
			t.Errorf("alpha %g: %q parses back as opaque", a, s)
		}
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	grid(func(v Value) {
		for _, k := range AllKinds() {
			if a, b := Format(v, k), Format(v, k); a != b {
				t.Errorf("Format(%v, %v) gave %q then %q", v, k, a, b)
			}
		}
	})
}

func TestParseKind(t *testing.T) {
	for _, k := range AllKinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
		if k.Description() == "" {
			t.Errorf("%v has no description", k)
		}
	}
	if got, err := ParseKind(" HEX "); err != nil || got != KindHex {
		t.Errorf("ParseKind(\" HEX \") = %v, %v", got, err)
	}
	if _, err := ParseKind("lab"); err == nil {
		t.Error("ParseKind(\"lab\") succeeded")
	}
	if got := FormatKind(-1).String(); got != "FormatKind(-1)" {
		t.Errorf("String() = %q", got)
	}
}

func TestKinds(t *testing.T) {
	want := []string{"name", "rgb", "hex", "hsl", "hwb", "cmyk"}
	var got []string
	for _, k := range Kinds() {
		got = append(got, k.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Kinds() mismatch (-want +got):\n%s", diff)
	}
	if n := len(AllKinds()); n != int(numKinds) {
		t.Errorf("AllKinds() has %d kinds, want %d", n, numKinds)
	}
}

func TestConcurrentUse(t *testing.T) {
	inputs := []string{"royalblue", "#abc", "hsl(10, 20%, 30%)", "cmyk(1%, 2%, 3%, 4%)", "bogus"}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		v, err := Parse(in)
		if err != nil {
			want[i] = err.Error()
			continue
		}
		want[i] = Format(v, KindName) + Format(v, KindHSL)
	}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				i := n % len(inputs)
				v, err := Parse(inputs[i])
				got := ""
				if err != nil {
					got = err.Error()
				} else {
					got = Format(v, KindName) + Format(v, KindHSL)
				}
				if got != want[i] {
					t.Errorf("%q: got %q, want %q", inputs[i], got, want[i])
				}
			}
		}()
	}
	wg.Wait()
}
