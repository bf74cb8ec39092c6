package colour

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// grammar is one recognisable notation. accepts decides whether the input is
// meant to be in this notation, after which parse either succeeds or reports
// why it doesn't conform; later grammars aren't tried.
type grammar struct {
	accepts func(s string) bool
	parse   func(s string) (Value, error)
}

// grammars are tried in order, first match wins.
var grammars = [...]grammar{
	{isHex, parseHex},
	{isCMYK, parseCMYK},
	{isFunctional, parseFunctional},
	{isNCol, parseNCol},
	{isName, parseName},
}

// Parse reads a colour in any supported notation: a CSS name, #rgb, #rgba,
// #rrggbb, #rrggbbaa, cmyk(c%, m%, y%, k%), rgb(), rgba(), hsl(), hsla(),
// hwb(), hsv() or NCol. Any error is a *ParseError.
func Parse(text string) (Value, error) {
	s := strings.TrimSpace(text)
	for _, g := range grammars {
		if g.accepts(s) {
			return g.parse(s)
		}
	}
	return Value{}, newError(UnknownFormat, text, "")
}

func isHex(s string) bool {
	return strings.HasPrefix(s, "#")
}

func parseHex(s string) (Value, error) {
	digits := s[1:]
	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		for i := 0; i < len(digits); i++ {
			b.WriteByte(digits[i])
			b.WriteByte(digits[i])
		}
		digits = b.String()
	case 6, 8:
	default:
		return Value{}, newError(MalformedSyntax, s,
			fmt.Sprintf("hex colour needs 3, 4, 6 or 8 digits, got %d",
				len(digits)))
	}
	bytes, err := hex.DecodeString(digits)
	if err != nil {
		return Value{}, newError(MalformedSyntax, s, "invalid hex digit")
	}
	v := RGB(bytes[0], bytes[1], bytes[2])
	if len(bytes) == 4 {
		v.a = float64(bytes[3]) / 255
	}
	return v, nil
}

var cmykPattern = regexp.MustCompile(
	`(?i)^cmyk\((\d{1,3})%, (\d{1,3})%, (\d{1,3})%, (\d{1,3})%\)$`)

func isCMYK(s string) bool {
	return hasPrefixFold(s, "cmyk")
}

// parseCMYK is deliberately strict: integer percentages separated by ", ".
func parseCMYK(s string) (Value, error) {
	m := cmykPattern.FindStringSubmatch(s)
	if m == nil {
		return Value{}, newError(MalformedSyntax, s,
			"expected cmyk(0%, 0%, 0%, 0%)")
	}
	var pct [4]float64
	for i, digits := range m[1:] {
		n, _ := strconv.Atoi(digits)
		if n > 100 {
			return Value{}, newError(OutOfRangeChannel, s,
				fmt.Sprintf("%d%% is more than 100%%", n))
		}
		pct[i] = float64(n)
	}
	return FromCMYK(pct[0], pct[1], pct[2], pct[3]), nil
}

var functionalPrefix = regexp.MustCompile(`(?i)^(rgba?|hsla?|hwb|hsv)\(`)

func isFunctional(s string) bool {
	return functionalPrefix.MatchString(s)
}

// unit is the suffix found on a numeric component.
type unit string

const (
	unitNone    unit = ""
	unitPercent unit = "%"
	unitDegrees unit = "deg"
)

var componentPattern = regexp.MustCompile(
	`^([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)(%|deg)?$`)

type component struct {
	n float64
	u unit
}

func parseFunctional(s string) (Value, error) {
	loc := functionalPrefix.FindStringSubmatchIndex(s)
	fn := strings.ToLower(s[loc[2]:loc[3]])
	if !strings.HasSuffix(s, ")") {
		return Value{}, newError(MalformedSyntax, s, "missing closing parenthesis")
	}
	fields, err := splitComponents(s[loc[1] : len(s)-1])
	if err != nil {
		return Value{}, newError(MalformedSyntax, s, err.Error())
	}
	if len(fields) != 3 && len(fields) != 4 {
		return Value{}, newError(MalformedSyntax, s,
			fmt.Sprintf("expected 3 or 4 components, got %d", len(fields)))
	}
	comps := make([]component, len(fields))
	for i, f := range fields {
		m := componentPattern.FindStringSubmatch(f)
		if m == nil {
			return Value{}, newError(MalformedSyntax, s,
				fmt.Sprintf("%q is not a number", f))
		}
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Value{}, newError(MalformedSyntax, s,
				fmt.Sprintf("%q is not a number", f))
		}
		comps[i] = component{n, unit(m[2])}
	}

	alpha := 1.0
	if len(comps) == 4 {
		if alpha, err = alphaComponent(comps[3]); err != nil {
			return Value{}, withInput(err, s)
		}
	}

	var v Value
	if fn == "rgb" || fn == "rgba" {
		var ch [3]uint8
		for i, c := range comps[:3] {
			if c.u != unitNone {
				return Value{}, newError(MalformedSyntax, s,
					"rgb channels take no unit")
			}
			if c.n < 0 || c.n > 255 {
				return Value{}, newError(OutOfRangeChannel, s,
					fmt.Sprintf("channel %g outside [0, 255]", c.n))
			}
			ch[i] = uint8(round(c.n))
		}
		v = RGB(ch[0], ch[1], ch[2])
	} else {
		h := comps[0]
		if h.u == unitPercent {
			return Value{}, newError(MalformedSyntax, s,
				"hue must be a number or in degrees")
		}
		for _, c := range comps[1:3] {
			if c.u != unitPercent {
				return Value{}, newError(MalformedSyntax, s,
					fmt.Sprintf("%s needs percentages after the hue", fn))
			}
			if c.n < 0 || c.n > 100 {
				return Value{}, newError(OutOfRangeChannel, s,
					fmt.Sprintf("%g%% outside [0%%, 100%%]", c.n))
			}
		}
		switch fn {
		case "hsl", "hsla":
			v = FromHSL(h.n, comps[1].n, comps[2].n)
		case "hwb":
			v = FromHWB(h.n, comps[1].n, comps[2].n)
		case "hsv":
			v = FromHSV(h.n, comps[1].n, comps[2].n)
		}
	}
	return v.WithAlpha(alpha), nil
}

// splitComponents separates on commas if there are any, otherwise on white
// space with an optional "/" before the alpha.
func splitComponents(body string) ([]string, error) {
	if strings.Contains(body, ",") {
		if strings.Contains(body, "/") {
			return nil, fmt.Errorf("can't mix ',' and '/'")
		}
		parts := strings.Split(body, ",")
		for i, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				return nil, fmt.Errorf("empty component")
			}
			if strings.ContainsAny(p, " \t") {
				return nil, fmt.Errorf("missing ',' in %q", p)
			}
			parts[i] = p
		}
		return parts, nil
	}
	fields := strings.Fields(strings.ReplaceAll(body, "/", " / "))
	for i, f := range fields {
		if f != "/" {
			continue
		}
		if i != 3 || len(fields) != 5 {
			return nil, fmt.Errorf("'/' must come before the alpha")
		}
		fields = append(fields[:3], fields[4])
		break
	}
	return fields, nil
}

func alphaComponent(c component) (float64, error) {
	a := c.n
	switch c.u {
	case unitPercent:
		a /= 100
	case unitDegrees:
		return 0, newError(MalformedSyntax, "", "alpha can't be in degrees")
	}
	if a < 0 || a > 1 {
		return 0, newError(OutOfRangeChannel, "",
			fmt.Sprintf("alpha %g outside [0, 1]", a))
	}
	return a, nil
}

var (
	ncolPrefix  = regexp.MustCompile(`(?i)^(ncol\(|[RYGCBM]\d*(\.\d+)?\s*,)`)
	ncolPattern = regexp.MustCompile(
		`(?i)^([RYGCBM])(\d{1,3}(?:\.\d+)?)?\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*,\s*(\d{1,3}(?:\.\d+)?)%$`)
)

func isNCol(s string) bool {
	return ncolPrefix.MatchString(s)
}

func parseNCol(s string) (Value, error) {
	body := s
	if hasPrefixFold(s, "ncol(") {
		if !strings.HasSuffix(s, ")") {
			return Value{}, newError(MalformedSyntax, s,
				"missing closing parenthesis")
		}
		body = strings.TrimSpace(s[len("ncol(") : len(s)-1])
	}
	m := ncolPattern.FindStringSubmatch(body)
	if m == nil {
		return Value{}, newError(MalformedSyntax, s,
			"expected a hue letter and percentage, whiteness and blackness")
	}
	sector := strings.IndexByte(ncolLetters, strings.ToUpper(m[1])[0])
	var pct float64
	if m[2] != "" {
		pct, _ = strconv.ParseFloat(m[2], 64)
	}
	w, _ := strconv.ParseFloat(m[3], 64)
	b, _ := strconv.ParseFloat(m[4], 64)
	if pct >= 100 || w > 100 || b > 100 {
		return Value{}, newError(OutOfRangeChannel, s,
			"hue percentage must be below 100, whiteness and blackness at most 100")
	}
	return FromHWB(float64(sector)*60+pct*0.6, w, b), nil
}

var namePattern = regexp.MustCompile(`^[A-Za-z]+$`)

func isName(s string) bool {
	return namePattern.MatchString(s)
}

func parseName(s string) (Value, error) {
	if v, ok := Lookup(s); ok {
		return v, nil
	}
	return Value{}, newError(UnknownName, s, "")
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// withInput fills in the input of a *ParseError created without one.
func withInput(err error, s string) error {
	if pe, ok := err.(*ParseError); ok && pe.Input == "" {
		pe.Input = s
	}
	return err
}
