// colourconv shows a colour in every notation. Colours may be given as
// arguments, otherwise they're read from stdin one per line; a line that
// can't be parsed leaves the current colour unchanged. The first colour is
// royalblue.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/atotto/clipboard"

	"github.com/realh/colourconv/pkg/colour"
	"github.com/realh/colourconv/pkg/swatch"
)

const initialColour = "royalblue"

// session holds the colour being displayed and the most recent input error.
type session struct {
	current colour.Value
	lastErr error
}

func newSession() *session {
	v, _ := colour.Parse(initialColour)
	return &session{current: v}
}

// update replaces the current colour if input parses. Otherwise the current
// colour is kept and the error is remembered.
func (s *session) update(input string) bool {
	v, err := colour.Parse(input)
	if err != nil {
		s.lastErr = err
		return false
	}
	s.current = v
	s.lastErr = nil
	return true
}

// inputErrorMessage is the message shown to the user for a rejected input.
func inputErrorMessage(input string) string {
	if strings.Contains(strings.ToLower(input), "cmyk") {
		return "Invalid CMYK format. Use cmyk(0%, 0%, 0%, 0%)"
	}
	return "Invalid color format. Please check your input."
}

// parseKinds reads a comma-separated list of format kinds.
func parseKinds(list string) ([]colour.FormatKind, error) {
	if list == "all" {
		return colour.AllKinds(), nil
	}
	var kinds []colour.FormatKind
	for _, s := range strings.Split(list, ",") {
		k, err := colour.ParseKind(s)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

type options struct {
	kinds    []colour.FormatKind
	copyKind *colour.FormatKind
	pngFile  string
	pngSize  int
	plain    bool
}

func (o *options) show(v colour.Value) {
	cards := swatch.Cards(v, o.kinds)
	if o.plain {
		fmt.Print(swatch.Plain(cards))
	} else {
		fmt.Println(swatch.Render(v, cards))
	}
	if o.copyKind != nil {
		text := colour.Format(v, *o.copyKind)
		if err := clipboard.WriteAll(text); err != nil {
			log.Errf("Failed to copy %s: %v", text, err)
		} else {
			log.Infof("Copied! %s copied to clipboard", text)
		}
	}
	if o.pngFile != "" {
		if err := swatch.SavePNG(swatch.Image(v, o.pngSize), o.pngFile); err != nil {
			log.Errf("%v", err)
		}
	}
}

func main() {
	to := flag.String("to", "name,rgb,hex,hsl,hwb,cmyk",
		"comma-separated formats to show, or \"all\"")
	copyTo := flag.String("copy", "", "copy this format to the clipboard")
	pngFile := flag.String("png", "", "write a swatch of the colour to this PNG")
	pngSize := flag.Int("size", 64, "width and height of the PNG swatch")
	plain := flag.Bool("plain", false, "print plain text instead of cards")
	flag.Parse()

	kinds, err := parseKinds(*to)
	if err != nil {
		log.Fatalf("Bad -to: %v", err)
	}
	opts := &options{kinds: kinds, pngFile: *pngFile, pngSize: *pngSize, plain: *plain}
	if *copyTo != "" {
		k, err := colour.ParseKind(*copyTo)
		if err != nil {
			log.Fatalf("Bad -copy: %v", err)
		}
		opts.copyKind = &k
	}

	s := newSession()
	if flag.NArg() > 0 {
		failed := 0
		for _, arg := range flag.Args() {
			if !s.update(arg) {
				log.Warnf("%s: %v", inputErrorMessage(arg), s.lastErr)
				failed++
				continue
			}
			opts.show(s.current)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	log.Infof("Enter any color format, e.g. red, #ff0000, rgb(255,0,0), hsl(0,100%%,50%%)")
	opts.show(s.current)
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !s.update(line) {
			log.Warnf("%s: %v", inputErrorMessage(line), s.lastErr)
			continue
		}
		opts.show(s.current)
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("Error reading stdin: %v", err)
	}
}
