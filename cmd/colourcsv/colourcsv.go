// colourcsv converts a list of colours, one per line, to a CSV table with a
// column for each format. If there is an argument it's used as the input
// filename, otherwise stdin is used. The output is on stdout.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"fortio.org/log"
	"github.com/pkg/errors"

	"github.com/realh/colourconv/pkg/batch"
	"github.com/realh/colourconv/pkg/colour"
)

// writeTable writes a header row followed by one row per input. The last
// column holds the parse error, if any.
func writeTable(w io.Writer, kinds []colour.FormatKind, rows []batch.Row) error {
	cw := csv.NewWriter(w)
	header := []string{"input"}
	for _, k := range kinds {
		header = append(header, k.String())
	}
	header = append(header, "error")
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	for _, row := range rows {
		record := append([]string{row.Input}, row.Texts...)
		errText := ""
		if row.Err != nil {
			record = append(record, make([]string, len(kinds))...)
			errText = row.Err.Error()
		}
		if err := cw.Write(append(record, errText)); err != nil {
			return errors.Wrapf(err, "writing CSV row for %q", row.Input)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing CSV")
}

func parseKinds(list string) ([]colour.FormatKind, error) {
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

// readFile reads the colour list from a file, closing it before returning.
func readFile(filename string) ([]string, error) {
	fd, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening '%s'", filename)
	}
	defer fd.Close()
	inputs, err := batch.ReadLines(fd)
	return inputs, errors.Wrapf(err, "reading '%s'", filename)
}

func main() {
	to := flag.String("to", "name,rgb,hex,hsl,hwb,cmyk,ncol,hsv",
		"comma-separated formats to output")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent conversions")
	flag.Parse()

	kinds, err := parseKinds(*to)
	if err != nil {
		log.Fatalf("Bad -to: %v", err)
	}

	var inputs []string
	switch flag.NArg() {
	case 0:
		inputs, err = batch.ReadLines(os.Stdin)
	case 1:
		inputs, err = readFile(flag.Arg(0))
	default:
		log.Fatalf("Usage: colourcsv [-to formats] [-workers n] [file]")
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rows, err := batch.Convert(ctx, inputs, kinds, *workers)
	if err != nil {
		log.Fatalf("%v", err)
	}
	failed := 0
	for _, row := range rows {
		if row.Err != nil {
			log.Warnf("Invalid color '%s': %v", row.Input, row.Err)
			failed++
		}
	}
	if err := writeTable(os.Stdout, kinds, rows); err != nil {
		log.Fatalf("%v", err)
	}
	log.Infof("Converted %d colours, %d invalid", len(rows)-failed, failed)
}
