// Package batch converts lists of colours concurrently.
package batch

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/realh/colourconv/pkg/colour"
)

// Row is the result of converting one input. Texts has one entry per
// requested kind and is nil if the input couldn't be parsed.
type Row struct {
	Input string
	Value colour.Value
	Texts []string
	Err   error
}

// ReadLines reads one colour per line, dropping surrounding white space and
// blank lines.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading colours")
	}
	return lines, nil
}

// Convert parses each input and formats it in every kind, running at most
// maxWorkers conversions at once. Rows are returned in input order. A parse
// failure is recorded in its Row; the only error returned is ctx's.
func Convert(ctx context.Context, inputs []string, kinds []colour.FormatKind,
	maxWorkers int,
) ([]Row, error) {
	rows := make([]Row, len(inputs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(maxWorkers, 1))
	for i, input := range inputs {
		if egCtx.Err() != nil {
			break
		}
		i, input := i, input
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			rows[i] = convertOne(input, kinds)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.WithMessage(err, "conversion interrupted")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithMessage(err, "conversion interrupted")
	}
	return rows, nil
}

func convertOne(input string, kinds []colour.FormatKind) Row {
	v, err := colour.Parse(input)
	if err != nil {
		return Row{Input: input, Err: err}
	}
	texts := make([]string, len(kinds))
	for i, k := range kinds {
		texts[i] = colour.Format(v, k)
	}
	return Row{Input: input, Value: v, Texts: texts}
}
