package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/msto63/slyce"
	"github.com/msto63/slyce/internal/render"
	"github.com/msto63/slyce/parser"
)

// options holds the effective settings for a single invocation
type options struct {
	format    string // array document format: json or yaml
	indices   bool
	highlight bool
	color     bool
	verbose   bool
}

// run parses the expression, decodes the array document and writes the
// selection. It is the whole command with the terminal plumbing factored
// away, so tests drive it directly.
func run(expr string, in io.Reader, out, errOut io.Writer, opts options) error {
	s, err := parser.Parse(expr)
	if err != nil {
		return err
	}

	arr, err := decodeArray(in, opts.format)
	if err != nil {
		return err
	}

	if opts.verbose {
		fmt.Fprintf(errOut, "%s selects %d of %d elements\n", s, s.Count(len(arr)), len(arr))
	}

	switch {
	case opts.highlight:
		fmt.Fprintln(out, render.Highlight(render.New(opts.color), s, arr))
	case opts.indices:
		return writeJSON(out, slices.AppendSeq(make([]int, 0, s.Count(len(arr))), s.Indices(len(arr))))
	default:
		return writeJSON(out, slices.AppendSeq(make([]any, 0, s.Count(len(arr))), slyce.Apply(s, arr)))
	}
	return nil
}

// decodeArray reads a flat array document in the given format
func decodeArray(in io.Reader, format string) ([]any, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read array: %w", err)
	}

	var arr []any
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &arr); err != nil {
			return nil, fmt.Errorf("decode YAML array: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &arr); err != nil {
			return nil, fmt.Errorf("decode JSON array: %w", err)
		}
	}
	return arr, nil
}

// writeJSON prints a single compact JSON document followed by a newline
func writeJSON(out io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
