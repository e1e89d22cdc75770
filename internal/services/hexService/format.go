package hexservice

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Format selects how a conversion result is rendered.
type Format string

const (
	FormatSimple   Format = "simple"
	FormatDetailed Format = "detailed"
	FormatPython   Format = "python"
)

// ParseFormat validates a --format value. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatSimple:
		return FormatSimple, nil
	case FormatDetailed:
		return FormatDetailed, nil
	case FormatPython:
		return FormatPython, nil
	default:
		return "", fmt.Errorf("unknown format: '%s' (valid formats: simple, detailed, python)", s)
	}
}

// Result holds a conversion's inputs and output for rendering.
type Result struct {
	Input     string
	Hex       string
	Padding   int
	Uppercase bool
}

// Render writes the result to w in the requested format.
func (r Result) Render(w io.Writer, format Format) {
	switch format {
	case FormatDetailed:
		r.renderDetailed(w)
	case FormatPython:
		r.renderPython(w)
	default:
		fmt.Fprintln(w, r.Hex)
	}
}

// renderDetailed prints the input, hex output, and output length as a table.
func (r Result) renderDetailed(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendRows([]table.Row{
		{"Input", r.Input},
		{"Hex", r.Hex},
		{"Length", len(r.Hex)},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

// renderPython prints a Python snippet reproducing the conversion, in the
// shape of the f-string this tool grew out of.
func (r Result) renderPython(w io.Writer) {
	upper := ""
	if r.Uppercase {
		upper = ".upper()"
	}

	fmt.Fprintf(w, "print(f'{\"%s\".encode().hex()%s:0%d}')\n", r.Input, upper, r.Padding)
	fmt.Fprintf(w, "# Result: %s\n", r.Hex)
}
