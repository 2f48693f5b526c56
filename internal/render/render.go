// Package render formats truth tables as text in several output modes.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/leaplogic/internal/truthtable"
)

// Mode selects an output format.
type Mode string

// Supported output modes.
const (
	ModeHuman    Mode = "human"
	ModeLaTeX    Mode = "latex"
	ModeMarkdown Mode = "markdown"
	ModeCSV      Mode = "csv"
	ModeJSON     Mode = "json"
)

// Modes lists the valid mode names for flag help and validation.
var Modes = []Mode{ModeHuman, ModeLaTeX, ModeMarkdown, ModeCSV, ModeJSON}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if Mode(s) == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid format %q: must be one of %s", s, modeNames())
}

func modeNames() string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return strings.Join(names, "|")
}

// ParseBoolPair parses a "<false>,<true>" display override, e.g. "0,1"
// or "f,w". Both values must be non-empty.
func ParseBoolPair(s string) (falseStr, trueStr string, err error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed bool format %q: expected \"<false>,<true>\" (e.g. \"0,1\")", s)
	}
	return parts[0], parts[1], nil
}

// Options configures rendering. There is no process-wide default state;
// every rendering call receives its configuration explicitly.
type Options struct {
	Mode Mode

	// FalseStr and TrueStr display boolean cells. Both must be set
	// together; Defaults() fills in "F" and "T".
	FalseStr string
	TrueStr  string
}

// Defaults returns a copy of o with unset fields filled in.
func (o Options) Defaults() Options {
	if o.Mode == "" {
		o.Mode = ModeHuman
	}
	if o.FalseStr == "" && o.TrueStr == "" {
		o.FalseStr, o.TrueStr = "F", "T"
	}
	return o
}

// Render writes the table to w in the configured mode: one header row
// of variable names followed by each statement's display form, then one
// line per table row.
func Render(w io.Writer, t *truthtable.Table, opts Options) error {
	opts = opts.Defaults()

	switch opts.Mode {
	case ModeHuman:
		return renderHuman(w, t, opts)
	case ModeLaTeX:
		return renderLaTeX(w, t, opts)
	case ModeMarkdown:
		return renderMarkdown(w, t, opts)
	case ModeCSV:
		return renderCSV(w, t, opts)
	case ModeJSON:
		return renderJSON(w, t, opts)
	default:
		return fmt.Errorf("invalid format %q: must be one of %s", opts.Mode, modeNames())
	}
}

// header returns the column titles: variables first, then each
// statement's display form.
func header(t *truthtable.Table, mode Mode) []string {
	cols := make([]string, 0, len(t.Variables)+len(t.Statements))
	cols = append(cols, t.Variables...)
	for _, stmt := range t.Statements {
		cols = append(cols, FormatExpr(stmt.Root, mode))
	}
	return cols
}

// cells returns one row's display strings: assignment values first,
// then statement results.
func cells(row truthtable.Row, opts Options) []string {
	out := make([]string, 0, len(row.Values)+len(row.Results))
	for _, v := range row.Values {
		out = append(out, formatBool(v, opts))
	}
	for _, r := range row.Results {
		out = append(out, formatBool(r, opts))
	}
	return out
}

func formatBool(v bool, opts Options) string {
	if v {
		return opts.TrueStr
	}
	return opts.FalseStr
}

// renderHuman writes an aligned terminal table.
func renderHuman(w io.Writer, t *truthtable.Table, opts Options) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	cols := header(t, opts.Mode)
	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	tw.AppendHeader(headerRow)

	for _, row := range t.Rows {
		values := cells(row, opts)
		tr := make(table.Row, len(values))
		for i, v := range values {
			tr[i] = v
		}
		tw.AppendRow(tr)
	}

	tw.Render()
	return nil
}

// renderMarkdown writes a GitHub-style pipe table.
func renderMarkdown(w io.Writer, t *truthtable.Table, opts Options) error {
	cols := header(t, opts.Mode)
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cols, " | ")); err != nil {
		return err
	}

	seps := make([]string, len(cols))
	for i := range seps {
		seps[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | ")); err != nil {
		return err
	}

	for _, row := range t.Rows {
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(cells(row, opts), " | ")); err != nil {
			return err
		}
	}
	return nil
}

// renderCSV writes comma-separated rows.
func renderCSV(w io.Writer, t *truthtable.Table, opts Options) error {
	writeRow := func(values []string) error {
		escaped := make([]string, len(values))
		for i, v := range values {
			escaped[i] = escapeCSV(v)
		}
		_, err := fmt.Fprintln(w, strings.Join(escaped, ","))
		return err
	}

	if err := writeRow(header(t, opts.Mode)); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writeRow(cells(row, opts)); err != nil {
			return err
		}
	}
	return nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// jsonTable is the JSON rendering of a table.
type jsonTable struct {
	Variables  []string  `json:"variables"`
	Statements []string  `json:"statements"`
	Rows       []jsonRow `json:"rows"`
}

type jsonRow struct {
	Values  []bool `json:"values"`
	Results []bool `json:"results"`
}

// renderJSON writes the table as indented JSON. Booleans stay booleans;
// the FalseStr/TrueStr override only applies to text modes.
func renderJSON(w io.Writer, t *truthtable.Table, _ Options) error {
	out := jsonTable{
		Variables: t.Variables,
		Rows:      make([]jsonRow, len(t.Rows)),
	}
	for _, stmt := range t.Statements {
		out.Statements = append(out.Statements, FormatExpr(stmt.Root, ModeHuman))
	}
	for i, row := range t.Rows {
		out.Rows[i] = jsonRow{Values: row.Values, Results: row.Results}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
