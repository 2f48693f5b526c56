package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/leaplogic/internal/truthtable"
)

// LaTeX tabular layout constants.
const (
	latexColumnDelim = " & "
	latexIndent      = "    "
	latexRowEnd      = ` \\ \hline`
	latexWrapChar    = "$"
)

// renderLaTeX writes a tabular environment with centered columns, math
// mode cells, and an \hline between rows.
func renderLaTeX(w io.Writer, t *truthtable.Table, opts Options) error {
	nCols := len(t.Variables) + len(t.Statements)
	columns := strings.Join(repeat("c", nCols), "|")
	if _, err := fmt.Fprintf(w, "\\begin{tabular}{ %s }\n", columns); err != nil {
		return err
	}

	lines := make([][]string, 0, len(t.Rows)+1)
	lines = append(lines, header(t, opts.Mode))
	for _, row := range t.Rows {
		lines = append(lines, cells(row, opts))
	}

	for i, line := range lines {
		wrapped := make([]string, len(line))
		for j, cell := range line {
			wrapped[j] = latexWrapChar + cell + latexWrapChar
		}
		end := latexRowEnd
		if i == len(lines)-1 {
			end = ""
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", latexIndent, strings.Join(wrapped, latexColumnDelim), end); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "\\end{tabular}")
	return err
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
