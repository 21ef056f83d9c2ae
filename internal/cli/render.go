package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/ffi-clamav/clamav-go/pkg/clamav"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	unsetStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#666666"))
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type fieldRow struct {
	name  string
	kind  string
	value string
	unset bool
}

func fieldRows(values clamav.FieldValues) []fieldRow {
	rows := make([]fieldRow, 0, len(values))
	for _, f := range clamav.Fields() {
		v, ok := values[f]
		if !ok {
			continue
		}
		kind := f.Kind().String()
		if f.ReadOnly() {
			kind += " (ro)"
		}
		row := fieldRow{name: f.String(), kind: kind}
		switch x := v.(type) {
		case clamav.OptionalString:
			row.value, row.unset = x.Value, !x.Set
			if row.unset {
				row.value = "<unset>"
			}
		case time.Time:
			row.value = x.UTC().Format(time.RFC3339)
		default:
			row.value = fmt.Sprint(x)
		}
		rows = append(rows, row)
	}
	return rows
}

// renderFields writes the field table, styled when w is a terminal and as
// tab separated lines otherwise.
func renderFields(w io.Writer, values clamav.FieldValues) {
	rows := fieldRows(values)
	if !isTerminal(w) {
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.name, r.kind, r.value)
		}
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("FIELD", "KIND", "VALUE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 2 && row >= 0 && row < len(rows) && rows[row].unset {
				return unsetStyle
			}
			return cellStyle
		})
	for _, r := range rows {
		t.Row(r.name, r.kind, r.value)
	}
	fmt.Fprintln(w, t.Render())
}
