package ui

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	tableCellMaxWidth = 50
	tableCellEllipsis = "..."
	tableColumnGap    = 2
)

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row ...string) {
	builder.rows = append(builder.rows, row)
}

// Len returns the number of rows added so far.
func (builder *TableBuilder) Len() int {
	return len(builder.rows)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows as a left-aligned table. Cell widths
// ignore ANSI styling. The last column is never padded.
func FormatTable(headers []string, rows [][]string) string {
	all := make([][]string, 0, len(rows)+1)
	all = append(all, normalizeRow(headers))
	for _, row := range rows {
		all = append(all, normalizeRow(row))
	}

	widths := make([]int, len(headers))
	for _, row := range all {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if width := ansi.PrintableRuneWidth(cell); width > widths[i] {
				widths[i] = width
			}
		}
	}

	var builder strings.Builder
	for _, row := range all {
		for i, cell := range row {
			builder.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			pad := tableColumnGap
			if i < len(widths) {
				pad += widths[i] - ansi.PrintableRuneWidth(cell)
			}
			builder.WriteString(strings.Repeat(" ", pad))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

// TruncateTableCell limits a cell to the table's maximum width.
func TruncateTableCell(value string) string {
	return TruncateWidth(normalizeTableCell(value), tableCellMaxWidth)
}

// TruncateWidth cuts value to width visible characters, ending with an
// ellipsis when anything was removed.
func TruncateWidth(value string, width int) string {
	if ansi.PrintableRuneWidth(value) <= width {
		return value
	}
	if width <= len(tableCellEllipsis) {
		return tableCellEllipsis
	}
	return truncate.StringWithTail(value, uint(width), tableCellEllipsis)
}

func normalizeRow(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = normalizeTableCell(cell)
	}
	return out
}

func normalizeTableCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}
