package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the blank space between table columns.
const colGap = 2

// TableStyle decorates a table. The zero value renders plain text with a
// dashed rule, which is what report files use.
type TableStyle struct {
	Header func(string) string
	Rule   func(string) string
	// RuleChar draws the line under the headers; empty means "-".
	RuleChar string
}

// Table lays out headers and rows in aligned columns. Widths are measured
// on visible text, so cells that already carry ANSI styling line up.
// Columns listed in rightAlign are padded on the left.
func Table(headers []string, rows [][]string, style TableStyle, rightAlign ...int) string {
	cols := len(headers)
	if cols == 0 {
		return ""
	}
	right := make([]bool, cols)
	for _, c := range rightAlign {
		if c >= 0 && c < cols {
			right[c] = true
		}
	}

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	gap := strings.Repeat(" ", colGap)
	var b strings.Builder
	writeRow := func(cells []string, decorate func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", max(0, widths[i]-lipgloss.Width(cell)))
			if decorate != nil {
				cell = decorate(cell)
			}
			switch {
			case right[i]:
				b.WriteString(pad + cell)
			case i < cols-1:
				b.WriteString(cell + pad)
			default:
				b.WriteString(cell)
			}
			if i < cols-1 {
				b.WriteString(gap)
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, style.Header)

	ruleChar := style.RuleChar
	if ruleChar == "" {
		ruleChar = "-"
	}
	for i, w := range widths {
		rule := strings.Repeat(ruleChar, w)
		if style.Rule != nil {
			rule = style.Rule(rule)
		}
		b.WriteString(rule)
		if i < cols-1 {
			b.WriteString(gap)
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row, nil)
	}
	return b.String()
}
