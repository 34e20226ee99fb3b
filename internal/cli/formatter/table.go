package formatter

import "github.com/alexanderramin/housewright/internal/report"

var tableStyle = report.TableStyle{
	Header:   func(s string) string { return StyleHeader.Render(s) },
	Rule:     func(s string) string { return StyleDim.Render(s) },
	RuleChar: "─",
}

// RenderTable renders a styled table for the terminal. Columns listed in
// rightAlign are padded on the left, for amounts and areas.
func RenderTable(headers []string, rows [][]string, rightAlign ...int) string {
	return report.Table(headers, rows, tableStyle, rightAlign...)
}
