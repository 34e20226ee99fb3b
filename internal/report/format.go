// Package report renders saved plans as plain-text documents: a summary,
// technical specifications for the material tier, and a cost breakdown.
package report

import (
	"strconv"
	"strings"
)

// Rupees formats an amount with Indian digit grouping, e.g. ₹23,78,376.
func Rupees(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head, last3 := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + "₹" + strings.Join(groups, ",") + "," + last3
}

// SqFt formats an area with one decimal place.
func SqFt(area float64) string {
	return strconv.FormatFloat(area, 'f', 1, 64) + " sq ft"
}

// Dims formats width × length in feet.
func Dims(width, length float64) string {
	return strconv.FormatFloat(width, 'f', 1, 64) + " × " + strconv.FormatFloat(length, 'f', 1, 64) + " ft"
}
