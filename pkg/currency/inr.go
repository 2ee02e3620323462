// Package currency provides display helpers for Indian Rupee amounts.
package currency

import (
	"strconv"
	"strings"
)

// FormatINR formats a number using Indian digit grouping, so 1234567.89
// becomes "₹ 12,34,567.89". The last three integer digits form one group
// and the remaining digits are grouped in pairs.
func FormatINR(number float64) string {
	s := strconv.FormatFloat(number, 'f', -1, 64)

	var sign string
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	var dec string
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s, dec = s[:i], s[i:]
	}

	if len(s) <= 3 {
		return "₹ " + sign + s + dec
	}

	grouped := s[len(s)-3:]
	rest := s[:len(s)-3]
	for len(rest) > 2 {
		grouped = rest[len(rest)-2:] + "," + grouped
		rest = rest[:len(rest)-2]
	}

	return "₹ " + sign + rest + "," + grouped + dec
}
