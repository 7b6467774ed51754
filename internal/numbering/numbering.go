// Package numbering formats and parses human-readable invoice numbers of
// the form INV-<year>-<sequence>, with the sequence zero-padded to at
// least 3 digits and scoped per year.
package numbering

import (
	"fmt"
	"regexp"
	"strconv"
)

// Prefix is the leading segment of every generated invoice number.
const Prefix = "INV"

var numberPattern = regexp.MustCompile(`^INV-(\d{4})-(\d{3,})$`)

// Format builds an invoice number for the given year and sequence value.
// Padding grows past 3 digits: Format(2026, 1000) = "INV-2026-1000".
func Format(year, seq int) string {
	return fmt.Sprintf("%s-%d-%03d", Prefix, year, seq)
}

// Parse extracts the year and sequence from an invoice number. ok is
// false for numbers that do not match the generated pattern, such as
// caller-supplied overrides.
func Parse(number string) (year, seq int, ok bool) {
	m := numberPattern.FindStringSubmatch(number)
	if m == nil {
		return 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	seq, _ = strconv.Atoi(m[2])
	return year, seq, true
}

// MaxSeq scans existing invoice numbers and returns the highest sequence
// value found for the given year. Numbers outside the generated pattern
// are ignored. Returns 0 when the year has no matching numbers, so the
// first generated sequence is 1.
func MaxSeq(numbers []string, year int) int {
	max := 0
	for _, n := range numbers {
		y, seq, ok := Parse(n)
		if !ok || y != year {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max
}
