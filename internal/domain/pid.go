package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Project codes (PIDs) follow the format P<2-digit year><4-digit sequence>,
// e.g. P250007 is the seventh project registered for 2025. Sequences above
// 9999 extend naturally without padding.

// PIDPrefix returns the code prefix for a year, e.g. "P25" for 2025.
func PIDPrefix(year int) string {
	return fmt.Sprintf("P%02d", year%100)
}

// FormatPID builds the canonical project code for a year and sequence.
func FormatPID(year, sequence int) string {
	return fmt.Sprintf("%s%04d", PIDPrefix(year), sequence)
}

// ParsePIDSequence extracts the numeric sequence from a code carrying the
// given year prefix. Returns false for codes in any other format.
func ParsePIDSequence(pid, prefix string) (int, bool) {
	if !strings.HasPrefix(pid, prefix) {
		return 0, false
	}
	rest := pid[len(prefix):]
	if len(rest) < 4 {
		return 0, false
	}
	seq, err := strconv.Atoi(rest)
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}
