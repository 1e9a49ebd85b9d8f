package players

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultHeightInches is used whenever a height string cannot be parsed (6'0").
const DefaultHeightInches = 72

// ErrInvalidHeight is returned for height strings that are not in feet'inches form.
var ErrInvalidHeight = errors.New("invalid height")

// ParseHeight converts a feet'inches string such as 6'6" into inches.
// A missing inches part counts as zero.
func ParseHeight(raw string) (int, error) {
	parts := strings.Split(raw, "'")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHeight, raw)
	}

	feet, ok := LeadingInt(parts[0])
	if !ok || feet < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHeight, raw)
	}

	inches := 0
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		inches, ok = LeadingInt(parts[1])
		if !ok || inches < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidHeight, raw)
		}
	}
	return feet*12 + inches, nil
}

// ParseHeightOrDefault parses raw and falls back to DefaultHeightInches. The
// parse error is returned alongside the fallback so callers can record it.
func ParseHeightOrDefault(raw string) (int, error) {
	inches, err := ParseHeight(raw)
	if err != nil {
		return DefaultHeightInches, err
	}
	return inches, nil
}

// LeadingInt parses the integer at the start of s after trimming whitespace,
// with an optional leading sign, so `6"` yields 6, "87.5" yields 87 and
// "-5" yields -5.
func LeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	start := 0
	if start < len(s) && (s[start] == '+' || s[start] == '-') {
		start++
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
