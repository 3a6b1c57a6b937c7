package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	spanPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	spanUnits   = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseSpan parses a human-friendly day span such as "10d", "2w", or "1w3d"
// and returns the total number of days. Columns are whole local days, so only
// day and week units are accepted.
func ParseSpan(input string) (int, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, fmt.Errorf("timeutil: empty span")
	}

	total := 0
	for len(remaining) > 0 {
		matches := spanPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("timeutil: invalid span segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("timeutil: invalid span value %q: %w", matches[1], err)
		}
		base, ok := spanUnits[matches[2]]
		if !ok {
			return 0, fmt.Errorf("timeutil: unsupported span unit %q", matches[2])
		}
		total += value * base
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, fmt.Errorf("timeutil: span must cover at least one day")
	}
	return total, nil
}
