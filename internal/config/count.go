package config

import (
	"math"
	"strconv"
)

// maxCount bounds batch and timeout values.
const maxCount = math.MaxInt32

// parseCount accepts base-10 digits only, in the range 1..maxCount. Signs,
// prefixes like 0x and digit separators are rejected.
func parseCount(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 || n > maxCount {
		return 0, false
	}
	return int(n), true
}

// countFromFloat accepts a decoded JSON number that is integral and in the
// range 1..maxCount.
func countFromFloat(f float64) (int, bool) {
	if f != math.Trunc(f) || f < 1 || f > maxCount {
		return 0, false
	}
	return int(f), true
}
