// Package timeutil provides second/hour conversions shared by the timer and
// the reporting views.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatTime renders accumulated seconds as zero-padded HH:MM:SS. Hours are
// not wrapped at 24, so 90000 seconds renders as "25:00:00".
func FormatTime(sec int) string {
	if sec < 0 {
		sec = 0
	}
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ToHours converts seconds to hours rounded to two decimals for display.
func ToHours(sec int) float64 {
	return math.Round(float64(sec)/3600*100) / 100
}

// ParseHours parses a user-entered hour value. The input must be a plain
// decimal number; anything else is rejected so the caller can discard the
// edit. Negative values clamp to zero and anything above 24 clamps to 24.
func ParseHours(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("empty hour value")
	}
	h, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hour value %q: %w", trimmed, err)
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, fmt.Errorf("invalid hour value %q", trimmed)
	}
	if h < 0 {
		h = 0
	}
	if h > 24 {
		h = 24
	}
	return h, nil
}

// HoursToSeconds converts an hour value to whole seconds, flooring partial
// seconds.
func HoursToSeconds(hours float64) int {
	return int(math.Floor(hours * 3600))
}
