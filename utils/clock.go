package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Time-of-day arithmetic works on minutes since midnight; "HH:MM" strings
// only exist at the edges (JSON, display).

const MinutesPerDay = 24 * 60

var (
	// ErrTimeFormat marks a string that is not "HH:MM" with a valid hour
	// and minute.
	ErrTimeFormat = errors.New("invalid time format")
	// ErrTimeRange marks a minute value outside [0, 1440).
	ErrTimeRange = errors.New("minutes out of range")
)

// ToMinutes parses "HH:MM" into minutes since midnight. Hours above 23 or
// minutes above 59 are rejected, not wrapped.
func ToMinutes(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrTimeFormat, hhmm)
	}
	for _, r := range hhmm {
		if r != ':' && (r < '0' || r > '9') {
			return 0, fmt.Errorf("%w: %q", ErrTimeFormat, hhmm)
		}
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrTimeFormat, hhmm)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrTimeFormat, hhmm)
	}
	return hours*60 + minutes, nil
}

// ToClockString formats minutes since midnight as zero-padded "HH:MM".
func ToClockString(minutes int) (string, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d", ErrTimeRange, minutes)
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
}
