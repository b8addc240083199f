package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock instant on the simulated service day,
// stored as the offset from midnight.
type TimeOfDay time.Duration

// At returns the time of day for the given hour and minute.
func At(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// ParseTimeOfDay parses a 24-hour "HH:MM" clock value. Single digit hours ("9:05") are accepted.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("parse time %q: %w: expected HH:MM", s, ErrMalformedTime)
	}

	hour, err := parseClockField(parts[0], 1)
	if err != nil || hour > 23 {
		return 0, fmt.Errorf("parse time %q: %w: hour must be 0-23", s, ErrMalformedTime)
	}

	minute, err := parseClockField(parts[1], 2)
	if err != nil || minute > 59 {
		return 0, fmt.Errorf("parse time %q: %w: minute must be 0-59", s, ErrMalformedTime)
	}

	return At(hour, minute), nil
}

func parseClockField(s string, minDigits int) (int, error) {
	if len(s) < minDigits || len(s) > 2 {
		return 0, fmt.Errorf("field %q has %d digits", s, len(s))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("field %q is not numeric", s)
		}
	}
	return strconv.Atoi(s)
}

func (t TimeOfDay) Add(d time.Duration) TimeOfDay { return t + TimeOfDay(d) }

func (t TimeOfDay) Sub(u TimeOfDay) time.Duration { return time.Duration(t - u) }

func (t TimeOfDay) Before(u TimeOfDay) bool { return t < u }

func (t TimeOfDay) After(u TimeOfDay) bool { return t > u }

// String formats the time as HH:MM:SS, truncating sub-second precision.
func (t TimeOfDay) String() string {
	secs := int64(time.Duration(t) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}
