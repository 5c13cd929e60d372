package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCivilDate parses a YYYY-MM-DD calendar date.
func ParseCivilDate(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("date must be YYYY-MM-DD, got %q", s)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("date year: %w", err)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("date month: %w", err)
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("date day: %w", err)
	}
	if month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("date month out of range: %d", month)
	}
	if day < 1 || day > 31 {
		return 0, 0, 0, fmt.Errorf("date day out of range: %d", day)
	}
	return year, month, day, nil
}

// ParseClock parses a 24h HH:MM or HH:MM:SS clock time into decimal hours.
func ParseClock(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("time must be HH:MM or HH:MM:SS, got %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("time hour: %w", err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("time minute: %w", err)
	}
	sec := 0
	if len(parts) == 3 {
		sec, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, fmt.Errorf("time second: %w", err)
		}
	}
	if h < 0 || h > 23 {
		return 0, fmt.Errorf("time hour out of range: %d", h)
	}
	if m < 0 || m > 59 {
		return 0, fmt.Errorf("time minute out of range: %d", m)
	}
	if sec < 0 || sec > 59 {
		return 0, fmt.Errorf("time second out of range: %d", sec)
	}
	return float64(h) + float64(m)/60 + float64(sec)/3600, nil
}
