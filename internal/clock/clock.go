// Package clock holds the time-of-day arithmetic used for bedtimes:
// HH:MM parsing, seconds since midnight and wrap-around across midnight.
package clock

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3600
	SecondsPerDay    = 86400
)

// Style selects how a Clock is rendered.
type Style string

const (
	Style24h Style = "24h"
	Style12h Style = "12h"
)

// ParseStyle accepts "24h", "12h" and a few spellings of each.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "24", "24h":
		return Style24h, nil
	case "12", "12h", "ampm":
		return Style12h, nil
	}
	return "", fmt.Errorf("invalid time format %q, expected 12h or 24h", s)
}

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// Parse reads "HH:MM" (24h).
func Parse(s string) (Clock, error) {
	t := strings.TrimSpace(s)
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return Clock{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return Clock{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

// Seconds returns the seconds elapsed since midnight.
func (c Clock) Seconds() int {
	return c.Hour*SecondsPerHour + c.Minute*SecondsPerMinute
}

// FromSeconds maps any second offset, negative included, onto a time of
// day. The second result is the day offset relative to the starting
// midnight (-1 for the previous day). Leftover seconds are truncated.
func FromSeconds(sec int) (Clock, int) {
	days := floorDiv(sec, SecondsPerDay)
	sec = mod(sec, SecondsPerDay)
	return Clock{Hour: sec / SecondsPerHour, Minute: (sec % SecondsPerHour) / SecondsPerMinute}, days
}

// Add shifts c by sec seconds and wraps it onto the clock face.
func (c Clock) Add(sec int) (Clock, int) {
	return FromSeconds(c.Seconds() + sec)
}

// String renders the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Format renders the clock in the given style: "23:00" or "11:00 PM".
func (c Clock) Format(style Style) string {
	if style != Style12h {
		return c.String()
	}
	suffix := "AM"
	if c.Hour >= 12 {
		suffix = "PM"
	}
	h := c.Hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, c.Minute, suffix)
}

func floorDiv(a, b int) int {
	q := a / b
	r := a % b
	if (r != 0) && ((r > 0) != (b > 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
