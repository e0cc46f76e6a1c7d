// Package timeslot models half-open wall-clock time intervals used by venue
// bookings and timetable sessions. An interval covers [Start, End) on a single
// calendar date; times are minutes since midnight, so cross-midnight ranges
// are not representable.
package timeslot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Interval errors
var (
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrEmptyInterval     = errors.New("interval end must be after start")
)

// Minutes is a wall-clock time of day expressed as minutes since midnight.
type Minutes int

// ParseClock parses a "HH:MM" string into minutes since midnight.
func ParseClock(s string) (Minutes, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return Minutes(hour*60 + minute), nil
}

// String renders minutes since midnight back to "HH:MM".
func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Interval is a half-open time range [Start, End) within one day.
type Interval struct {
	Start Minutes
	End   Minutes
}

// New builds an interval from "HH:MM" strings, rejecting empty or inverted
// ranges.
func New(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}

	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}

	if e <= s {
		return Interval{}, fmt.Errorf("%w: [%s, %s)", ErrEmptyInterval, s, e)
	}

	return Interval{Start: s, End: e}, nil
}

// Overlaps reports whether two intervals share any instant. Both comparisons
// are strict, so back-to-back intervals (a.End == b.Start) do not overlap.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// String renders the interval as "[HH:MM, HH:MM)".
func (a Interval) String() string {
	return fmt.Sprintf("[%s, %s)", a.Start, a.End)
}
