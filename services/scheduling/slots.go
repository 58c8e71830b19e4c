package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"asclepius/models"
)

// GenerateSlots expands a doctor's weekly availability windows into the
// ordered list of bookable "HH:MM" slot starts for one calendar date.
//
// Every window matching the date's weekday contributes independently, in
// input order: starting at the window's start time, a slot is emitted every
// durationMinutes until the end time, which is exclusive. A window whose
// span is not an exact multiple of the duration stops short rather than
// emitting a partial trailing slot. Overlapping windows may produce
// duplicate slot times; the generator does not deduplicate.
//
// A date with no matching windows yields an empty list and no error.
func GenerateSlots(windows []models.AvailabilityWindow, durationMinutes int, date string) ([]string, error) {
	return generateSlotsIn(windows, durationMinutes, date, time.Local)
}

func generateSlotsIn(windows []models.AvailabilityWindow, durationMinutes int, date string, loc *time.Location) ([]string, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, durationMinutes)
	}

	dayName, err := weekdayFor(date, loc)
	if err != nil {
		return nil, err
	}

	var slots []string
	for _, w := range windows {
		if w.Day != dayName {
			continue
		}
		startHour, startMinute, err := ParseHHMM(w.StartTime)
		if err != nil {
			return nil, fmt.Errorf("window start %q: %w", w.StartTime, err)
		}
		endHour, endMinute, err := ParseHHMM(w.EndTime)
		if err != nil {
			return nil, fmt.Errorf("window end %q: %w", w.EndTime, err)
		}

		hour, minute := startHour, startMinute
		for hour < endHour || (hour == endHour && minute < endMinute) {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))

			minute += durationMinutes
			if minute >= 60 {
				hour += minute / 60
				minute %= 60
			}
		}
	}
	return slots, nil
}

// weekdayFor derives the weekday name of a "YYYY-MM-DD" date in the given
// location. The date is decomposed into year/month/day components and a
// local date value constructed from them; parsing the string directly
// would land on UTC midnight and shift the weekday back a day for any
// viewer in a zone behind UTC.
func weekdayFor(date string, loc *time.Location) (models.DayOfWeek, error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return "", fmt.Errorf("%w: got %q", ErrInvalidDate, date)
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", fmt.Errorf("%w: got %q", ErrInvalidDate, date)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	// time.Date normalizes out-of-range components (e.g. Feb 31 becomes
	// Mar 2); a round-trip mismatch means the date never existed.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", fmt.Errorf("%w: got %q", ErrInvalidDate, date)
	}
	return models.DayOfWeek(t.Weekday().String()), nil
}

// ParseHHMM parses a strict "HH:MM" 24-hour time string into hour and
// minute components.
func ParseHHMM(s string) (int, int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, fmt.Errorf("%w: got %q", ErrInvalidTimeFormat, s)
	}
	hour, err1 := strconv.Atoi(s[:2])
	minute, err2 := strconv.Atoi(s[3:])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: got %q", ErrInvalidTimeFormat, s)
	}
	return hour, minute, nil
}
