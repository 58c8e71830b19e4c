package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Today returns the current local date as "YYYY-MM-DD".
func Today() string {
	return time.Now().Format("2006-01-02")
}

// FormatTime12H renders an "HH:MM" string on a 12-hour clock for display
// in reminder messages, e.g. "14:05" -> "2:05 PM".
func FormatTime12H(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return hhmm
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, parts[1], period)
}

// AgeFromDOB computes a patient's age in whole years from a "YYYY-MM-DD"
// date of birth, relative to now.
func AgeFromDOB(dob string, now time.Time) (int, error) {
	birth, err := time.ParseInLocation("2006-01-02", dob, now.Location())
	if err != nil {
		return 0, fmt.Errorf("invalid date of birth %q: %w", dob, err)
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age, nil
}
