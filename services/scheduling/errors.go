package scheduling

import "errors"

var (
	// ErrInvalidDuration indicates a non-positive appointment duration.
	ErrInvalidDuration = errors.New("appointment duration must be a positive number of minutes")
	// ErrInvalidTimeFormat indicates a time string outside strict "HH:MM".
	ErrInvalidTimeFormat = errors.New("time must be \"HH:MM\" on a 24-hour clock")
	// ErrInvalidDate indicates a date string outside "YYYY-MM-DD".
	ErrInvalidDate = errors.New("date must be \"YYYY-MM-DD\"")
)
