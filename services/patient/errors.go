package patient

import "errors"

var (
	// ErrPhoneTaken is returned when a patient with the same phone already exists.
	ErrPhoneTaken = errors.New("a patient with this phone number already exists")
	// ErrNotFound is returned when no patient matches the given ID.
	ErrNotFound = errors.New("patient not found")
)
