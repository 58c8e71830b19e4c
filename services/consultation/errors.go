package consultation

import "errors"

var (
	// ErrNoFollowUp is returned when a reminder is requested for a
	// consultation without a follow-up date.
	ErrNoFollowUp = errors.New("consultation has no follow-up date")
	// ErrAlreadyNotified is returned when the follow-up reminder was
	// already prepared for this consultation.
	ErrAlreadyNotified = errors.New("follow-up reminder already sent")
)
