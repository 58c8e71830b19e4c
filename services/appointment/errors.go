package appointment

import "errors"

var (
	// ErrSlotTaken is returned when the requested slot already holds an
	// active appointment.
	ErrSlotTaken = errors.New("slot is already booked")
	// ErrSlotUnavailable is returned when the requested time is not one of
	// the doctor's generated slots for that date.
	ErrSlotUnavailable = errors.New("slot is not offered on this date")
	// ErrInvalidTransition is returned for status changes on appointments
	// that already left the scheduled state.
	ErrInvalidTransition = errors.New("appointment status can only change while scheduled")
)
