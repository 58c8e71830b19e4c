package scheduling

import "asclepius/models"

// BookedSet collects the slot times occupied by active appointments for a
// doctor on a date. Cancelled and no-show appointments do not occupy their
// slot, so those times stay bookable.
//
// Callers test generated slots for membership: a booked slot is rendered
// disabled, never removed, so the caller can show that the slot exists but
// is taken.
func BookedSet(appointments []models.Appointment, doctorID, date string) map[string]struct{} {
	booked := make(map[string]struct{})
	for _, a := range appointments {
		if a.DoctorID != doctorID || a.Date != date {
			continue
		}
		if a.Status.Occupies() {
			booked[a.Time] = struct{}{}
		}
	}
	return booked
}
