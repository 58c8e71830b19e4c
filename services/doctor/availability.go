package doctor

import (
	"fmt"

	"asclepius/models"
	"asclepius/services/scheduling"

	"go.mongodb.org/mongo-driver/bson"
)

// Appointment duration bounds in minutes, matching the signup form.
const (
	minAppointmentDuration = 10
	maxAppointmentDuration = 120
)

// UpdateAvailability replaces the doctor's availability configuration
// wholesale after validating every window.
func (s *DefaultDoctorService) UpdateAvailability(id string, update models.AvailabilityUpdate) (*models.Doctor, error) {
	if err := validateAvailability(update.AppointmentAvailability, update.AppointmentDuration); err != nil {
		return nil, err
	}
	if err := validateWindows(update.WalkInAvailability); err != nil {
		return nil, err
	}

	updateDoc := bson.M{
		"walkInAvailability":      update.WalkInAvailability,
		"appointmentAvailability": update.AppointmentAvailability,
		"appointmentDuration":     update.AppointmentDuration,
	}
	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		return nil, err
	}
	return s.GetDoctorByID(id)
}

func validateAvailability(windows []models.AvailabilityWindow, duration int) error {
	if duration < minAppointmentDuration || duration > maxAppointmentDuration {
		return fmt.Errorf("%w: appointment duration must be %d-%d minutes, got %d",
			scheduling.ErrInvalidDuration, minAppointmentDuration, maxAppointmentDuration, duration)
	}
	return validateWindows(windows)
}

// validateWindows checks each window for a known weekday, strict "HH:MM"
// times and a start strictly before the end. Overlap between windows is
// allowed; the generator keeps the duplicate slots overlaps produce.
func validateWindows(windows []models.AvailabilityWindow) error {
	for _, w := range windows {
		if !models.ValidDays[w.Day] {
			return fmt.Errorf("unknown day of week %q", w.Day)
		}
		startHour, startMinute, err := scheduling.ParseHHMM(w.StartTime)
		if err != nil {
			return fmt.Errorf("window start %q: %w", w.StartTime, err)
		}
		endHour, endMinute, err := scheduling.ParseHHMM(w.EndTime)
		if err != nil {
			return fmt.Errorf("window end %q: %w", w.EndTime, err)
		}
		if startHour > endHour || (startHour == endHour && startMinute >= endMinute) {
			return fmt.Errorf("window %s %s-%s: start must be before end", w.Day, w.StartTime, w.EndTime)
		}
	}
	return nil
}
