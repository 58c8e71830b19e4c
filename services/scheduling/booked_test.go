package scheduling

import (
	"testing"

	"asclepius/models"

	"github.com/stretchr/testify/assert"
)

func appointment(doctorID, date, at string, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{DoctorID: doctorID, Date: date, Time: at, Status: status}
}

func TestBookedSetMarksOnlyActiveAppointments(t *testing.T) {
	appts := []models.Appointment{
		appointment("doc-1", monday, "09:00", models.StatusScheduled),
		appointment("doc-1", monday, "09:30", models.StatusCompleted),
		appointment("doc-1", monday, "10:00", models.StatusCancelled),
		appointment("doc-1", monday, "10:30", models.StatusNoShow),
	}

	booked := BookedSet(appts, "doc-1", monday)

	assert.Contains(t, booked, "09:00")
	assert.Contains(t, booked, "09:30")
	assert.NotContains(t, booked, "10:00", "cancelled frees the slot")
	assert.NotContains(t, booked, "10:30", "no-show frees the slot")
}

func TestBookedSetFiltersDoctorAndDate(t *testing.T) {
	appts := []models.Appointment{
		appointment("doc-1", monday, "09:00", models.StatusScheduled),
		appointment("doc-2", monday, "09:30", models.StatusScheduled),
		appointment("doc-1", "2025-06-03", "10:00", models.StatusScheduled),
	}

	booked := BookedSet(appts, "doc-1", monday)

	assert.Len(t, booked, 1)
	assert.Contains(t, booked, "09:00")
}

func TestBookedSetAgainstGeneratedSlots(t *testing.T) {
	slots := []string{"09:00", "09:30", "10:00"}
	booked := BookedSet([]models.Appointment{
		appointment("doc-1", monday, "09:30", models.StatusScheduled),
	}, "doc-1", monday)

	var flagged []string
	for _, s := range slots {
		if _, taken := booked[s]; taken {
			flagged = append(flagged, s)
		}
	}
	assert.Equal(t, []string{"09:30"}, flagged)
}

func TestBookedSetEmptyInput(t *testing.T) {
	booked := BookedSet(nil, "doc-1", monday)
	assert.Empty(t, booked)
}
