package appointment

import (
	"fmt"

	"asclepius/models"
	"asclepius/utils"
)

// DashboardStats computes today's practice summary: appointments still
// scheduled today, total registered patients and pending follow-ups.
func (s *DefaultAppointmentService) DashboardStats(doctorID string) (*DashboardStats, error) {
	today := utils.Today()

	appointments, err := s.Repo.GetByDoctorAndDate(doctorID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch today's appointments: %w", err)
	}
	scheduled := 0
	for _, a := range appointments {
		if a.Status == models.StatusScheduled {
			scheduled++
		}
	}

	patients, err := s.Patients.GetByDoctor(doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patients: %w", err)
	}

	followUps, err := s.Consultations.GetPendingFollowUps(doctorID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending follow-ups: %w", err)
	}

	return &DashboardStats{
		Date:              today,
		TodayAppointments: scheduled,
		TotalPatients:     len(patients),
		PendingFollowUps:  len(followUps),
	}, nil
}
