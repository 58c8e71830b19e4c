package appointment

import (
	"fmt"

	"asclepius/services/scheduling"
	"asclepius/utils"

	"go.uber.org/zap"
)

// DaySlots returns the doctor's appointment slots for a date grouped by
// display period, each flagged booked if an active appointment holds it.
func (s *DefaultAppointmentService) DaySlots(doctorID, date string) ([]PeriodSlots, error) {
	doctor, err := s.Doctors.GetByID(doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor: %w", err)
	}

	slots, err := scheduling.GenerateSlots(doctor.AppointmentAvailability, doctor.AppointmentDuration, date)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return []PeriodSlots{}, nil
	}

	appointments, err := s.Repo.GetByDoctorAndDate(doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	booked := scheduling.BookedSet(appointments, doctorID, date)

	grouped := scheduling.GroupByPeriod(slots)
	out := make([]PeriodSlots, 0, len(scheduling.Periods))
	for _, period := range scheduling.Periods {
		times := grouped[period]
		if len(times) == 0 {
			continue
		}
		views := make([]SlotView, 0, len(times))
		for _, t := range times {
			_, isBooked := booked[t]
			views = append(views, SlotView{Time: t, Booked: isBooked})
		}
		out = append(out, PeriodSlots{Period: period, Slots: views})
	}

	utils.GetLogger().Debug("Computed day slots",
		zap.String("doctorID", doctorID),
		zap.String("date", date),
		zap.Int("slots", len(slots)),
		zap.Int("booked", len(booked)))
	return out, nil
}
