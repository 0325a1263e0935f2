package assignment

import (
	"fmt"
	"sort"
	"time"

	"mockview/utils"

	"go.uber.org/zap"
)

// ListAvailableSlots returns the sorted, deduplicated union of free slot
// times across all active mentors covering the field on a date. The caller
// never learns which mentor backs which slot; assignment happens at
// booking time, which re-validates against the then-current state.
func (s *DefaultAssignmentService) ListAvailableSlots(field, date string) ([]string, error) {
	mentors, err := s.UserRepo.FindMentors(field)
	if err != nil {
		return nil, fmt.Errorf("mentor pool lookup failed: %w", err)
	}
	if len(mentors) == 0 {
		return nil, ErrNoMentors
	}

	weekday, err := dayOfWeek(date)
	if err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	available := make(map[string]struct{})

	for _, mentor := range mentors {
		window := s.DayAvailability(mentor.ID, weekday)
		if !window.IsActive {
			continue
		}

		existing, err := s.SessionRepo.ActiveAssignedOnDate(mentor.ID, date)
		if err != nil {
			logger.Error("listAvailableSlots: session lookup failed",
				zap.String("mentorID", mentor.ID), zap.Error(err))
			continue
		}

		for _, slot := range GenerateSlots(window.StartTime, window.EndTime, window.SlotDuration) {
			hour, minute, err := clockParts(slot)
			if err != nil {
				continue
			}
			if !slotOccupied(existing, hour, minute) {
				available[slot] = struct{}{}
			}
		}
	}

	slots := make([]string, 0, len(available))
	for slot := range available {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots, nil
}

// AvailableMentors lists mentors covering a field for discovery views.
// When no specialist matches, it falls back to all active mentors rather
// than returning an empty list.
func (s *DefaultAssignmentService) AvailableMentors(field string) ([]MentorAssignment, error) {
	mentors, err := s.UserRepo.FindMentors(field)
	if err != nil {
		return nil, fmt.Errorf("mentor pool lookup failed: %w", err)
	}
	if len(mentors) == 0 {
		mentors, err = s.UserRepo.FindMentors("")
		if err != nil {
			return nil, fmt.Errorf("mentor pool lookup failed: %w", err)
		}
	}

	logger := utils.GetLogger()
	assignments := make([]MentorAssignment, 0, len(mentors))

	for _, mentor := range mentors {
		load, err := s.SessionRepo.CountActiveForMentor(mentor.ID)
		if err != nil {
			logger.Error("availableMentors: load lookup failed",
				zap.String("mentorID", mentor.ID), zap.Error(err))
		}
		availability, err := s.MentorCalendar(mentor.ID, 30)
		if err != nil {
			logger.Error("availableMentors: calendar lookup failed",
				zap.String("mentorID", mentor.ID), zap.Error(err))
		}

		specialization := mentor.Specializations
		if len(specialization) == 0 && field != "" {
			specialization = []string{field}
		}
		assignments = append(assignments, MentorAssignment{
			MentorID:       mentor.ID,
			MentorName:     mentor.Name,
			MentorEmail:    mentor.Email,
			Availability:   availability,
			CurrentLoad:    load,
			Specialization: specialization,
		})
	}

	return assignments, nil
}

// MentorCalendar derives a mentor's free hourly slots over the next days.
// Unlike the booking window, this listing honors the mentor's configured
// working hours, falling back to 09–17 when none are stored.
func (s *DefaultAssignmentService) MentorCalendar(mentorID string, days int) ([]DateAvailability, error) {
	mentor, err := s.UserRepo.GetByID(mentorID)
	if err != nil {
		return nil, fmt.Errorf("mentor lookup failed: %w", err)
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}

	startHour, endHour := 9, 17
	if mentor.WorkingHours != nil {
		startHour = mentor.WorkingHours.Start
		endHour = mentor.WorkingHours.End
	}

	var availability []DateAvailability
	now := time.Now()
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, i).Format("2006-01-02")

		existing, err := s.SessionRepo.ActiveForMentorOnDate(mentorID, date)
		if err != nil {
			return nil, fmt.Errorf("session lookup failed for %s: %w", date, err)
		}

		var timeSlots []string
		for hour := startHour; hour < endHour; hour++ {
			if !slotOccupied(existing, hour, 0) {
				timeSlots = append(timeSlots, fmt.Sprintf("%02d:00", hour))
			}
		}
		if len(timeSlots) > 0 {
			availability = append(availability, DateAvailability{Date: date, TimeSlots: timeSlots})
		}
	}

	return availability, nil
}
