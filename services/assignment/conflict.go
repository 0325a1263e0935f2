package assignment

import (
	"fmt"

	"mockview/models"
)

// IsSlotTaken reports whether an active session already occupies the
// mentor's slot at (date, timeOfDay). Sessions from both booking pathways
// count: the lookup matches either mentor field, and the time comparison
// normalizes both the legacy timestamp and the date+time string pair to
// (hour, minute) before comparing. Completed and cancelled sessions never
// block a slot.
func (s *DefaultAssignmentService) IsSlotTaken(mentorID, date, timeOfDay string) (bool, error) {
	hour, minute, err := clockParts(timeOfDay)
	if err != nil {
		return false, err
	}

	sessions, err := s.SessionRepo.ActiveForMentorOnDate(mentorID, date)
	if err != nil {
		return false, fmt.Errorf("conflict lookup failed for mentor %s: %w", mentorID, err)
	}
	return slotOccupied(sessions, hour, minute), nil
}

// slotOccupied reports whether any session in the set claims the given
// (hour, minute).
func slotOccupied(sessions []models.Session, hour, minute int) bool {
	for i := range sessions {
		h, m, ok := sessions[i].SlotClock()
		if ok && h == hour && m == minute {
			return true
		}
	}
	return false
}

func clockParts(clock string) (hour, minute int, err error) {
	minutes, err := parseClock(clock)
	if err != nil {
		return 0, 0, err
	}
	return minutes / 60, minutes % 60, nil
}
