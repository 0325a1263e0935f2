package assignment

// DayWindow is a mentor's bookable window for one day of the week.
type DayWindow struct {
	IsActive          bool   `json:"isActive"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	SlotDuration      int    `json:"slotDuration"`
	MaxSessionsPerDay int    `json:"maxSessionsPerDay"`
}

// Default booking window applied to every mentor.
const (
	defaultStartTime         = "09:00"
	defaultEndTime           = "18:00"
	defaultSlotDuration      = 60
	defaultMaxSessionsPerDay = 8
)

// DayAvailability returns the bookable window for a mentor on a given day.
// Per-mentor schedule configuration is not consulted here: every mentor
// books against the platform default window, and the configured
// workingHours only shape the mentor calendar listing (MentorCalendar).
// Changing this to honor workingHours would shrink the bookable surface
// for mentors seeded without the field.
func (s *DefaultAssignmentService) DayAvailability(mentorID, dayOfWeek string) DayWindow {
	return DayWindow{
		IsActive:          true,
		StartTime:         defaultStartTime,
		EndTime:           defaultEndTime,
		SlotDuration:      defaultSlotDuration,
		MaxSessionsPerDay: defaultMaxSessionsPerDay,
	}
}
