package assignment

import (
	"fmt"
	"sort"

	"mockview/models"
)

// Rating assumed for mentors who have not been rated yet.
const defaultRating = 4.5

// rankedMentor holds a mentor together with the signals the tie-break
// chain sorts on.
type rankedMentor struct {
	mentor      models.User
	rating      float64
	currentLoad int
	experience  int
}

// FindBestMentor picks the best free mentor for a field and slot.
//
// The pool is narrowed to active mentors specializing in the field, then
// to those whose day window contains the slot and who have no active
// session occupying it. Survivors are ordered by rating (desc), then
// current load for the date (asc), then experience (desc), and the first
// one wins. A nil mentor with nil error means every specialist is busy
// at this slot.
func (s *DefaultAssignmentService) FindBestMentor(field, date, timeOfDay string) (*models.User, error) {
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
	hour, minute, err := clockParts(timeOfDay)
	if err != nil {
		return nil, err
	}

	var candidates []rankedMentor
	for _, mentor := range mentors {
		window := s.DayAvailability(mentor.ID, weekday)
		if !window.IsActive {
			continue
		}
		if !windowContains(window, timeOfDay) {
			continue
		}

		sessions, err := s.SessionRepo.ActiveForMentorOnDate(mentor.ID, date)
		if err != nil {
			return nil, fmt.Errorf("conflict lookup failed for mentor %s: %w", mentor.ID, err)
		}
		if slotOccupied(sessions, hour, minute) {
			continue
		}

		rating := mentor.AverageRating
		if rating == 0 {
			rating = defaultRating
		}
		candidates = append(candidates, rankedMentor{
			mentor:      mentor,
			rating:      rating,
			currentLoad: len(sessions),
			experience:  mentor.Experience,
		})
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].rating != candidates[j].rating {
			return candidates[i].rating > candidates[j].rating
		}
		if candidates[i].currentLoad != candidates[j].currentLoad {
			return candidates[i].currentLoad < candidates[j].currentLoad
		}
		return candidates[i].experience > candidates[j].experience
	})

	best := candidates[0].mentor
	return &best, nil
}
