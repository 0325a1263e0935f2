package userRepo

import (
	"mockview/models"
)

// UserRepository defines persistence operations for users and mentors.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateFCMToken(id, token string) error
	IncrementSessionCounts(id string, total, completed int) error
	// FindMentors returns active mentors specializing in the given field.
	// An empty field returns all active mentors.
	FindMentors(field string) ([]models.User, error)
}
