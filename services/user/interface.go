package user

import (
	userRepo "mockview/database/repository/user"
	"mockview/models"
)

// RegisterRequest creates a new candidate or mentor account.
type RegisterRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	Role            string   `json:"role"`
	Specializations []string `json:"specializations,omitempty"`
	Experience      int      `json:"experience,omitempty"`
	Company         string   `json:"company,omitempty"`
	Position        string   `json:"position,omitempty"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// ProfileUpdate carries the mutable profile fields. Nil pointers leave
// the stored value untouched.
type ProfileUpdate struct {
	Name            *string              `json:"name,omitempty"`
	Avatar          *string              `json:"avatar,omitempty"`
	Phone           *string              `json:"phone,omitempty"`
	Bio             *string              `json:"bio,omitempty"`
	Skills          []string             `json:"skills,omitempty"`
	Specializations []string             `json:"specializations,omitempty"`
	Experience      *int                 `json:"experience,omitempty"`
	Company         *string              `json:"company,omitempty"`
	Position        *string              `json:"position,omitempty"`
	WorkingHours    *models.WorkingHours `json:"workingHours,omitempty"`
	IsActive        *bool                `json:"isActive,omitempty"`
}

// Service handles accounts and authentication.
type Service interface {
	Register(req RegisterRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.User, error)
	UpdateProfile(id string, update ProfileUpdate) (*models.User, error)
	UpdateFCMToken(id, token string) error
}

type DefaultUserService struct {
	UserRepo userRepo.UserRepository
}

func NewUserService(users userRepo.UserRepository) *DefaultUserService {
	return &DefaultUserService{UserRepo: users}
}
