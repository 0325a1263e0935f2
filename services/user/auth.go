package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mockview/models"
	"mockview/utils"
)

const tokenTTL = 24 * time.Hour

func (s *DefaultUserService) Register(req RegisterRequest) (*AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" {
		return nil, NewValidationError("name and email are required")
	}
	if len(req.Password) < 8 {
		return nil, NewValidationError("password must be at least 8 characters")
	}
	if req.Role == "" {
		req.Role = models.RoleCandidate
	}
	if req.Role != models.RoleCandidate && req.Role != models.RoleMentor {
		return nil, NewValidationError("role must be candidate or mentor")
	}
	if req.Role == models.RoleMentor && len(req.Specializations) == 0 {
		return nil, NewValidationError("mentors must list at least one specialization")
	}

	existing, err := s.UserRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, NewConflictError("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		Password:        string(hash),
		Role:            req.Role,
		Specializations: req.Specializations,
		Experience:      req.Experience,
		Company:         req.Company,
		Position:        req.Position,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{Token: token, User: user}, nil
}

func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, NewValidationError("email and password are required")
	}

	user, err := s.UserRepo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, NewUnauthorizedError("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, NewUnauthorizedError("invalid email or password")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{Token: token, User: user}, nil
}

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	if id == "" {
		return nil, NewValidationError("user id is required")
	}
	user, err := s.UserRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, NewNotFoundError("user not found")
	}
	return user, nil
}

func (s *DefaultUserService) UpdateProfile(id string, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.Skills != nil {
		user.Skills = update.Skills
	}
	if update.Specializations != nil {
		user.Specializations = update.Specializations
	}
	if update.Experience != nil {
		user.Experience = *update.Experience
	}
	if update.Company != nil {
		user.Company = *update.Company
	}
	if update.Position != nil {
		user.Position = *update.Position
	}
	if update.WorkingHours != nil {
		if update.WorkingHours.Start < 0 || update.WorkingHours.End > 24 ||
			update.WorkingHours.Start >= update.WorkingHours.End {
			return nil, NewValidationError("working hours must be a valid range within the day")
		}
		user.WorkingHours = update.WorkingHours
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := s.UserRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *DefaultUserService) UpdateFCMToken(id, token string) error {
	if id == "" {
		return NewValidationError("user id is required")
	}
	if err := s.UserRepo.UpdateFCMToken(id, token); err != nil {
		return fmt.Errorf("failed to update fcm token: %w", err)
	}
	return nil
}
