package models

import "time"

// User roles.
const (
	RoleCandidate = "candidate"
	RoleMentor    = "mentor"
	RoleAdmin     = "admin"
)

// WorkingHours holds a mentor's configured daily window in whole hours.
type WorkingHours struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// User represents a platform user (candidate, mentor or admin).
// Mentor-only fields (specializations, workingHours, averageRating, isActive)
// stay zero-valued for candidates.
type User struct {
	ID                string        `bson:"id" json:"id"`
	Name              string        `bson:"name" json:"name"`
	Email             string        `bson:"email" json:"email"`
	Password          string        `bson:"password" json:"-"`
	Role              string        `bson:"role" json:"role"`
	Avatar            string        `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Phone             string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Bio               string        `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills            []string      `bson:"skills,omitempty" json:"skills,omitempty"`
	Specializations   []string      `bson:"specializations,omitempty" json:"specializations,omitempty"`
	Experience        int           `bson:"experience,omitempty" json:"experience,omitempty"`
	Company           string        `bson:"company,omitempty" json:"company,omitempty"`
	Position          string        `bson:"position,omitempty" json:"position,omitempty"`
	WorkingHours      *WorkingHours `bson:"working_hours,omitempty" json:"workingHours,omitempty"`
	IsActive          bool          `bson:"is_active" json:"isActive"`
	IsVerified        bool          `bson:"is_verified" json:"isVerified"`
	AverageRating     float64       `bson:"average_rating,omitempty" json:"averageRating,omitempty"`
	TotalSessions     int           `bson:"total_sessions" json:"totalSessions"`
	CompletedSessions int           `bson:"completed_sessions" json:"completedSessions"`
	FCMToken          string        `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt         time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time     `bson:"updated_at" json:"updatedAt"`
}

// MentorSummary is the public projection of a mentor returned alongside
// booking results.
type MentorSummary struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Company         string   `json:"company,omitempty"`
	Position        string   `json:"position,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	AverageRating   float64  `json:"averageRating,omitempty"`
}

// Summary builds the public mentor projection.
func (u *User) Summary() MentorSummary {
	return MentorSummary{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Company:         u.Company,
		Position:        u.Position,
		Specializations: u.Specializations,
		AverageRating:   u.AverageRating,
	}
}
