package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/primeirocv/resume-builder/internal/types"
)

// User represents a user profile row.
type User struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone,omitempty"`
	PasswordHash string          `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool            `json:"password_set" db:"password_set"`
	Plan         *types.UserPlan `json:"plan,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToAPIUser converts a database user row to the API representation.
func (u *User) ToAPIUser() *types.User {
	return &types.User{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		PasswordSet: u.PasswordSet,
		Plan:        u.Plan,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// Resume represents a resume row. Sections and score details are stored as
// JSONB; the total score is denormalized into its own column for listing and
// is recomputed by the service on every write.
type Resume struct {
	ID             uuid.UUID            `json:"id"`
	UserID         uuid.UUID            `json:"user_id"`
	IsBase         bool                 `json:"is_base"`
	TargetJobURL   string               `json:"target_job_url,omitempty"`
	TargetJobTitle string               `json:"target_job_title,omitempty"`
	Sections       types.ResumeSections `json:"sections"`
	Score          int                  `json:"score"`
	ScoreDetails   *types.ScoreDetails  `json:"score_details,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// ResumeCreateInput carries the fields needed to insert a resume.
type ResumeCreateInput struct {
	UserID         uuid.UUID
	IsBase         bool
	TargetJobURL   string
	TargetJobTitle string
	Sections       types.ResumeSections
	Score          int
	ScoreDetails   *types.ScoreDetails
}

// ResumeUpdateInput carries the fields that can change on an existing resume.
type ResumeUpdateInput struct {
	TargetJobURL   *string
	TargetJobTitle *string
	Sections       *types.ResumeSections
	Score          *int
	ScoreDetails   *types.ScoreDetails
}
