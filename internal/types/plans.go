package types

import "time"

// PlanType identifies a purchasable plan tier.
type PlanType string

// Known plan tiers.
const (
	PlanBasic        PlanType = "basic"
	PlanIntermediate PlanType = "intermediate"
	PlanAdvanced     PlanType = "advanced"
)

// UserPlan tracks a user's purchased plan and usage against its limits.
type UserPlan struct {
	Type                    PlanType  `json:"type"`
	PurchasedAt             time.Time `json:"purchased_at"`
	ExpiresAt               time.Time `json:"expires_at"`
	AIGenerationsUsed       int       `json:"ai_generations_used"`
	AIGenerationsLimit      int       `json:"ai_generations_limit"`
	ResumesCreated          int       `json:"resumes_created"`
	ResumesLimit            int       `json:"resumes_limit"`
	OptimizedResumesCreated int       `json:"optimized_resumes_created"`
	OptimizedResumesLimit   int       `json:"optimized_resumes_limit"`
	CoverLettersCreated     int       `json:"cover_letters_created"`
	CoverLettersLimit       int       `json:"cover_letters_limit"`
}

// PlanLimits holds the per-plan usage limits.
type PlanLimits struct {
	AIGenerations    int `json:"ai_generations"`
	Resumes          int `json:"resumes"`
	OptimizedResumes int `json:"optimized_resumes"`
	CoverLetters     int `json:"cover_letters"`
	ValidDays        int `json:"valid_days"`
}

// PlanConfig describes a plan tier offered to users.
type PlanConfig struct {
	Type     PlanType   `json:"type"`
	Name     string     `json:"name"`
	Price    int        `json:"price"` // in whole currency units
	Features []string   `json:"features"`
	Limits   PlanLimits `json:"limits"`
	Popular  bool       `json:"popular,omitempty"`
}
