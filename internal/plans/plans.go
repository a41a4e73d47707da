// Package plans defines the purchasable plan catalog and enforces per-plan
// usage limits.
package plans

import (
	"fmt"
	"time"

	"github.com/primeirocv/resume-builder/internal/types"
)

// Catalog is the full plan offering, ordered cheapest first. Prices are in
// whole BRL.
var Catalog = []types.PlanConfig{
	{
		Type:  types.PlanBasic,
		Name:  "Basic",
		Price: 15,
		Features: []string{
			"1 resume",
			"3 AI generations",
			"PDF export",
			"Valid for 30 days",
		},
		Limits: types.PlanLimits{
			AIGenerations:    3,
			Resumes:          1,
			OptimizedResumes: 0,
			CoverLetters:     0,
			ValidDays:        30,
		},
	},
	{
		Type:  types.PlanIntermediate,
		Name:  "Intermediate",
		Price: 25,
		Features: []string{
			"1 base resume",
			"3 job-optimized resumes",
			"10 AI generations",
			"1 cover letter",
			"PDF export",
			"Valid for 30 days",
		},
		Limits: types.PlanLimits{
			AIGenerations:    10,
			Resumes:          1,
			OptimizedResumes: 3,
			CoverLetters:     1,
			ValidDays:        30,
		},
		Popular: true,
	},
	{
		Type:  types.PlanAdvanced,
		Name:  "Advanced",
		Price: 35,
		Features: []string{
			"1 base resume",
			"10 job-optimized resumes",
			"30 AI generations",
			"5 cover letters",
			"PDF export",
			"Valid for 60 days",
		},
		Limits: types.PlanLimits{
			AIGenerations:    30,
			Resumes:          1,
			OptimizedResumes: 10,
			CoverLetters:     5,
			ValidDays:        60,
		},
	},
}

// Config returns the catalog entry for the given plan type.
func Config(planType types.PlanType) (types.PlanConfig, error) {
	for _, cfg := range Catalog {
		if cfg.Type == planType {
			return cfg, nil
		}
	}
	return types.PlanConfig{}, fmt.Errorf("unknown plan type: %q", planType)
}

// NewUserPlan creates a fresh user plan of the given type purchased at now,
// with zeroed usage counters and limits copied from the catalog.
func NewUserPlan(planType types.PlanType, now time.Time) (*types.UserPlan, error) {
	cfg, err := Config(planType)
	if err != nil {
		return nil, err
	}
	return &types.UserPlan{
		Type:                  planType,
		PurchasedAt:           now,
		ExpiresAt:             now.AddDate(0, 0, cfg.Limits.ValidDays),
		AIGenerationsLimit:    cfg.Limits.AIGenerations,
		ResumesLimit:          cfg.Limits.Resumes,
		OptimizedResumesLimit: cfg.Limits.OptimizedResumes,
		CoverLettersLimit:     cfg.Limits.CoverLetters,
	}, nil
}

// IsExpired reports whether the plan has passed its expiration time.
func IsExpired(plan *types.UserPlan, now time.Time) bool {
	return now.After(plan.ExpiresAt)
}

// CanGenerateAI reports whether the plan allows another AI generation.
func CanGenerateAI(plan *types.UserPlan, now time.Time) bool {
	return plan != nil && !IsExpired(plan, now) &&
		plan.AIGenerationsUsed < plan.AIGenerationsLimit
}

// CanCreateResume reports whether the plan allows creating another base resume.
func CanCreateResume(plan *types.UserPlan, now time.Time) bool {
	return plan != nil && !IsExpired(plan, now) &&
		plan.ResumesCreated < plan.ResumesLimit
}

// CanCreateOptimizedResume reports whether the plan allows another
// job-optimized resume.
func CanCreateOptimizedResume(plan *types.UserPlan, now time.Time) bool {
	return plan != nil && !IsExpired(plan, now) &&
		plan.OptimizedResumesCreated < plan.OptimizedResumesLimit
}

// CanCreateCoverLetter reports whether the plan allows another cover letter.
func CanCreateCoverLetter(plan *types.UserPlan, now time.Time) bool {
	return plan != nil && !IsExpired(plan, now) &&
		plan.CoverLettersCreated < plan.CoverLettersLimit
}
