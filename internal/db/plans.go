package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/primeirocv/resume-builder/internal/types"
)

// GetUserPlan retrieves a user's active plan, or nil if none is set.
func (db *DB) GetUserPlan(ctx context.Context, userID uuid.UUID) (*types.UserPlan, error) {
	var planJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT plan FROM users WHERE id = $1`,
		userID,
	).Scan(&planJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user plan: %w", err)
	}
	if planJSON == nil {
		return nil, nil
	}

	var plan types.UserPlan
	if err := json.Unmarshal(planJSON, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode user plan: %w", err)
	}
	return &plan, nil
}

// SetUserPlan replaces a user's plan, including all usage counters.
func (db *DB) SetUserPlan(ctx context.Context, userID uuid.UUID, plan *types.UserPlan) error {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal user plan: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE users SET plan = $1, updated_at = NOW() WHERE id = $2`,
		planJSON, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to set user plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}
	return nil
}

// Usage counter keys understood by IncrementPlanUsage. Each maps to a field of
// the plan JSONB document.
const (
	UsageAIGenerations    = "ai_generations_used"
	UsageResumes          = "resumes_created"
	UsageOptimizedResumes = "optimized_resumes_created"
	UsageCoverLetters     = "cover_letters_created"
)

var validUsageKeys = map[string]bool{
	UsageAIGenerations:    true,
	UsageResumes:          true,
	UsageOptimizedResumes: true,
	UsageCoverLetters:     true,
}

// IncrementPlanUsage atomically increments one usage counter inside the plan
// JSONB document. The key must be one of the Usage* constants; anything else
// is rejected before reaching SQL.
func (db *DB) IncrementPlanUsage(ctx context.Context, userID uuid.UUID, key string) error {
	if !validUsageKeys[key] {
		return fmt.Errorf("invalid plan usage key: %q", key)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE users
		 SET plan = jsonb_set(plan, ARRAY[$1],
		                      (COALESCE(plan->>$1, '0')::int + 1)::text::jsonb),
		     updated_at = NOW()
		 WHERE id = $2 AND plan IS NOT NULL`,
		key, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to increment plan usage %s: %w", key, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("no active plan for user: %s", userID)
	}
	return nil
}
