package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/primeirocv/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestUser_ToAPIUser(t *testing.T) {
	now := time.Now()
	u := &User{
		ID:           uuid.New(),
		Name:         "Maria Silva",
		Email:        "maria@example.com",
		Phone:        "11987654321",
		PasswordHash: "$2a$10$secret",
		PasswordSet:  true,
		Plan:         &types.UserPlan{Type: types.PlanBasic},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	api := u.ToAPIUser()

	assert.Equal(t, u.ID, api.ID)
	assert.Equal(t, "Maria Silva", api.Name)
	assert.Equal(t, "maria@example.com", api.Email)
	assert.True(t, api.PasswordSet)
	assert.Equal(t, types.PlanBasic, api.Plan.Type)
	// The API type has no password field at all; nothing to leak.
}

func TestIncrementPlanUsage_RejectsUnknownKey(t *testing.T) {
	db := &DB{}

	err := db.IncrementPlanUsage(context.Background(), uuid.New(), "password_hash")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid plan usage key")
}

func TestUsageKeyConstants(t *testing.T) {
	keys := []string{
		UsageAIGenerations,
		UsageResumes,
		UsageOptimizedResumes,
		UsageCoverLetters,
	}

	for _, key := range keys {
		assert.NotEmpty(t, key)
		assert.True(t, validUsageKeys[key], "constant %q should be accepted", key)
	}
}
