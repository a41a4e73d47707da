package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/primeirocv/resume-builder/internal/types"
)

// CheckEmailExists reports whether a user with the given email already exists.
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// CreateUser inserts a new user with a hashed password and returns the row.
func (db *DB) CreateUser(ctx context.Context, name, email, phone, passwordHash string) (*User, error) {
	var u User
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, phone, password_hash, password_set)
		 VALUES ($1, $2, $3, $4, true)
		 RETURNING id, name, email, COALESCE(phone, ''), password_set, created_at, updated_at`,
		name, email, phone, passwordHash,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordSet, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &u, nil
}

// GetUser retrieves a user by ID, including the active plan if one exists.
// Returns nil without error when the user does not exist.
func (db *DB) GetUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	var u User
	var planJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(phone, ''), password_set, plan, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordSet, &planJSON, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if planJSON != nil {
		u.Plan = &types.UserPlan{}
		_ = json.Unmarshal(planJSON, u.Plan)
	}

	return &u, nil
}

// GetUserByEmail retrieves a user by email, including the password hash for
// credential verification. Returns nil without error when not found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	var planJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(phone, ''), COALESCE(password_hash, ''),
		        password_set, plan, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
		&u.PasswordSet, &planJSON, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if planJSON != nil {
		u.Plan = &types.UserPlan{}
		_ = json.Unmarshal(planJSON, u.Plan)
	}

	return &u, nil
}

// GetUserPasswordHash retrieves only the stored password hash for a user.
func (db *DB) GetUserPasswordHash(ctx context.Context, userID uuid.UUID) (string, error) {
	var hash string
	err := db.pool.QueryRow(ctx,
		`SELECT COALESCE(password_hash, '') FROM users WHERE id = $1`,
		userID,
	).Scan(&hash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to get password hash: %w", err)
	}
	return hash, nil
}

// UpdatePassword replaces a user's password hash.
func (db *DB) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, password_set = true, updated_at = NOW()
		 WHERE id = $2`,
		passwordHash, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}
	return nil
}

// UpdateUser updates a user's profile fields.
func (db *DB) UpdateUser(ctx context.Context, userID uuid.UUID, name, phone string) (*User, error) {
	var u User
	err := db.pool.QueryRow(ctx,
		`UPDATE users SET name = $1, phone = $2, updated_at = NOW()
		 WHERE id = $3
		 RETURNING id, name, email, COALESCE(phone, ''), password_set, created_at, updated_at`,
		name, phone, userID,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordSet, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &u, nil
}

// DeleteUser removes a user and all owned resumes (via cascade).
func (db *DB) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}
	return nil
}
