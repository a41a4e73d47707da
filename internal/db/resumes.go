package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/primeirocv/resume-builder/internal/types"
)

const resumeColumns = `id, user_id, is_base, COALESCE(target_job_url, ''),
	COALESCE(target_job_title, ''), sections, score, score_details, created_at, updated_at`

// scanResume scans a full resume row, decoding the JSONB columns.
func scanResume(row pgx.Row) (*Resume, error) {
	var r Resume
	var sectionsJSON, detailsJSON []byte

	err := row.Scan(&r.ID, &r.UserID, &r.IsBase, &r.TargetJobURL, &r.TargetJobTitle,
		&sectionsJSON, &r.Score, &detailsJSON, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if sectionsJSON != nil {
		if err := json.Unmarshal(sectionsJSON, &r.Sections); err != nil {
			return nil, fmt.Errorf("failed to decode resume sections: %w", err)
		}
	}
	if detailsJSON != nil {
		r.ScoreDetails = &types.ScoreDetails{}
		_ = json.Unmarshal(detailsJSON, r.ScoreDetails)
	}

	return &r, nil
}

// CreateResume inserts a new resume and returns the stored row.
func (db *DB) CreateResume(ctx context.Context, input *ResumeCreateInput) (*Resume, error) {
	sectionsJSON, err := json.Marshal(input.Sections)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume sections: %w", err)
	}
	var detailsJSON []byte
	if input.ScoreDetails != nil {
		detailsJSON, err = json.Marshal(input.ScoreDetails)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal score details: %w", err)
		}
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, is_base, target_job_url, target_job_title,
		                      sections, score, score_details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+resumeColumns,
		input.UserID, input.IsBase, input.TargetJobURL, input.TargetJobTitle,
		sectionsJSON, input.Score, detailsJSON,
	)
	resume, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return resume, nil
}

// GetResume retrieves a resume by ID. Returns nil without error when not found.
func (db *DB) GetResume(ctx context.Context, resumeID uuid.UUID) (*Resume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE id = $1`,
		resumeID,
	)
	resume, err := scanResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return resume, nil
}

// GetBaseResume retrieves the user's base resume, or nil if none exists.
func (db *DB) GetBaseResume(ctx context.Context, userID uuid.UUID) (*Resume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes
		 WHERE user_id = $1 AND is_base = true
		 ORDER BY created_at ASC LIMIT 1`,
		userID,
	)
	resume, err := scanResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get base resume: %w", err)
	}
	return resume, nil
}

// ListResumesByUser retrieves all resumes owned by a user, most recently
// updated first.
func (db *DB) ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+resumeColumns+` FROM resumes
		 WHERE user_id = $1
		 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, *resume)
	}
	return resumes, nil
}

// UpdateResume applies the non-nil fields of input and bumps updated_at.
// Returns nil without error when the resume does not exist.
func (db *DB) UpdateResume(ctx context.Context, resumeID uuid.UUID, input *ResumeUpdateInput) (*Resume, error) {
	query := `UPDATE resumes SET updated_at = NOW()`
	args := []any{}
	argNum := 1

	if input.TargetJobURL != nil {
		query += fmt.Sprintf(", target_job_url = $%d", argNum)
		args = append(args, *input.TargetJobURL)
		argNum++
	}
	if input.TargetJobTitle != nil {
		query += fmt.Sprintf(", target_job_title = $%d", argNum)
		args = append(args, *input.TargetJobTitle)
		argNum++
	}
	if input.Sections != nil {
		sectionsJSON, err := json.Marshal(input.Sections)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal resume sections: %w", err)
		}
		query += fmt.Sprintf(", sections = $%d", argNum)
		args = append(args, sectionsJSON)
		argNum++
	}
	if input.Score != nil {
		query += fmt.Sprintf(", score = $%d", argNum)
		args = append(args, *input.Score)
		argNum++
	}
	if input.ScoreDetails != nil {
		detailsJSON, err := json.Marshal(input.ScoreDetails)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal score details: %w", err)
		}
		query += fmt.Sprintf(", score_details = $%d", argNum)
		args = append(args, detailsJSON)
		argNum++
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", argNum, resumeColumns)
	args = append(args, resumeID)

	resume, err := scanResume(db.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return resume, nil
}

// DeleteResume removes a resume.
func (db *DB) DeleteResume(ctx context.Context, resumeID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, resumeID)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	return nil
}

// CountOptimizedResumes counts a user's non-base resumes.
func (db *DB) CountOptimizedResumes(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM resumes WHERE user_id = $1 AND is_base = false`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count optimized resumes: %w", err)
	}
	return count, nil
}
