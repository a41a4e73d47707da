package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/google/uuid"
	"github.com/primeirocv/resume-builder/internal/ai"
	"github.com/primeirocv/resume-builder/internal/db"
	"github.com/primeirocv/resume-builder/internal/plans"
	"github.com/primeirocv/resume-builder/internal/server/middleware"
	"github.com/primeirocv/resume-builder/internal/types"
)

// aiRequestTimeout bounds a single model call.
const aiRequestTimeout = 60 * time.Second

// ---------------------------------------------------------------------
// AI Assistance Handlers
// ---------------------------------------------------------------------

// GenerateObjectiveRequest carries the context for objective generation.
type GenerateObjectiveRequest struct {
	Sections       types.ResumeSections `json:"sections"`
	TargetPosition string               `json:"target_position,omitempty"`
}

// ImproveDescriptionRequest carries the experience entry to rewrite.
type ImproveDescriptionRequest struct {
	Experience types.Experience `json:"experience"`
}

// SuggestSkillsRequest carries the context for skill suggestions.
type SuggestSkillsRequest struct {
	Sections       types.ResumeSections `json:"sections"`
	TargetPosition string               `json:"target_position,omitempty"`
}

// AnalyzeResumeRequest carries the resume to review.
type AnalyzeResumeRequest struct {
	Sections types.ResumeSections `json:"sections"`
}

// CoverLetterRequest carries the opening the letter targets.
type CoverLetterRequest struct {
	Sections       types.ResumeSections `json:"sections"`
	JobTitle       string               `json:"job_title"`
	CompanyName    string               `json:"company_name"`
	JobDescription string               `json:"job_description,omitempty"`
}

// requireAIAccess checks that AI is configured and the authenticated user's
// plan allows another generation. Writes an error response on failure.
func (s *Server) requireAIAccess(w http.ResponseWriter, r *http.Request, check func(*types.UserPlan, time.Time) bool, action string) (uuid.UUID, bool) {
	if s.assistant == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "AI assistance is not configured")
		return uuid.Nil, false
	}

	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}

	plan, err := s.db.GetUserPlan(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return uuid.Nil, false
	}
	if plan == nil {
		s.serviceError(w, &ErrPlanRequired{})
		return uuid.Nil, false
	}
	if !check(plan, time.Now()) {
		s.serviceError(w, &ErrPlanLimitReached{Action: action})
		return uuid.Nil, false
	}

	return userID, true
}

// recordAIUsage increments the usage counter after a successful generation.
func (s *Server) recordAIUsage(ctx context.Context, userID uuid.UUID, key string) {
	if err := s.db.IncrementPlanUsage(ctx, userID, key); err != nil {
		log.Printf("Failed to increment plan usage %s for user %s: %v", key, userID, err)
	}
}

func (s *Server) handleGenerateObjective(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAIAccess(w, r, plans.CanGenerateAI, "ai_generations")
	if !ok {
		return
	}

	var req GenerateObjectiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), aiRequestTimeout)
	defer cancel()

	text, err := s.assistant.GenerateObjective(ctx, req.Sections, req.TargetPosition)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "AI generation failed: "+err.Error())
		return
	}

	s.recordAIUsage(r.Context(), userID, db.UsageAIGenerations)
	s.jsonResponse(w, http.StatusOK, map[string]string{"text": text})
}

func (s *Server) handleImproveDescription(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAIAccess(w, r, plans.CanGenerateAI, "ai_generations")
	if !ok {
		return
	}

	var req ImproveDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Experience.Title == "" {
		s.serviceError(w, &ErrValidation{Field: "experience.title", Message: "required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), aiRequestTimeout)
	defer cancel()

	text, err := s.assistant.ImproveExperienceDescription(ctx, req.Experience)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "AI generation failed: "+err.Error())
		return
	}

	s.recordAIUsage(r.Context(), userID, db.UsageAIGenerations)
	s.jsonResponse(w, http.StatusOK, map[string]string{"text": text})
}

func (s *Server) handleSuggestSkills(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAIAccess(w, r, plans.CanGenerateAI, "ai_generations")
	if !ok {
		return
	}

	var req SuggestSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), aiRequestTimeout)
	defer cancel()

	suggestions, err := s.assistant.SuggestSkills(ctx, req.Sections, req.TargetPosition)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "AI generation failed: "+err.Error())
		return
	}

	s.recordAIUsage(r.Context(), userID, db.UsageAIGenerations)
	s.jsonResponse(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

// handleAnalyzeResume runs the full review and skill suggestions concurrently
// and returns both in one response.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAIAccess(w, r, plans.CanGenerateAI, "ai_generations")
	if !ok {
		return
	}

	var req AnalyzeResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), aiRequestTimeout)
	defer cancel()

	var analysis *ai.ResumeAnalysis
	var suggestions []ai.SuggestedSkill

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		analysis, err = s.assistant.AnalyzeResume(gctx, req.Sections)
		return err
	})
	g.Go(func() error {
		var err error
		suggestions, err = s.assistant.SuggestSkills(gctx, req.Sections, req.Sections.Objective.TargetPosition)
		return err
	})

	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusBadGateway, "AI generation failed: "+err.Error())
		return
	}

	s.recordAIUsage(r.Context(), userID, db.UsageAIGenerations)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analysis":         analysis,
		"suggested_skills": suggestions,
	})
}

func (s *Server) handleGenerateCoverLetter(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAIAccess(w, r, plans.CanCreateCoverLetter, "cover_letters")
	if !ok {
		return
	}

	var req CoverLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.JobTitle == "" || req.CompanyName == "" {
		s.serviceError(w, &ErrValidation{Field: "job_title", Message: "job title and company name are required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), aiRequestTimeout)
	defer cancel()

	text, err := s.assistant.GenerateCoverLetter(ctx, req.Sections, req.JobTitle, req.CompanyName, req.JobDescription)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "AI generation failed: "+err.Error())
		return
	}

	s.recordAIUsage(r.Context(), userID, db.UsageCoverLetters)
	s.jsonResponse(w, http.StatusOK, map[string]string{"text": text})
}
