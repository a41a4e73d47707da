package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/primeirocv/resume-builder/internal/db"
	"github.com/primeirocv/resume-builder/internal/plans"
	"github.com/primeirocv/resume-builder/internal/score"
	"github.com/primeirocv/resume-builder/internal/server/middleware"
	"github.com/primeirocv/resume-builder/internal/types"
)

// ---------------------------------------------------------------------
// Resume Handlers
// ---------------------------------------------------------------------

// CreateResumeRequest carries the fields needed to create a resume.
type CreateResumeRequest struct {
	IsBase         bool                 `json:"is_base"`
	TargetJobURL   string               `json:"target_job_url,omitempty"`
	TargetJobTitle string               `json:"target_job_title,omitempty"`
	Sections       types.ResumeSections `json:"sections"`
}

// UpdateResumeRequest carries the fields that can change on a resume.
// Nil fields are left untouched.
type UpdateResumeRequest struct {
	TargetJobURL   *string               `json:"target_job_url,omitempty"`
	TargetJobTitle *string               `json:"target_job_title,omitempty"`
	Sections       *types.ResumeSections `json:"sections,omitempty"`
}

// getOwnedResume parses the {id} path value, loads the resume, and checks the
// authenticated user owns it. Writes an error response on failure.
func (s *Server) getOwnedResume(w http.ResponseWriter, r *http.Request) (*db.Resume, bool) {
	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return nil, false
	}

	authedID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	resume, err := s.db.GetResume(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if resume == nil {
		s.serviceError(w, &ErrResumeNotFound{ResumeID: resumeID})
		return nil, false
	}
	if resume.UserID != authedID {
		s.serviceError(w, &ErrForbidden{})
		return nil, false
	}

	return resume, true
}

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Plan enforcement: base resumes count against the resume limit,
	// optimized resumes against their own
	plan, err := s.db.GetUserPlan(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if plan == nil {
		s.serviceError(w, &ErrPlanRequired{})
		return
	}
	now := time.Now()
	usageKey := db.UsageResumes
	if req.IsBase {
		if !plans.CanCreateResume(plan, now) {
			s.serviceError(w, &ErrPlanLimitReached{Action: "resumes"})
			return
		}
	} else {
		if !plans.CanCreateOptimizedResume(plan, now) {
			s.serviceError(w, &ErrPlanLimitReached{Action: "optimized_resumes"})
			return
		}
		usageKey = db.UsageOptimizedResumes
	}

	// Score is derived from sections on every write
	details := score.CalculateResumeScore(req.Sections)

	resume, err := s.db.CreateResume(r.Context(), &db.ResumeCreateInput{
		UserID:         userID,
		IsBase:         req.IsBase,
		TargetJobURL:   req.TargetJobURL,
		TargetJobTitle: req.TargetJobTitle,
		Sections:       req.Sections,
		Score:          details.Total,
		ScoreDetails:   &details,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if err := s.db.IncrementPlanUsage(r.Context(), userID, usageKey); err != nil {
		log.Printf("Failed to increment plan usage %s for user %s: %v", usageKey, userID, err)
	}

	s.jsonResponse(w, http.StatusCreated, resume)
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.getOwnedResume(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.getOwnedResume(w, r)
	if !ok {
		return
	}

	var req UpdateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := &db.ResumeUpdateInput{
		TargetJobURL:   req.TargetJobURL,
		TargetJobTitle: req.TargetJobTitle,
		Sections:       req.Sections,
	}

	// Changed sections invalidate the stored score; recompute both
	if req.Sections != nil {
		details := score.CalculateResumeScore(*req.Sections)
		input.Score = &details.Total
		input.ScoreDetails = &details
	}

	updated, err := s.db.UpdateResume(r.Context(), resume.ID, input)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if updated == nil {
		s.serviceError(w, &ErrResumeNotFound{ResumeID: resume.ID})
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.getOwnedResume(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteResume(r.Context(), resume.ID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizeOwner(w, r)
	if !ok {
		return
	}

	resumes, err := s.db.ListResumesByUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resumes == nil {
		resumes = []db.Resume{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

func (s *Server) handleGetBaseResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizeOwner(w, r)
	if !ok {
		return
	}

	resume, err := s.db.GetBaseResume(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "No base resume found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}
