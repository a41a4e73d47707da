package server

import (
	"encoding/json"
	"net/http"

	"github.com/primeirocv/resume-builder/internal/score"
	"github.com/primeirocv/resume-builder/internal/types"
)

// ---------------------------------------------------------------------
// Scoring Handlers
// ---------------------------------------------------------------------

// ScoreRequest carries the sections to evaluate.
type ScoreRequest struct {
	Sections types.ResumeSections `json:"sections"`
}

// ScoreResponse is the scoring result with its feedback band.
type ScoreResponse struct {
	Total          int                  `json:"total"`
	Breakdown      types.ScoreBreakdown `json:"breakdown"`
	Suggestions    []string             `json:"suggestions"`
	Classification score.Classification `json:"classification"`
}

func newScoreResponse(details types.ScoreDetails) ScoreResponse {
	return ScoreResponse{
		Total:          details.Total,
		Breakdown:      details.Breakdown,
		Suggestions:    details.Suggestions,
		Classification: score.Classify(details.Total),
	}
}

// handleScoreSections scores a resume document without persisting anything.
// Public endpoint so the editor can show live feedback before signup.
func (s *Server) handleScoreSections(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	details := score.CalculateResumeScore(req.Sections)
	s.jsonResponse(w, http.StatusOK, newScoreResponse(details))
}

// handleGetResumeScore recomputes the score of a stored resume.
func (s *Server) handleGetResumeScore(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.getOwnedResume(w, r)
	if !ok {
		return
	}

	details := score.CalculateResumeScore(resume.Sections)
	s.jsonResponse(w, http.StatusOK, newScoreResponse(details))
}
