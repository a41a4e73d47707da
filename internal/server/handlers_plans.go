package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/primeirocv/resume-builder/internal/plans"
	"github.com/primeirocv/resume-builder/internal/types"
)

// ---------------------------------------------------------------------
// Plan Handlers
// ---------------------------------------------------------------------

// PurchasePlanRequest selects the plan tier to activate.
type PurchasePlanRequest struct {
	Type types.PlanType `json:"type"`
}

// handleListPlans returns the plan catalog. Public endpoint.
func (s *Server) handleListPlans(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"plans": plans.Catalog})
}

func (s *Server) handleGetUserPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizeOwner(w, r)
	if !ok {
		return
	}

	plan, err := s.db.GetUserPlan(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	// Expired plans are reported as inactive alongside the stored data
	active := plan != nil && !plans.IsExpired(plan, time.Now())
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"plan":   plan,
		"active": active,
	})
}

// handlePurchasePlan activates a plan for the user. Purchasing replaces any
// existing plan and resets all usage counters.
func (s *Server) handlePurchasePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizeOwner(w, r)
	if !ok {
		return
	}

	var req PurchasePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	plan, err := plans.NewUserPlan(req.Type, time.Now())
	if err != nil {
		s.serviceError(w, &ErrValidation{Field: "type", Message: err.Error()})
		return
	}

	if err := s.db.SetUserPlan(r.Context(), userID, plan); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"plan": plan})
}
