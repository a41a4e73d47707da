package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/primeirocv/resume-builder/internal/server/middleware"
)

// ---------------------------------------------------------------------
// User Handlers
// ---------------------------------------------------------------------

// UpdateUserRequest carries the mutable profile fields.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// authorizeOwner parses the {id} path value and checks it matches the
// authenticated user. Returns the user ID or writes an error response.
func (s *Server) authorizeOwner(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return uuid.Nil, false
	}

	authedID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	if authedID != userID {
		s.serviceError(w, &ErrForbidden{})
		return uuid.Nil, false
	}

	return userID, true
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizeOwner(w, r)
	if !ok {
		return
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if user == nil {
		s.serviceError(w, &ErrUserNotFound{UserID: userID})
		return
	}

	s.jsonResponse(w, http.StatusOK, user.ToAPIUser())
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizeOwner(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Name is required")
		return
	}

	user, err := s.db.UpdateUser(r.Context(), userID, req.Name, req.Phone)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if user == nil {
		s.serviceError(w, &ErrUserNotFound{UserID: userID})
		return
	}

	s.jsonResponse(w, http.StatusOK, user.ToAPIUser())
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizeOwner(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteUser(r.Context(), userID); err != nil {
		if err.Error() == "user not found: "+userID.String() {
			s.serviceError(w, &ErrUserNotFound{UserID: userID})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
