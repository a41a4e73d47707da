package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/primeirocv/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleGetUser_Success(t *testing.T) {
	s := newTestServer()
	user := addTestUser(s)

	req := httptest.NewRequest(http.MethodGet, "/users/"+user.ID.String(), nil)
	req.SetPathValue("id", user.ID.String())
	req = asUser(req, user.ID)
	w := httptest.NewRecorder()

	s.handleGetUser(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, user.Email, resp.Email)
	// Password hash must never appear in the response
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestHandleGetUser_OtherUsersProfile(t *testing.T) {
	s := newTestServer()
	owner := addTestUser(s)
	intruder := addTestUser(s)

	req := httptest.NewRequest(http.MethodGet, "/users/"+owner.ID.String(), nil)
	req.SetPathValue("id", owner.ID.String())
	req = asUser(req, intruder.ID)
	w := httptest.NewRecorder()

	s.handleGetUser(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandleGetUser_InvalidID(t *testing.T) {
	s := newTestServer()
	user := addTestUser(s)

	req := httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	req = asUser(req, user.ID)
	w := httptest.NewRecorder()

	s.handleGetUser(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUpdateUser_Success(t *testing.T) {
	s := newTestServer()
	user := addTestUser(s)

	req := httptest.NewRequest(http.MethodPut, "/users/"+user.ID.String(),
		jsonBody(t, UpdateUserRequest{Name: "Maria S. Santos", Phone: "(11) 91234-5678"}))
	req.SetPathValue("id", user.ID.String())
	req = asUser(req, user.ID)
	w := httptest.NewRecorder()

	s.handleUpdateUser(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Maria S. Santos", resp.Name)
	assert.Equal(t, "(11) 91234-5678", resp.Phone)
}

func TestHandleUpdateUser_MissingName(t *testing.T) {
	s := newTestServer()
	user := addTestUser(s)

	req := httptest.NewRequest(http.MethodPut, "/users/"+user.ID.String(),
		jsonBody(t, UpdateUserRequest{Phone: "(11) 91234-5678"}))
	req.SetPathValue("id", user.ID.String())
	req = asUser(req, user.ID)
	w := httptest.NewRecorder()

	s.handleUpdateUser(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDeleteUser_Success(t *testing.T) {
	s := newTestServer()
	user := addTestUser(s)

	req := httptest.NewRequest(http.MethodDelete, "/users/"+user.ID.String(), nil)
	req.SetPathValue("id", user.ID.String())
	req = asUser(req, user.ID)
	w := httptest.NewRecorder()

	s.handleDeleteUser(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, s.db.(*mockDB).users)
}

func TestHandleDeleteUser_NotFound(t *testing.T) {
	s := newTestServer()
	ghostID := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/users/"+ghostID.String(), nil)
	req.SetPathValue("id", ghostID.String())
	req = asUser(req, ghostID)
	w := httptest.NewRecorder()

	s.handleDeleteUser(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
