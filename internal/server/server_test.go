package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/primeirocv/resume-builder/internal/config"
	"github.com/primeirocv/resume-builder/internal/db"
	"github.com/primeirocv/resume-builder/internal/server/middleware"
	"github.com/primeirocv/resume-builder/internal/server/ratelimit"
	"github.com/primeirocv/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDB is an in-memory Store implementation for handler tests.
type mockDB struct {
	users   map[uuid.UUID]*db.User
	hashes  map[uuid.UUID]string
	resumes map[uuid.UUID]*db.Resume
	plans   map[uuid.UUID]*types.UserPlan
	err     error
}

func newMockDB() *mockDB {
	return &mockDB{
		users:   make(map[uuid.UUID]*db.User),
		hashes:  make(map[uuid.UUID]string),
		resumes: make(map[uuid.UUID]*db.Resume),
		plans:   make(map[uuid.UUID]*types.UserPlan),
	}
}

func (m *mockDB) CheckEmailExists(_ context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDB) CreateUser(_ context.Context, name, email, phone, passwordHash string) (*db.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u := &db.User{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		Phone:       phone,
		PasswordSet: true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	m.users[u.ID] = u
	m.hashes[u.ID] = passwordHash
	return u, nil
}

func (m *mockDB) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u := m.users[userID]
	if u == nil {
		return nil, nil
	}
	copied := *u
	copied.Plan = m.plans[userID]
	return &copied, nil
}

func (m *mockDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			copied.PasswordHash = m.hashes[u.ID]
			copied.Plan = m.plans[u.ID]
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockDB) GetUserPasswordHash(_ context.Context, userID uuid.UUID) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.hashes[userID], nil
}

func (m *mockDB) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[userID]; !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	m.hashes[userID] = passwordHash
	return nil
}

func (m *mockDB) UpdateUser(_ context.Context, userID uuid.UUID, name, phone string) (*db.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u := m.users[userID]
	if u == nil {
		return nil, nil
	}
	u.Name = name
	u.Phone = phone
	u.UpdatedAt = time.Now()
	return u, nil
}

func (m *mockDB) DeleteUser(_ context.Context, userID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[userID]; !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	delete(m.users, userID)
	delete(m.hashes, userID)
	delete(m.plans, userID)
	return nil
}

func (m *mockDB) CreateResume(_ context.Context, input *db.ResumeCreateInput) (*db.Resume, error) {
	if m.err != nil {
		return nil, m.err
	}
	r := &db.Resume{
		ID:             uuid.New(),
		UserID:         input.UserID,
		IsBase:         input.IsBase,
		TargetJobURL:   input.TargetJobURL,
		TargetJobTitle: input.TargetJobTitle,
		Sections:       input.Sections,
		Score:          input.Score,
		ScoreDetails:   input.ScoreDetails,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	m.resumes[r.ID] = r
	return r, nil
}

func (m *mockDB) GetResume(_ context.Context, resumeID uuid.UUID) (*db.Resume, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resumes[resumeID], nil
}

func (m *mockDB) GetBaseResume(_ context.Context, userID uuid.UUID) (*db.Resume, error) {
	if m.err != nil {
		return nil, m.err
	}
	var base *db.Resume
	for _, r := range m.resumes {
		if r.UserID == userID && r.IsBase {
			if base == nil || r.CreatedAt.Before(base.CreatedAt) {
				base = r
			}
		}
	}
	return base, nil
}

func (m *mockDB) ListResumesByUser(_ context.Context, userID uuid.UUID) ([]db.Resume, error) {
	if m.err != nil {
		return nil, m.err
	}
	var resumes []db.Resume
	for _, r := range m.resumes {
		if r.UserID == userID {
			resumes = append(resumes, *r)
		}
	}
	return resumes, nil
}

func (m *mockDB) UpdateResume(_ context.Context, resumeID uuid.UUID, input *db.ResumeUpdateInput) (*db.Resume, error) {
	if m.err != nil {
		return nil, m.err
	}
	r := m.resumes[resumeID]
	if r == nil {
		return nil, nil
	}
	if input.TargetJobURL != nil {
		r.TargetJobURL = *input.TargetJobURL
	}
	if input.TargetJobTitle != nil {
		r.TargetJobTitle = *input.TargetJobTitle
	}
	if input.Sections != nil {
		r.Sections = *input.Sections
	}
	if input.Score != nil {
		r.Score = *input.Score
	}
	if input.ScoreDetails != nil {
		r.ScoreDetails = input.ScoreDetails
	}
	r.UpdatedAt = time.Now()
	return r, nil
}

func (m *mockDB) DeleteResume(_ context.Context, resumeID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.resumes[resumeID]; !ok {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	delete(m.resumes, resumeID)
	return nil
}

func (m *mockDB) CountOptimizedResumes(_ context.Context, userID uuid.UUID) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for _, r := range m.resumes {
		if r.UserID == userID && !r.IsBase {
			count++
		}
	}
	return count, nil
}

func (m *mockDB) GetUserPlan(_ context.Context, userID uuid.UUID) (*types.UserPlan, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.plans[userID], nil
}

func (m *mockDB) SetUserPlan(_ context.Context, userID uuid.UUID, plan *types.UserPlan) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[userID]; !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	m.plans[userID] = plan
	return nil
}

func (m *mockDB) IncrementPlanUsage(_ context.Context, userID uuid.UUID, key string) error {
	if m.err != nil {
		return m.err
	}
	plan := m.plans[userID]
	if plan == nil {
		return fmt.Errorf("no active plan for user: %s", userID)
	}
	switch key {
	case db.UsageAIGenerations:
		plan.AIGenerationsUsed++
	case db.UsageResumes:
		plan.ResumesCreated++
	case db.UsageOptimizedResumes:
		plan.OptimizedResumesCreated++
	case db.UsageCoverLetters:
		plan.CoverLettersCreated++
	default:
		return fmt.Errorf("invalid plan usage key: %q", key)
	}
	return nil
}

func (m *mockDB) Close() {}

// newTestServer builds a Server backed by the mock store, without a listener.
func newTestServer() *Server {
	store := newMockDB()
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	jwtService := NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: 24,
	})
	userService := NewUserService(store, passwordConfig)

	return &Server{
		db:          store,
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
		jwtService:  jwtService,
		userService: userService,
		authHandler: NewAuthHandler(userService, jwtService),
	}
}

// addTestUser inserts a user directly into the mock store.
func addTestUser(s *Server) *db.User {
	store := s.db.(*mockDB)
	u := &db.User{
		ID:          uuid.New(),
		Name:        "Maria Silva",
		Email:       fmt.Sprintf("maria-%s@example.com", uuid.NewString()[:8]),
		PasswordSet: true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	store.users[u.ID] = u
	return u
}

// jsonBody encodes a value as a JSON request body.
func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	payload, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(payload)
}

// asUser injects an authenticated user ID into the request context.
func asUser(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserIDKey(), userID)
	return r.WithContext(ctx)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRoutes_ProtectedEndpointRejectsAnonymous(t *testing.T) {
	s := newTestServer()
	mux := s.routes()

	req := httptest.NewRequest(http.MethodGet, "/users/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutes_PublicScoreEndpoint(t *testing.T) {
	s := newTestServer()
	mux := s.routes()

	req := httptest.NewRequest(http.MethodPost, "/score",
		jsonBody(t, ScoreRequest{}))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithCORS_Preflight(t *testing.T) {
	s := newTestServer()
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached for preflight")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/resumes", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
