package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayfare-app/auth-server/models"
)

// TestRoutes_SignupReachable verifies that the public signup route is wired
// through the full middleware chain.
func TestRoutes_SignupReachable(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, req models.SignupRequest, _ string) (models.User, error) {
			return models.User{UserID: 1, Username: req.Username}, nil
		},
	}

	router := newTestHandler(t, auth, nil, nil).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(jsonBody(t, validSignup)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

// TestRoutes_ProtectedRequiresAuth verifies that the profile routes reject
// unauthenticated requests at the middleware.
func TestRoutes_ProtectedRequiresAuth(t *testing.T) {
	router := newTestHandler(t, &mockAuthService{}, &mockTokenService{}, &mockUserService{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestRoutes_TraceIDHeader verifies that every response carries a trace
// identifier, echoing the caller's when one is supplied.
func TestRoutes_TraceIDHeader(t *testing.T) {
	router := newTestHandler(t, &mockAuthService{}, &mockTokenService{}, &mockUserService{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

// TestRoutes_WrongMethodAnswers404 verifies the MethodNotAllowed override:
// an unsupported method on a known path hides the route with 404.
func TestRoutes_WrongMethodAnswers404(t *testing.T) {
	router := newTestHandler(t, &mockAuthService{}, &mockTokenService{}, &mockUserService{}).Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/signup", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
