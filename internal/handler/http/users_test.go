// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayfare-app/auth-server/internal/store"
	"github.com/wayfare-app/auth-server/models"
)

// ─────────────────────────────────────────────
// me
// ─────────────────────────────────────────────

// TestMe_Success verifies that the authenticated profile endpoint answers
// with the caller's public view.
func TestMe_Success(t *testing.T) {
	users := &mockUserService{
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			require.Equal(t, int64(42), userID)
			return models.User{UserID: 42, Username: "alice", Email: "alice@example.com"}, nil
		},
	}

	h := newTestHandler(t, nil, nil, users)
	req := authedRequest(http.MethodGet, "/api/v1/users/me", "", 42)
	rec := httptest.NewRecorder()

	h.me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.User.Username)
}

// TestMe_MissingIdentity verifies that the handler refuses to run without
// the identity the middleware is supposed to set.
func TestMe_MissingIdentity(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockUserService{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	rec := httptest.NewRecorder()

	h.me(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// preload
// ─────────────────────────────────────────────

// TestPreloadUser_Success verifies that the public lookup answers with the
// reduced profile only.
func TestPreloadUser_Success(t *testing.T) {
	users := &mockUserService{
		lookupFn: func(_ context.Context, req models.LookupRequest) (models.PublicUser, error) {
			assert.Equal(t, "alice", req.Username)
			return models.PublicUser{UserID: 42, Username: "alice", Email: "alice@example.com"}, nil
		},
	}

	h := newTestHandler(t, nil, nil, users)
	body := jsonBody(t, models.LookupRequest{Username: "alice"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/preload", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.preloadUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.User.UserID)
	assert.NotContains(t, rec.Body.String(), "register_ip")
}

// TestPreloadUser_NotFound verifies the 404 answer for an unknown handle.
func TestPreloadUser_NotFound(t *testing.T) {
	users := &mockUserService{
		lookupFn: func(context.Context, models.LookupRequest) (models.PublicUser, error) {
			return models.PublicUser{}, store.ErrUserNotFound
		},
	}

	h := newTestHandler(t, nil, nil, users)
	body := jsonBody(t, models.LookupRequest{Username: "nobody"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/preload", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.preloadUser(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// profile update
// ─────────────────────────────────────────────

// TestUpdateProfile_Success verifies a plain-field update: 200 with the new
// profile and the session cookie left alone.
func TestUpdateProfile_Success(t *testing.T) {
	firstName := "Alice"
	auth := &mockAuthService{
		updateProfileFn: func(_ context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
			require.Equal(t, int64(42), userID)
			require.NotNil(t, update.FirstName)
			return models.User{UserID: 42, Username: "alice", FirstName: *update.FirstName}, nil
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	body := jsonBody(t, models.ProfileUpdate{FirstName: &firstName})
	req := authedRequest(http.MethodPatch, "/api/v1/users/me", body, 42)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, findCookie(rec, sessionCookieName))
}

// TestUpdateProfile_IdentityChangeDropsCookie verifies that an update
// touching an identity field expires the caller's session cookie, since the
// server-side sessions are gone.
func TestUpdateProfile_IdentityChangeDropsCookie(t *testing.T) {
	newHandle := "alice2"
	auth := &mockAuthService{
		updateProfileFn: func(_ context.Context, _ int64, update models.ProfileUpdate) (models.User, error) {
			return models.User{UserID: 42, Username: *update.Username}, nil
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	body := jsonBody(t, models.ProfileUpdate{Username: &newHandle})
	req := authedRequest(http.MethodPatch, "/api/v1/users/me", body, 42)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(rec, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

// TestUpdateProfile_DuplicateHandle verifies the 409 answer when the new
// handle is already taken.
func TestUpdateProfile_DuplicateHandle(t *testing.T) {
	taken := "bob"
	auth := &mockAuthService{
		updateProfileFn: func(context.Context, int64, models.ProfileUpdate) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	body := jsonBody(t, models.ProfileUpdate{Username: &taken})
	req := authedRequest(http.MethodPatch, "/api/v1/users/me", body, 42)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ─────────────────────────────────────────────
// deactivation
// ─────────────────────────────────────────────

// TestDeactivate_Success verifies the 204 answer and the expired cookie.
func TestDeactivate_Success(t *testing.T) {
	var gotUserID int64
	auth := &mockAuthService{
		deactivateFn: func(_ context.Context, userID int64) error {
			gotUserID = userID
			return nil
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	req := authedRequest(http.MethodDelete, "/api/v1/users/me", "", 42)
	rec := httptest.NewRecorder()

	h.deactivate(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(42), gotUserID)

	cookie := findCookie(rec, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
}

// TestDeactivate_AlreadyDeactivated verifies that a repeated deactivation is
// answered with 409 and the dedicated kind instead of silently succeeding.
func TestDeactivate_AlreadyDeactivated(t *testing.T) {
	auth := &mockAuthService{
		deactivateFn: func(context.Context, int64) error {
			return store.ErrUserAlreadyDeactivated
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	req := authedRequest(http.MethodDelete, "/api/v1/users/me", "", 42)
	rec := httptest.NewRecorder()

	h.deactivate(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, models.ErrKindAlreadyDeactivated, decodeErrorBody(t, rec).Kind)
}
