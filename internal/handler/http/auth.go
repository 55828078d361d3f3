package http

import (
	"encoding/json"
	"net/http"

	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/internal/utils"
	"github.com/wayfare-app/auth-server/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON(err))
		return
	}

	user, err := h.services.AuthService.Signup(ctx, req, utils.ClientIP(r))
	if err != nil {
		log.Err(err).Msg("signup failed")
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.UserID).Str("username", user.Username).Msg("user registered")

	utils.WriteJSON(w, models.UserResponse{User: user.Public()}, http.StatusCreated)
}

func (h *Handler) loginSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON(err))
		return
	}

	user, token, err := h.services.AuthService.LoginSession(ctx, req, utils.ClientIP(r), r.UserAgent())
	if err != nil {
		log.Err(err).Msg("session login failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	// The session credential travels only in the cookie; the body carries the
	// public profile so clients can render the account straight away.
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, models.UserResponse{User: user.Public()}, http.StatusOK)
}

func (h *Handler) loginBearer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON(err))
		return
	}

	token, err := h.services.AuthService.LoginBearer(ctx, req, utils.ClientIP(r))
	if err != nil {
		log.Err(err).Msg("bearer login failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{JWT: token}, http.StatusOK)
}

func (h *Handler) logoutSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		h.writeError(w, r, errMissingIdentity)
		return
	}

	if err := h.services.AuthService.LogoutSession(ctx, userID, utils.ClientIP(r), r.UserAgent()); err != nil {
		log.Err(err).Msg("session logout failed")
		h.writeError(w, r, err)
		return
	}

	// Expire the cookie regardless of whether a matching session row existed.
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) logoutBearer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// The token to revoke comes from the Authorization header when present,
	// otherwise from the request body. Logout never fails over the quality of
	// the credential: a missing or mangled token has nothing to revoke and is
	// reported as success, matching the service's handling of invalid tokens.
	var tokenString string
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		fromHeader, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Msg("bearer logout with a malformed Authorization header")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		tokenString = fromHeader
	} else {
		var req models.LogoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			h.writeError(w, r, errInvalidJSON(err))
			return
		}
		tokenString = req.JWT
	}

	if tokenString == "" {
		log.Warn().Msg("bearer logout without a token, nothing to revoke")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.services.AuthService.LogoutBearer(ctx, tokenString); err != nil {
		log.Err(err).Msg("bearer logout failed")
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) confirmVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenUUID := r.URL.Query().Get("uuid")

	user, err := h.services.AuthService.ConfirmVerification(ctx, tokenUUID)
	if err != nil {
		log.Err(err).Str("uuid", tokenUUID).Msg("verification failed")
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.UserID).Msg("user verified")

	utils.WriteJSON(w, models.UserResponse{User: user.Public()}, http.StatusOK)
}
