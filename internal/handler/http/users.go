package http

import (
	"encoding/json"
	"net/http"

	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/internal/utils"
	"github.com/wayfare-app/auth-server/models"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		h.writeError(w, r, errMissingIdentity)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("fetching user failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user.Public()}, http.StatusOK)
}

// preloadUser resolves a public profile by handle or email. It is unauthenticated,
// so the response carries only the fields safe for anonymous callers.
func (h *Handler) preloadUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON(err))
		return
	}

	publicUser, err := h.services.UserService.Lookup(ctx, req)
	if err != nil {
		log.Err(err).Msg("user preload failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: publicUser}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		h.writeError(w, r, errMissingIdentity)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON(err))
		return
	}

	user, err := h.services.AuthService.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		h.writeError(w, r, err)
		return
	}

	if update.TouchesIdentity() {
		// Sessions for this account are gone; drop the caller's cookie so the
		// client re-authenticates instead of presenting a dead credential.
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	utils.WriteJSON(w, models.UserResponse{User: user.Public()}, http.StatusOK)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		h.writeError(w, r, errMissingIdentity)
		return
	}

	if err := h.services.AuthService.Deactivate(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("deactivation failed")
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", userID).Msg("user deactivated")

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
