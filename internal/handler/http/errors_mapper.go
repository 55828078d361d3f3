package http

import (
	"errors"
	"net/http"

	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/internal/service"
	"github.com/wayfare-app/auth-server/internal/store"
	"github.com/wayfare-app/auth-server/internal/utils"
	"github.com/wayfare-app/auth-server/models"
)

// errorMapping ties a service or store sentinel to the HTTP status and the
// stable error kind exposed to API callers.
type errorMapping struct {
	err    error
	status int
	kind   string
}

// errorMappings is checked in order; an error wrapping several sentinels
// (a store outage surfacing through a failed transaction, for instance)
// resolves to the first match, so the more specific entries come first.
var errorMappings = []errorMapping{
	{store.ErrStoreUnavailable, http.StatusServiceUnavailable, models.ErrKindStoreUnavailable},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, models.ErrKindValidation},
	{service.ErrAuthenticationFailed, http.StatusUnauthorized, models.ErrKindAuthenticationFailed},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, models.ErrKindTokenInvalid},
	{store.ErrSessionNotFound, http.StatusUnauthorized, models.ErrKindTokenInvalid},
	{store.ErrTokenNotFound, http.StatusUnauthorized, models.ErrKindTokenInvalid},
	{store.ErrUserAlreadyExists, http.StatusConflict, models.ErrKindValidation},
	{store.ErrUserNotFound, http.StatusNotFound, models.ErrKindValidation},
	{store.ErrUserAlreadyDeactivated, http.StatusConflict, models.ErrKindAlreadyDeactivated},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError, models.ErrKindInternal},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, models.ErrKindInternal},
	{store.ErrCommitingTransaction, http.StatusInternalServerError, models.ErrKindInternal},
}

// writeError maps a service or store error to an HTTP status and a typed
// error body. Unknown errors become an opaque 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	kind := models.ErrKindInternal
	message := "internal server error"

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			status = m.status
			kind = m.kind
			message = m.err.Error()
			break
		}
	}

	if status == http.StatusInternalServerError {
		log := logger.FromRequest(r)
		log.Error().Err(err).Str("func", "*Handler.writeError").Msg("unhandled error")
	}

	utils.WriteJSON(w, models.ErrorResponse{Kind: kind, Message: message}, status)
}

// writeUnauthorized rejects a request whose credential carrier is malformed
// before it ever reaches token validation.
func (h *Handler) writeUnauthorized(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{
		Kind:    models.ErrKindTokenInvalid,
		Message: err.Error(),
	}, http.StatusUnauthorized)
}
