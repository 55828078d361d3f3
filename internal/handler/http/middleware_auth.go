// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/internal/utils"
	"github.com/wayfare-app/auth-server/models"
)

// auth is an HTTP middleware that enforces authentication on protected routes.
//
// Two credential carriers are accepted, checked in order:
//   - The "Authorization" header with a bearer token. The token is validated
//     via [service.TokenService.ValidateBearerToken], which covers signature,
//     issuer, expiry, and the blacklist.
//   - The session cookie issued by the cookie login variant. The cookie value
//     is validated via [service.AuthService.ValidateSession], which on top of
//     bearer validation requires the account's server-side session row to
//     carry this exact token.
//
// On success the authenticated user's ID and the raw token are stored in the
// request context under [utils.UserIDCtxKey] and [utils.BearerTokenCtxKey]
// before delegating to the next handler. Requests without either carrier, or
// with an invalid one, are rejected with a typed 401 body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		var (
			claims      *models.BearerClaims
			tokenString string
			err         error
		)

		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			tokenString, err = getTokenFromAuthHeader(authHeader)
			if err != nil {
				log.Err(err).Send()
				h.writeUnauthorized(w, err)
				return
			}
			claims, err = h.services.TokenService.ValidateBearerToken(ctx, tokenString)
		} else if cookie, cookieErr := r.Cookie(sessionCookieName); cookieErr == nil && cookie.Value != "" {
			tokenString = cookie.Value
			claims, err = h.services.AuthService.ValidateSession(ctx, tokenString)
		} else {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.writeUnauthorized(w, ErrEmptyAuthorizationHeader)
			return
		}

		if err != nil {
			log.Err(err).Msg("authentication rejected")
			h.writeError(w, r, err)
			return
		}

		userID, err := claims.GetUserID()
		if err != nil {
			log.Err(err).Msg("token subject is not a user id")
			h.writeUnauthorized(w, err)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)
		ctx = context.WithValue(ctx, utils.BearerTokenCtxKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
