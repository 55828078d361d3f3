// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"fmt"

	"github.com/wayfare-app/auth-server/internal/service"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request carries neither an "Authorization" header nor a
	// session cookie.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// errMissingIdentity signals that an authenticated handler ran without a user
// ID in the request context. The auth middleware always sets one, so hitting
// this means a route was wired without the middleware.
var errMissingIdentity = errors.New("no authenticated user in request context")

// errInvalidJSON turns a body decode failure into a validation error so the
// mapper answers with 400 and the validation kind.
func errInvalidJSON(err error) error {
	return fmt.Errorf("%w: malformed JSON body: %v", service.ErrInvalidDataProvided, err)
}
