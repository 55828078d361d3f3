// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	// ErrInvalidDataProvided covers every request that fails input
	// validation: missing credentials, malformed email, unknown gender,
	// an empty update, or an attempt to write a restricted field.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthenticationFailed is the uniform login failure. An unknown
	// account, a wrong password, and a deactivated account all map to it so
	// the response does not leak which part was wrong.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrTokenIsExpiredOrInvalid normalises every bearer or verification
	// token defect (expired, malformed, forged, blacklisted, consumed) so
	// callers do not need to inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
