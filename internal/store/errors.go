// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an insert or profile update
	// violates the uniqueness of the username or email column.
	ErrUserAlreadyExists = errors.New("username or email already taken")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrUserAlreadyDeactivated is returned when a deactivation targets a
	// user whose deactivation timestamp is already set. Deactivation is
	// monotonic; repeating it is a reported conflict, not a no-op.
	ErrUserAlreadyDeactivated = errors.New("user is already deactivated")

	// ErrSessionNotFound is returned when a session lookup for a user
	// matches no row, i.e. the user has no active session.
	ErrSessionNotFound = errors.New("no session was found")

	// ErrTokenNotFound is returned when a verification token cannot be
	// consumed because it does not exist, was already consumed, or expired.
	// The three cases are deliberately indistinguishable to callers.
	ErrTokenNotFound = errors.New("token not found, consumed or expired")

	// ErrStoreUnavailable wraps transient infrastructure failures
	// (connection loss, deadlock rollback). The operation did not commit;
	// callers may retry with backoff.
	ErrStoreUnavailable = errors.New("store unavailable")
)
