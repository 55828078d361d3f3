// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// Gender is the self-reported gender of a user account.
type Gender string

// Accepted Gender values. Any other value is rejected at validation time.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether g is one of the accepted gender values.
// The empty string is considered valid because the field is optional.
func (g Gender) Valid() bool {
	switch g {
	case "", GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// It mirrors one row of the "users" table.
//
// Username and Email are globally unique and always stored lowercase.
// PasswordHash holds the bcrypt hash of the user's password; the plaintext
// value never reaches the persistence layer and the hash is never serialized
// to JSON.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique, case-normalized handle of the account.
	Username string `json:"username"`

	// Email is the unique, case-normalized email address of the account.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Gender    Gender `json:"gender,omitempty"`

	// IsAdmin marks administrator accounts. It is a restricted field:
	// callers can never set it through signup or profile update.
	IsAdmin bool `json:"is_admin"`

	// RegisterIP is the remote address observed at signup time.
	RegisterIP string `json:"register_ip,omitempty"`

	// LastLoginIP is the remote address observed at the most recent login.
	LastLoginIP string `json:"last_login_ip,omitempty"`

	// RegisteredAt is set once at signup.
	RegisteredAt time.Time `json:"registered_at"`

	// LastLoginAt is updated on every successful login.
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// ActivatedAt is set at signup time.
	ActivatedAt *time.Time `json:"activated_at,omitempty"`

	// DeactivatedAt, when non-nil, marks the account as deactivated.
	// Deactivation is monotonic: once set it is never cleared or overwritten.
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`

	// VerifiedAt, when non-nil, marks the account's email as verified.
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

// Active reports whether the account has not been deactivated.
func (u User) Active() bool {
	return u.DeactivatedAt == nil
}

// Verified reports whether the account's email address has been confirmed.
func (u User) Verified() bool {
	return u.VerifiedAt != nil
}

// Public returns the caller-facing view of the user. It carries only
// non-sensitive identity fields and is the shape returned by signup and the
// user lookup endpoints.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the reduced projection of a [User] that is safe to return to
// unauthenticated callers. It never contains credential material.
type PublicUser struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}
