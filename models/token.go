// SPDX-License-Identifier: Apache-2.0

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind tags a row of the "tokens" table with its variant.
type TokenKind string

const (
	// TokenKindVerification marks an opaque single-use email verification
	// token. It transitions issued -> consumed exactly once, or expires.
	TokenKindVerification TokenKind = "verification"

	// TokenKindBlacklist marks a revoked bearer token. The mere presence of
	// a blacklist row makes the wrapped JWT string invalid, regardless of its
	// signature or expiry.
	TokenKindBlacklist TokenKind = "blacklist"
)

// Token represents one row of the "tokens" table. The table stores both token
// variants, disambiguated by Kind:
//
//   - verification tokens carry TokenUUID, UserID, and an optional ExpiresAt;
//     ConsumedAt is set exactly once when the token is used.
//   - blacklist tokens carry JWTToken (the revoked bearer string) and the
//     ExpiresAt of the original bearer token, so expired entries can be
//     garbage-collected.
type Token struct {
	// TokenID is the internal unique identifier of the token row.
	TokenID int64 `json:"-"`

	// Kind tags the token variant.
	Kind TokenKind `json:"kind"`

	// TokenUUID is the opaque identifier of a verification token.
	// Empty for blacklist rows.
	TokenUUID string `json:"token_uuid,omitempty"`

	// JWTToken is the raw bearer token string of a blacklist row.
	// Empty for verification rows. Never serialized to JSON.
	JWTToken string `json:"-"`

	// UserID is the owning user of a verification token.
	UserID int64 `json:"user_id,omitempty"`

	// CreatedAt is the issuance time.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt bounds the token's validity. Nil means no expiry.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// ConsumedAt is set when a verification token is used. A consumed token
	// never validates again.
	ConsumedAt *time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Token model.
func (t Token) TableName() string {
	return "tokens"
}

// BearerClaims is the claim set carried by every issued bearer token.
//
// It embeds the standard registered claims (iss, sub, iat, exp) and adds the
// identity fields the original system encoded in its JWT payload. The subject
// claim holds the user ID in base-10 string form.
type BearerClaims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// GetUserID extracts the user identifier from the "sub" (subject) claim and
// parses it as a base-10 int64.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (c *BearerClaims) GetUserID() (int64, error) {
	subject, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting user ID from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting token subject to int64: %w", err)
	}

	return userID, nil
}
