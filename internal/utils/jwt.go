// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wayfare-app/auth-server/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for the given user.
//
// The token carries the standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// plus the identity snapshot claims username, email, and is_admin.
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateJWTToken(issuer string, user models.User, tokenDuration time.Duration, signKey string) (string, *models.BearerClaims, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return "", nil, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.BearerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", nil, err
	}

	return tokenString, claims, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signing method restricted to HMAC
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (*models.BearerClaims, error) {
	claims := &models.BearerClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}

	if _, err := claims.GetUserID(); err != nil {
		return nil, err
	}

	return claims, nil
}

// onlyExpiryFailed reports whether the parse error is an elapsed expiry and
// nothing else. jwt.ParseWithClaims joins every failed claim check into one
// error, so a token can match jwt.ErrTokenExpired while also carrying a bad
// signature or a foreign issuer; those must still be rejected.
func onlyExpiryFailed(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired) &&
		!errors.Is(err, jwt.ErrTokenSignatureInvalid) &&
		!errors.Is(err, jwt.ErrTokenInvalidIssuer) &&
		!errors.Is(err, jwt.ErrTokenUnverifiable)
}

// ParseJWTTokenAllowExpired verifies the signature and issuer of a token but
// accepts an elapsed expiry. Logout uses it so that an expired bearer token
// can still be blacklisted, while forged or malformed tokens stay rejected.
func ParseJWTTokenAllowExpired(tokenString, tokenSignKey, tokenIssuer string) (*models.BearerClaims, error) {
	claims := &models.BearerClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil && !onlyExpiryFailed(err) {
		return nil, err
	}

	if _, err := claims.GetUserID(); err != nil {
		return nil, err
	}

	return claims, nil
}
