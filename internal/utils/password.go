// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor used when hashing new passwords. Existing
// hashes keep the cost they were created with; bcrypt encodes it in the hash.
const bcryptCost = bcrypt.DefaultCost

// HashPassword derives a bcrypt hash from the plaintext password. The salt is
// generated internally, so two calls with the same input produce different
// hashes.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash. A malformed or empty hash verifies as false rather than
// erroring, so a corrupted credential row reads as a failed login.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
