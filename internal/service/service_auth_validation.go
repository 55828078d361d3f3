package service

import (
	"net/mail"
	"strings"

	"github.com/wayfare-app/auth-server/models"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 32
	minPasswordLen = 8
)

// validateSignup checks the caller-settable fields of a registration.
// Every defect maps to [ErrInvalidDataProvided]; the HTTP layer reports the
// kind, not the field.
func validateSignup(req models.SignupRequest) error {
	if !validUsername(req.Username) {
		return ErrInvalidDataProvided
	}
	if !validEmail(req.Email) {
		return ErrInvalidDataProvided
	}
	if !validPassword(req.Password) {
		return ErrInvalidDataProvided
	}
	if !req.Gender.Valid() {
		return ErrInvalidDataProvided
	}
	return nil
}

// validateProfileUpdate checks the provided subset of fields. An update that
// carries no fields at all is rejected rather than treated as a no-op.
func validateProfileUpdate(update models.ProfileUpdate) error {
	if update.Empty() {
		return ErrInvalidDataProvided
	}
	if update.Username != nil && !validUsername(*update.Username) {
		return ErrInvalidDataProvided
	}
	if update.Email != nil && !validEmail(*update.Email) {
		return ErrInvalidDataProvided
	}
	if update.Password != nil && !validPassword(*update.Password) {
		return ErrInvalidDataProvided
	}
	if update.Gender != nil && !update.Gender.Valid() {
		return ErrInvalidDataProvided
	}
	return nil
}

func validUsername(username string) bool {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return false
	}
	return !strings.ContainsAny(username, " \t\n@")
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validPassword(password string) bool {
	return len(password) >= minPasswordLen
}
