package models

// Request payloads accepted by the HTTP layer.
//
// Restricted fields (is_admin, IP addresses, audit timestamps,
// activation/verification/deactivation state) are enforced structurally:
// the request types simply do not carry them, so a caller cannot set them no
// matter what JSON it submits.

// SignupRequest carries the caller-settable fields of a new account.
type SignupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Gender    Gender `json:"gender,omitempty"`
}

// LoginRequest authenticates by handle or email plus password.
// Exactly one of Username and Email must be set; when both are present the
// username lookup is attempted first, matching the original preload behavior.
type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Identifier returns the lookup key for the login attempt, preferring the
// username over the email.
func (r LoginRequest) Identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

// ProfileUpdate carries the caller-settable fields of a profile update.
// Pointer fields distinguish "not provided" from "set to the zero value";
// nil fields are left untouched by the update.
type ProfileUpdate struct {
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Gender    *Gender `json:"gender,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (p ProfileUpdate) Empty() bool {
	return p.Username == nil && p.Email == nil && p.Password == nil &&
		p.FirstName == nil && p.LastName == nil && p.Gender == nil
}

// TouchesIdentity reports whether the update changes any of the sensitive
// identity fields (handle, email, password). Any such change forces a full
// session invalidation for the account before the update is acknowledged.
func (p ProfileUpdate) TouchesIdentity() bool {
	return p.Username != nil || p.Email != nil || p.Password != nil
}

// LogoutRequest carries the bearer token to revoke in the JWT logout variant.
type LogoutRequest struct {
	JWT string `json:"jwt"`
}

// LookupRequest is the body of the public user preload endpoint.
type LookupRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}
