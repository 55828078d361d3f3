package models

// ErrorResponse is the uniform error body returned by the HTTP layer.
// Kind is a stable, machine-readable error identifier; Message is
// human-readable and may change between releases.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Stable error kinds exposed to API callers. Handlers translate service-layer
// sentinel errors into exactly one of these.
const (
	ErrKindValidation           = "validation_error"
	ErrKindAuthenticationFailed = "authentication_failed"
	ErrKindTokenInvalid         = "token_invalid"
	ErrKindAlreadyDeactivated   = "already_deactivated"
	ErrKindStoreUnavailable     = "store_unavailable"
	ErrKindInternal             = "internal_error"
)

// TokenResponse is the body of a successful bearer-token login.
type TokenResponse struct {
	JWT string `json:"jwt"`
}

// UserResponse wraps a public user view, mirroring the envelope the original
// API used for user payloads.
type UserResponse struct {
	User PublicUser `json:"user"`
}
