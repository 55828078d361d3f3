package models

import "time"

// Session binds a user to a single authenticated login context.
// It mirrors one row of the "sessions" table.
//
// The table holds at most one row per user: a new login replaces the previous
// session's fields rather than creating a second row, so concurrent device
// logins for the same account share a single record (last write wins).
type Session struct {
	// SessionID is the internal unique identifier of the session row.
	SessionID int64 `json:"-"`

	// UserID is the owning user. Unique across the sessions table.
	UserID int64 `json:"user_id"`

	// LoginIP is the remote address observed when the session was created.
	LoginIP string `json:"login_ip"`

	// LoginDevice identifies the client device (User-Agent at login time).
	LoginDevice string `json:"login_device"`

	// LoginAt is the time of the login that created or replaced this session.
	LoginAt time.Time `json:"login_at"`

	// JWTToken is a snapshot of the bearer token issued alongside this
	// session. Kept for auditing; bearer validity is independent of the
	// session row.
	JWTToken string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
