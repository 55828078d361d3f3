// SPDX-License-Identifier: Apache-2.0

package store

// userColumns is the canonical column list scanned into a models.User.
// Every query returning users must keep this order.
const userColumns = `user_id, username, email, password_hash, first_name, last_name,
	COALESCE(gender, '') AS gender, is_admin, register_ip, last_login_ip,
	registered_at, last_login_at, activated_at, deactivated_at, verified_at`

const (
	createUser = `INSERT INTO users (username, email, password_hash, first_name, last_name, gender, register_ip, registered_at, activated_at)
	VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)
	RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
	FROM users
	WHERE user_id = $1;`

	findUserByUsername = `SELECT ` + userColumns + `
	FROM users
	WHERE username = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
	FROM users
	WHERE email = $1;`

	trackLogin = `UPDATE users
	SET last_login_at = $2, last_login_ip = $3
	WHERE user_id = $1;`

	// Compare-and-set: only an active user transitions to deactivated.
	// Zero affected rows means the user is missing or already deactivated.
	deactivateUser = `UPDATE users
	SET deactivated_at = now()
	WHERE user_id = $1 AND deactivated_at IS NULL;`

	userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1);`

	markUserVerified = `UPDATE users
	SET verified_at = COALESCE(verified_at, now())
	WHERE user_id = $1
	RETURNING ` + userColumns + `;`
)

const (
	// Replace-on-login: the sessions table keeps a single row per user, so a
	// new login overwrites the previous session's fields. The statement is
	// idempotent under retries with identical arguments.
	upsertSession = `INSERT INTO sessions (user_id, login_ip, login_device, login_at, jwt_token)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (user_id) DO UPDATE
	SET login_ip = EXCLUDED.login_ip,
		login_device = EXCLUDED.login_device,
		login_at = EXCLUDED.login_at,
		jwt_token = EXCLUDED.jwt_token;`

	findSessionByUser = `SELECT session_id, user_id, login_ip, login_device, login_at, jwt_token
	FROM sessions
	WHERE user_id = $1;`

	deleteSession = `DELETE FROM sessions
	WHERE user_id = $1 AND login_ip = $2 AND login_device = $3;`

	invalidateAllSessions = `DELETE FROM sessions
	WHERE user_id = $1;`
)

const (
	createVerificationToken = `INSERT INTO tokens (kind, token_uuid, user_id, created_at, expires_at)
	VALUES ('verification', $1, $2, $3, $4)
	RETURNING token_id;`

	// Compare-and-set consumption: the WHERE clause admits only a live,
	// unconsumed token, so of any number of concurrent consumers exactly one
	// observes an affected row. The losers (and lookups of consumed, expired
	// or unknown identifiers) get sql.ErrNoRows.
	consumeVerificationToken = `UPDATE tokens
	SET consumed_at = now()
	WHERE token_uuid = $1
		AND kind = 'verification'
		AND consumed_at IS NULL
		AND (expires_at IS NULL OR expires_at > now())
	RETURNING user_id;`

	blacklistToken = `INSERT INTO tokens (kind, jwt_token, created_at, expires_at)
	VALUES ('blacklist', $1, $2, $3)
	ON CONFLICT (jwt_token) DO NOTHING;`

	isTokenBlacklisted = `SELECT EXISTS (
		SELECT 1 FROM tokens WHERE kind = 'blacklist' AND jwt_token = $1
	);`

	deleteExpiredBlacklisted = `DELETE FROM tokens
	WHERE kind = 'blacklist'
		AND expires_at IS NOT NULL
		AND expires_at <= $1;`
)
