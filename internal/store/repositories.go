package store

import "github.com/wayfare-app/auth-server/internal/logger"

// Repositories aggregates the data-access contracts handed to the service
// layer, plus the shared transaction runner.
type Repositories struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	TokenRepository   TokenRepository

	DB *DB
}

// NewRepositories wires every repository to the shared database handle.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		TokenRepository:   NewTokenRepository(db, log),
		DB:                db,
	}
}
