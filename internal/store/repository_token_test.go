package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/models"
)

func newTestTokenRepo(t *testing.T) (*tokenRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &tokenRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateVerificationToken_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	now := time.Now()
	expires := now.Add(24 * time.Hour)
	token := models.Token{
		TokenUUID: "11111111-2222-3333-4444-555555555555",
		UserID:    7,
		CreatedAt: now,
		ExpiresAt: &expires,
	}

	mock.ExpectQuery("INSERT INTO tokens").
		WithArgs(token.TokenUUID, token.UserID, token.CreatedAt, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"token_id"}).AddRow(42))

	created, err := repo.CreateVerificationToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.TokenID != 42 {
		t.Errorf("expected TokenID=42, got %d", created.TokenID)
	}
	if created.Kind != models.TokenKindVerification {
		t.Errorf("expected verification kind, got %q", created.Kind)
	}
}

func TestConsumeVerificationToken_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE tokens").
		WithArgs("11111111-2222-3333-4444-555555555555").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(7))

	userID, err := repo.ConsumeVerificationTokenTx(context.Background(), repo.db, "11111111-2222-3333-4444-555555555555")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != 7 {
		t.Errorf("expected user 7, got %d", userID)
	}
}

func TestConsumeVerificationToken_AlreadyConsumed(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	// A consumed, expired, or unknown identifier all produce zero rows.
	mock.ExpectQuery("UPDATE tokens").
		WithArgs("11111111-2222-3333-4444-555555555555").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := repo.ConsumeVerificationTokenTx(context.Background(), repo.db, "11111111-2222-3333-4444-555555555555")
	if !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestConsumeVerificationTokenTx_RunsWithinTransaction(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE tokens").
		WithArgs("11111111-2222-3333-4444-555555555555").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(7))
	mock.ExpectCommit()

	err := repo.db.WithinTransaction(context.Background(), func(q Querier) error {
		_, err := repo.ConsumeVerificationTokenTx(context.Background(), q, "11111111-2222-3333-4444-555555555555")
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestBlacklistToken_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	expires := time.Now().Add(time.Hour)

	mock.ExpectExec("INSERT INTO tokens").
		WithArgs("ey.header.payload", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.BlacklistToken(context.Background(), "ey.header.payload", &expires); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBlacklistToken_DuplicateIsNoError(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO tokens").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	if err := repo.BlacklistToken(context.Background(), "ey.header.payload", nil); err != nil {
		t.Fatalf("expected duplicate blacklist to be a no-op, got %v", err)
	}
}

func TestIsBlacklisted(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("ey.revoked.token").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	blacklisted, err := repo.IsBlacklisted(context.Background(), "ey.revoked.token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !blacklisted {
		t.Error("expected token to be blacklisted")
	}
}

func TestDeleteExpiredBlacklisted(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectExec("DELETE FROM tokens").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteExpiredBlacklisted(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 deleted rows, got %d", deleted)
	}
}
