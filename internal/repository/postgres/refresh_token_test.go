package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/marketplace-auth/internal/model"
)

var refreshTokenColumns = []string{
	"id", "user_id", "token_hash", "issued_at", "expires_at",
	"revoked_at", "revoked_by", "revoked_reason", "replaced_by_hash", "created_at",
}

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &Connection{DB: db}, mock
}

func TestRefreshTokenRepository_Create(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRefreshTokenRepository(conn)

	userID := uuid.New()
	now := time.Now()
	token := model.RefreshToken{
		UserID:    userID,
		TokenHash: []byte("hash"),
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(sqlmock.AnyArg(), userID, []byte("hash"), now, now.Add(time.Hour)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), token))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_Rotate(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	oldHash := []byte("old")
	newHash := []byte("new")
	successor := model.RefreshToken{TokenHash: newHash, IssuedAt: now, ExpiresAt: now.Add(time.Hour)}

	row := func(revokedAt any, replacedBy any, expiresAt time.Time) *sqlmock.Rows {
		return sqlmock.NewRows(refreshTokenColumns).AddRow(
			uuid.NewString(), userID.String(), oldHash, now.Add(-time.Hour), expiresAt,
			revokedAt, nil, nil, replacedBy, now.Add(-time.Hour),
		)
	}

	t.Run("success", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewRefreshTokenRepository(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT .* FROM refresh_tokens WHERE token_hash = \$1 FOR UPDATE`).
			WithArgs(oldHash).
			WillReturnRows(row(nil, nil, now.Add(time.Hour)))
		mock.ExpectExec(`UPDATE refresh_tokens SET revoked_at`).
			WithArgs(sqlmock.AnyArg(), now, userID.String(), model.RevokeReasonRotated, newHash).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO refresh_tokens`).
			WithArgs(sqlmock.AnyArg(), userID, newHash, now, now.Add(time.Hour)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		var prepared uuid.UUID
		got, err := repo.Rotate(context.Background(), oldHash, successor, now, func(owner uuid.UUID) error {
			prepared = owner
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, userID, prepared)
		assert.Equal(t, userID, got.UserID)
		assert.Equal(t, newHash, got.TokenHash)
		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantErr error
	}{
		{
			name:    "not found",
			rows:    sqlmock.NewRows(refreshTokenColumns),
			wantErr: model.ErrNotFound,
		},
		{
			name:    "rotated before",
			rows:    row(now.Add(-time.Minute), []byte("other"), now.Add(time.Hour)),
			wantErr: model.ErrTokenReuse,
		},
		{
			name:    "revoked by logout",
			rows:    row(now.Add(-time.Minute), nil, now.Add(time.Hour)),
			wantErr: model.ErrTokenExpired,
		},
		{
			name:    "expired",
			rows:    row(nil, nil, now.Add(-time.Second)),
			wantErr: model.ErrTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			repo := NewRefreshTokenRepository(conn)

			mock.ExpectBegin()
			mock.ExpectQuery(`FROM refresh_tokens WHERE token_hash = \$1 FOR UPDATE`).
				WithArgs(oldHash).
				WillReturnRows(tt.rows)
			mock.ExpectRollback()

			got, err := repo.Rotate(context.Background(), oldHash, successor, now, nil)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == model.ErrTokenReuse {
				assert.Equal(t, userID, got.UserID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("insert failure rolls back", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewRefreshTokenRepository(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).WithArgs(oldHash).WillReturnRows(row(nil, nil, now.Add(time.Hour)))
		mock.ExpectExec(`UPDATE refresh_tokens`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO refresh_tokens`).WillReturnError(errors.New("unique violation"))
		mock.ExpectRollback()

		_, err := repo.Rotate(context.Background(), oldHash, successor, now, nil)
		assert.ErrorContains(t, err, "failed to insert successor refresh token")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("prepare failure rolls back before any write", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewRefreshTokenRepository(conn)

		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).WithArgs(oldHash).WillReturnRows(row(nil, nil, now.Add(time.Hour)))
		mock.ExpectRollback()

		signErr := errors.New("signing failed")
		got, err := repo.Rotate(context.Background(), oldHash, successor, now, func(uuid.UUID) error {
			return signErr
		})
		assert.ErrorIs(t, err, signErr)
		assert.Equal(t, userID, got.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRefreshTokenRepository_RevokeByHash(t *testing.T) {
	now := time.Now()
	rev := model.Revocation{Actor: "u", Reason: model.RevokeReasonLogout, At: now}

	t.Run("revoked", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewRefreshTokenRepository(conn)
		userID := uuid.New()

		mock.ExpectQuery(`UPDATE refresh_tokens SET .* RETURNING user_id`).
			WithArgs([]byte("h"), now, "u", model.RevokeReasonLogout).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(userID.String()))

		got, err := repo.RevokeByHash(context.Background(), []byte("h"), rev)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no valid record", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewRefreshTokenRepository(conn)

		mock.ExpectQuery(`RETURNING user_id`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		_, err := repo.RevokeByHash(context.Background(), []byte("h"), rev)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestRefreshTokenRepository_RevokeAllByUser(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRefreshTokenRepository(conn)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectExec(`UPDATE refresh_tokens SET .* WHERE user_id = \$1 AND revoked_at IS NULL`).
		WithArgs(userID, now, model.RevokedBySystem, model.RevokeReasonReuseDetected).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.RevokeAllByUser(context.Background(), userID, model.Revocation{
		Actor: model.RevokedBySystem, Reason: model.RevokeReasonReuseDetected, At: now,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
