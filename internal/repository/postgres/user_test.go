package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/marketplace-auth/internal/model"
)

var userColumns = []string{
	"id", "tenant_id", "email", "password_hash", "email_confirmed",
	"locked_until", "created_at", "updated_at",
}

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	userID := uuid.New()
	tenant := uuid.NullUUID{UUID: uuid.New(), Valid: true}
	locked := time.Now().Add(time.Minute).UTC()
	now := time.Now()

	mock.ExpectQuery(`FROM users WHERE lower\(email\) = lower\(\$1\) AND tenant_id IS NOT DISTINCT FROM \$2`).
		WithArgs("a@b.c", tenant).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			userID.String(), tenant.UUID.String(), "a@b.c", "$argon2id$...", true,
			locked, now, now,
		))
	mock.ExpectQuery(`SELECT role FROM user_roles WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("Admin").AddRow("Customer"))

	user, err := repo.GetByEmail(context.Background(), tenant, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, tenant, user.TenantID)
	assert.True(t, user.EmailConfirmed)
	require.NotNil(t, user.LockedUntil)
	assert.True(t, locked.Equal(*user.LockedUntil))
	assert.Equal(t, []string{"Admin", "Customer"}, user.Roles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(`FROM users`).WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetByEmail(context.Background(), uuid.NullUUID{}, "missing@b.c")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_GetByID_PlatformUser(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			userID.String(), nil, "root@b.c", "hash", true, nil, now, now,
		))
	mock.ExpectQuery(`FROM user_roles`).
		WillReturnRows(sqlmock.NewRows([]string{"role"}))

	user, err := repo.GetByID(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, user.TenantID.Valid)
	assert.Nil(t, user.LockedUntil)
	assert.Empty(t, user.Roles)
}

func TestUserRepository_Lock(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	userID := uuid.New()
	until := time.Now().Add(15 * time.Minute)

	mock.ExpectExec(`UPDATE users SET locked_until = \$2`).
		WithArgs(userID, until).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Lock(context.Background(), userID, until))

	mock.ExpectExec(`UPDATE users SET locked_until`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Lock(context.Background(), uuid.New(), until), model.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
