package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionRepository_RolePermissions(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewPermissionRepository(conn)

	mock.ExpectQuery(`FROM role_permissions WHERE role IN \(\$1, \$2\)`).
		WithArgs("Admin", "Customer").
		WillReturnRows(sqlmock.NewRows([]string{"permission"}).AddRow("Orders.Cancel").AddRow("Orders.View"))

	codes, err := repo.RolePermissions(context.Background(), []string{"Admin", "Customer"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Orders.Cancel", "Orders.View"}, codes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPermissionRepository_RolePermissions_NoRoles(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewPermissionRepository(conn)

	codes, err := repo.RolePermissions(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, codes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPermissionRepository_Grants(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewPermissionRepository(conn)

	userID := uuid.New()
	tenant := uuid.NullUUID{UUID: uuid.New(), Valid: true}

	mock.ExpectQuery(`FROM permission_grants WHERE user_id = \$1 AND tenant_id IS NOT DISTINCT FROM \$2`).
		WithArgs(userID, tenant).
		WillReturnRows(sqlmock.NewRows([]string{"permission"}).AddRow("Orders.Cancel"))

	codes, err := repo.Grants(context.Background(), tenant, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Orders.Cancel"}, codes)

	mock.ExpectQuery(`FROM permission_grants`).WillReturnError(errors.New("db down"))
	_, err = repo.Grants(context.Background(), tenant, userID)
	assert.ErrorContains(t, err, "failed to get permission grants")

	assert.NoError(t, mock.ExpectationsWereMet())
}
