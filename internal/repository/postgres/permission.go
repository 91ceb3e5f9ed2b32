package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/marketplace-auth/internal/model"
)

var _ model.PermissionStore = (*PermissionRepository)(nil)

type PermissionRepository struct {
	db *Connection
}

func NewPermissionRepository(db *Connection) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// RolePermissions returns the default permissions of the given roles.
func (r *PermissionRepository) RolePermissions(ctx context.Context, roles []string) ([]string, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(roles))
	args := make([]any, len(roles))
	for i, role := range roles {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = role
	}

	query := `SELECT DISTINCT permission FROM role_permissions WHERE role IN (` +
		strings.Join(placeholders, ", ") + `) ORDER BY permission`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get role permissions: %w", err)
	}

	return collectCodes(rows)
}

// Grants returns permissions granted to the user within tenantID.
func (r *PermissionRepository) Grants(ctx context.Context, tenantID uuid.NullUUID, userID uuid.UUID) ([]string, error) {
	query := `SELECT DISTINCT permission FROM permission_grants
			  WHERE user_id = $1 AND tenant_id IS NOT DISTINCT FROM $2 ORDER BY permission`

	rows, err := r.db.QueryContext(ctx, query, userID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get permission grants: %w", err)
	}

	return collectCodes(rows)
}

func collectCodes(rows *sql.Rows) ([]string, error) {
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate permissions: %w", err)
	}

	return codes, nil
}
