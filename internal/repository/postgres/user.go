package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/marketplace-auth/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const selectUserColumns = `SELECT id, tenant_id, email, password_hash, email_confirmed, locked_until, created_at, updated_at
			  FROM users`

// GetByEmail looks the user up inside one tenant. An invalid tenantID
// selects platform users.
func (r *UserRepository) GetByEmail(ctx context.Context, tenantID uuid.NullUUID, email string) (model.User, error) {
	query := selectUserColumns + ` WHERE lower(email) = lower($1) AND tenant_id IS NOT DISTINCT FROM $2`

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, email, tenantID))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.Roles, err = r.roles(ctx, user.ID); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := selectUserColumns + ` WHERE id = $1`

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if user.Roles, err = r.roles(ctx, user.ID); err != nil {
		return model.User{}, err
	}

	return user, nil
}

// Lock sets locked_until for the user.
func (r *UserRepository) Lock(ctx context.Context, id uuid.UUID, until time.Time) error {
	query := `UPDATE users SET locked_until = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, until)
	if err != nil {
		return fmt.Errorf("failed to lock user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to lock user: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) roles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user roles: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("failed to scan user role: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user roles: %w", err)
	}

	return roles, nil
}

func (r *UserRepository) scanUser(row *sql.Row) (model.User, error) {
	var (
		user        model.User
		lockedUntil sql.NullTime
	)

	err := row.Scan(
		&user.ID, &user.TenantID, &user.Email, &user.PasswordHash, &user.EmailConfirmed,
		&lockedUntil, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, err
	}

	if lockedUntil.Valid {
		user.LockedUntil = &lockedUntil.Time
	}

	return user, nil
}
