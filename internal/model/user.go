package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore reads identities from the credential store.
type UserStore interface {
	GetByEmail(ctx context.Context, tenantID uuid.NullUUID, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Lock(ctx context.Context, id uuid.UUID, until time.Time) error
}

// LockoutCounter counts failed password attempts per user.
type LockoutCounter interface {
	RecordFailure(ctx context.Context, userID uuid.UUID) (thresholdReached bool, err error)
	Reset(ctx context.Context, userID uuid.UUID) error
}

// PasswordHasher verifies encoded password hashes.
type PasswordHasher interface {
	Verify(password, encodedHash string) (bool, error)
	VerifyDummy(password string)
}

// User represents a stored identity with its credential material.
type User struct {
	ID             uuid.UUID
	TenantID       uuid.NullUUID
	Email          string
	PasswordHash   string
	EmailConfirmed bool
	LockedUntil    *time.Time
	Roles          []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLocked reports whether the account is locked at the given instant.
func (u User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}
