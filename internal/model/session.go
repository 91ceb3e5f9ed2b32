package model

import (
	"context"

	"github.com/google/uuid"
)

// Credentials are presented at login. An invalid TenantID addresses
// platform and customer accounts.
type Credentials struct {
	Email    string
	Password string
	TenantID uuid.NullUUID
}

// SessionService manages the session lifecycle of users.
type SessionService interface {
	Login(ctx context.Context, creds Credentials) (TokenPair, error)
	Refresh(ctx context.Context, code string) (TokenPair, error)
	Logout(ctx context.Context, code string, everywhere bool) error
	RevokeAllSessions(ctx context.Context, principal Principal) (int64, error)
	RevokeUserSessions(ctx context.Context, admin Principal, target uuid.UUID) (int64, error)
}
