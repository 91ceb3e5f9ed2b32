package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Revocation reasons stored alongside revoked refresh tokens.
const (
	RevokeReasonRotated       = "rotated"
	RevokeReasonLogout        = "logout"
	RevokeReasonLogoutAll     = "logout_all"
	RevokeReasonReuseDetected = "reuse_detected"
	RevokeReasonAdmin         = "admin"
	RevokeReasonAccountState  = "account_state"
)

// RevokedBySystem is the actor recorded for revocations not caused by a user.
const RevokedBySystem = "system"

// RotatePrepare runs inside a rotation once the presented record is locked
// and valid. An error aborts the rotation and leaves the record untouched.
type RotatePrepare func(owner uuid.UUID) error

// RefreshTokenStore persists refresh token records. Rotate validates and
// revokes the predecessor and inserts the successor in one transaction; on
// any error after the record was found the returned record carries its owner.
// RevokeByHash records the owner as actor when the revocation has none.
type RefreshTokenStore interface {
	Create(ctx context.Context, token RefreshToken) error
	Rotate(ctx context.Context, presentedHash []byte, successor RefreshToken, now time.Time, prepare RotatePrepare) (RefreshToken, error)
	RevokeByHash(ctx context.Context, tokenHash []byte, revocation Revocation) (uuid.UUID, error)
	RevokeAllByUser(ctx context.Context, userID uuid.UUID, revocation Revocation) (int64, error)
}

// Revocation describes who revoked a token, why and when.
type Revocation struct {
	Actor  string
	Reason string
	At     time.Time
}

// RefreshToken is a persisted refresh token record. The opaque code is never
// stored, only its SHA-256 hash.
type RefreshToken struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	TokenHash      []byte
	IssuedAt       time.Time
	ExpiresAt      time.Time
	RevokedAt      *time.Time
	RevokedBy      string
	RevokedReason  string
	ReplacedByHash []byte
	CreatedAt      time.Time
}

// Validate checks a stored record at the given instant. A record revoked by
// rotation yields ErrTokenReuse; any other revoked or expired record yields
// ErrTokenExpired.
func (t RefreshToken) Validate(now time.Time) error {
	if t.RevokedAt != nil {
		if len(t.ReplacedByHash) > 0 {
			return ErrTokenReuse
		}
		return ErrTokenExpired
	}
	if !now.Before(t.ExpiresAt) {
		return ErrTokenExpired
	}
	return nil
}
