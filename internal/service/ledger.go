package service

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/marketplace-auth/internal/model"
	"github.com/dtroode/marketplace-auth/internal/token"
)

// Ledger issues, rotates and revokes refresh tokens. Callers only ever see
// opaque codes; the store only ever sees their hashes.
type Ledger struct {
	store   model.RefreshTokenStore
	ttl     time.Duration
	now     func() time.Time
	newCode func() (string, error)
}

func NewLedger(store model.RefreshTokenStore, ttl time.Duration) *Ledger {
	return &Ledger{
		store:   store,
		ttl:     ttl,
		now:     time.Now,
		newCode: token.NewRefreshCode,
	}
}

// Issue starts a new refresh chain for userID.
func (l *Ledger) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	code, err := l.newCode()
	if err != nil {
		return "", err
	}

	now := l.now()
	rt := model.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: HashCode(code),
		IssuedAt:  now,
		ExpiresAt: now.Add(l.ttl),
	}

	if err := l.store.Create(ctx, rt); err != nil {
		return "", fmt.Errorf("persist refresh: %w", err)
	}

	return code, nil
}

// Rotate exchanges code for a successor. prepare runs before the exchange is
// committed and can veto it. The owner is returned together with
// model.ErrTokenReuse or a prepare error so the chain can be acted on.
func (l *Ledger) Rotate(ctx context.Context, code string, prepare model.RotatePrepare) (string, uuid.UUID, error) {
	next, err := l.newCode()
	if err != nil {
		return "", uuid.Nil, err
	}

	now := l.now()
	successor := model.RefreshToken{
		ID:        uuid.New(),
		TokenHash: HashCode(next),
		IssuedAt:  now,
		ExpiresAt: now.Add(l.ttl),
	}

	stored, err := l.store.Rotate(ctx, HashCode(code), successor, now, prepare)
	if err != nil {
		return "", stored.UserID, err
	}

	return next, stored.UserID, nil
}

// Revoke revokes the record of code and returns its owner.
func (l *Ledger) Revoke(ctx context.Context, code, actor, reason string) (uuid.UUID, error) {
	return l.store.RevokeByHash(ctx, HashCode(code), model.Revocation{
		Actor:  actor,
		Reason: reason,
		At:     l.now(),
	})
}

// RevokeAll revokes every valid record of userID.
func (l *Ledger) RevokeAll(ctx context.Context, userID uuid.UUID, actor, reason string) (int64, error) {
	return l.store.RevokeAllByUser(ctx, userID, model.Revocation{
		Actor:  actor,
		Reason: reason,
		At:     l.now(),
	})
}

// HashCode returns the stored form of a refresh code.
func HashCode(code string) []byte {
	h := sha256.Sum256([]byte(code))
	return h[:]
}
