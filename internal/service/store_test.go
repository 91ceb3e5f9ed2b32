package service

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/marketplace-auth/internal/model"
)

// memStore is an in-memory model.RefreshTokenStore with the same locking
// semantics as the Postgres repository.
type memStore struct {
	mu     sync.Mutex
	tokens []*model.RefreshToken
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) find(hash []byte) *model.RefreshToken {
	for _, t := range m.tokens {
		if bytes.Equal(t.TokenHash, hash) {
			return t
		}
	}
	return nil
}

func (m *memStore) Create(_ context.Context, token model.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := token
	m.tokens = append(m.tokens, &t)
	return nil
}

func (m *memStore) Rotate(_ context.Context, presentedHash []byte, successor model.RefreshToken, now time.Time, prepare model.RotatePrepare) (model.RefreshToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.find(presentedHash)
	if current == nil {
		return model.RefreshToken{}, model.ErrNotFound
	}
	if err := current.Validate(now); err != nil {
		return model.RefreshToken{UserID: current.UserID}, err
	}
	if prepare != nil {
		if err := prepare(current.UserID); err != nil {
			return model.RefreshToken{UserID: current.UserID}, err
		}
	}

	at := now
	current.RevokedAt = &at
	current.RevokedBy = current.UserID.String()
	current.RevokedReason = model.RevokeReasonRotated
	current.ReplacedByHash = successor.TokenHash

	successor.UserID = current.UserID
	t := successor
	m.tokens = append(m.tokens, &t)

	return successor, nil
}

func (m *memStore) RevokeByHash(_ context.Context, tokenHash []byte, rev model.Revocation) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.find(tokenHash)
	if t == nil || t.Validate(rev.At) != nil {
		return uuid.Nil, model.ErrNotFound
	}

	at := rev.At
	t.RevokedAt = &at
	t.RevokedBy = rev.Actor
	if t.RevokedBy == "" {
		t.RevokedBy = t.UserID.String()
	}
	t.RevokedReason = rev.Reason
	return t.UserID, nil
}

func (m *memStore) RevokeAllByUser(_ context.Context, userID uuid.UUID, rev model.Revocation) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for _, t := range m.tokens {
		if t.UserID != userID || t.Validate(rev.At) != nil {
			continue
		}
		at := rev.At
		t.RevokedAt = &at
		t.RevokedBy = rev.Actor
		t.RevokedReason = rev.Reason
		n++
	}
	return n, nil
}

func (m *memStore) byCode(code string) model.RefreshToken {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t := m.find(HashCode(code)); t != nil {
		return *t
	}
	return model.RefreshToken{}
}

func (m *memStore) valid(userID uuid.UUID, now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.tokens {
		if t.UserID == userID && t.Validate(now) == nil {
			n++
		}
	}
	return n
}
