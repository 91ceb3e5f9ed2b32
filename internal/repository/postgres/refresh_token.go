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

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

type RefreshTokenRepository struct {
	db *Connection
}

func NewRefreshTokenRepository(db *Connection) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

const insertRefreshTokenQuery = `
        INSERT INTO refresh_tokens (id, user_id, token_hash, issued_at, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
    `

func (r *RefreshTokenRepository) Create(ctx context.Context, token model.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	_, err := r.db.ExecContext(ctx, insertRefreshTokenQuery,
		token.ID, token.UserID, token.TokenHash, token.IssuedAt, token.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

// Rotate locks the presented record, checks it and swaps it for successor.
// prepare runs under the lock before any write; its error rolls the
// transaction back. The successor inherits the predecessor's owner and is
// returned as stored. Failures after the lookup are reported with the owner
// so the caller can act on the chain.
func (r *RefreshTokenRepository) Rotate(ctx context.Context, presentedHash []byte, successor model.RefreshToken, now time.Time, prepare model.RotatePrepare) (model.RefreshToken, error) {
	const selectQuery = `
        SELECT id, user_id, token_hash, issued_at, expires_at, revoked_at, revoked_by, revoked_reason, replaced_by_hash, created_at
        FROM refresh_tokens WHERE token_hash = $1 FOR UPDATE
    `
	const revokeQuery = `
        UPDATE refresh_tokens
        SET revoked_at = $2, revoked_by = $3, revoked_reason = $4, replaced_by_hash = $5
        WHERE id = $1
    `

	if successor.ID == uuid.Nil {
		successor.ID = uuid.New()
	}

	var owner uuid.UUID
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		current, err := scanRefreshToken(tx.QueryRowContext(ctx, selectQuery, presentedHash))
		if err != nil {
			return err
		}
		owner = current.UserID

		if err := current.Validate(now); err != nil {
			return err
		}

		if prepare != nil {
			if err := prepare(owner); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, revokeQuery,
			current.ID, now, current.UserID.String(), model.RevokeReasonRotated, successor.TokenHash,
		); err != nil {
			return fmt.Errorf("failed to revoke rotated refresh token: %w", err)
		}

		successor.UserID = current.UserID
		if _, err := tx.ExecContext(ctx, insertRefreshTokenQuery,
			successor.ID, successor.UserID, successor.TokenHash, successor.IssuedAt, successor.ExpiresAt,
		); err != nil {
			return fmt.Errorf("failed to insert successor refresh token: %w", err)
		}

		return nil
	})
	if err != nil {
		return model.RefreshToken{UserID: owner}, err
	}

	return successor, nil
}

// RevokeByHash revokes a currently valid record and returns its owner.
func (r *RefreshTokenRepository) RevokeByHash(ctx context.Context, tokenHash []byte, revocation model.Revocation) (uuid.UUID, error) {
	const query = `
        UPDATE refresh_tokens
        SET revoked_at = $2, revoked_by = COALESCE(NULLIF($3, ''), user_id::text), revoked_reason = $4
        WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > $2
        RETURNING user_id
    `

	var userID uuid.UUID
	err := r.db.QueryRowContext(ctx, query, tokenHash, revocation.At, revocation.Actor, revocation.Reason).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, model.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return userID, nil
}

// RevokeAllByUser revokes every valid record of the user.
func (r *RefreshTokenRepository) RevokeAllByUser(ctx context.Context, userID uuid.UUID, revocation model.Revocation) (int64, error) {
	const query = `
        UPDATE refresh_tokens
        SET revoked_at = $2, revoked_by = $3, revoked_reason = $4
        WHERE user_id = $1 AND revoked_at IS NULL AND expires_at > $2
    `

	res, err := r.db.ExecContext(ctx, query, userID, revocation.At, revocation.Actor, revocation.Reason)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke refresh tokens by user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count revoked refresh tokens: %w", err)
	}
	return n, nil
}

func scanRefreshToken(row *sql.Row) (model.RefreshToken, error) {
	var (
		rt        model.RefreshToken
		revokedAt sql.NullTime
		revokedBy sql.NullString
		reason    sql.NullString
	)

	err := row.Scan(
		&rt.ID, &rt.UserID, &rt.TokenHash, &rt.IssuedAt, &rt.ExpiresAt,
		&revokedAt, &revokedBy, &reason, &rt.ReplacedByHash, &rt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token: %w", err)
	}

	if revokedAt.Valid {
		rt.RevokedAt = &revokedAt.Time
	}
	rt.RevokedBy = revokedBy.String
	rt.RevokedReason = reason.String

	return rt, nil
}
