package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/marketplace-auth/internal/logger"
	"github.com/dtroode/marketplace-auth/internal/metrics"
	"github.com/dtroode/marketplace-auth/internal/model"
)

// PermissionResolver computes the permission set of a principal.
type PermissionResolver interface {
	Resolve(ctx context.Context, principal model.Principal) (model.PermissionSet, error)
}

// IncidentRecorder is notified about detected refresh token reuse.
type IncidentRecorder interface {
	TokenReuse(ctx context.Context, userID uuid.UUID, revoked int64)
}

// SessionOption configures optional collaborators of Session.
type SessionOption func(*Session)

func WithMetrics(m *metrics.Metrics) SessionOption {
	return func(s *Session) { s.metrics = m }
}

func WithIncidentRecorder(r IncidentRecorder) SessionOption {
	return func(s *Session) { s.incidents = r }
}

func WithLockoutDuration(d time.Duration) SessionOption {
	return func(s *Session) { s.lockoutDuration = d }
}

var _ model.SessionService = (*Session)(nil)

// Session coordinates login, refresh and logout. It is the only writer of
// refresh token records.
type Session struct {
	users       model.UserStore
	ledger      *Ledger
	permissions PermissionResolver
	issuer      model.TokenIssuer
	hasher      model.PasswordHasher
	lockout     model.LockoutCounter
	incidents   IncidentRecorder
	metrics     *metrics.Metrics
	logger      *logger.Logger

	lockoutDuration time.Duration
	now             func() time.Time
}

func NewSession(
	users model.UserStore,
	ledger *Ledger,
	permissions PermissionResolver,
	issuer model.TokenIssuer,
	hasher model.PasswordHasher,
	lockout model.LockoutCounter,
	logger *logger.Logger,
	opts ...SessionOption,
) *Session {
	s := &Session{
		users:           users,
		ledger:          ledger,
		permissions:     permissions,
		issuer:          issuer,
		hasher:          hasher,
		lockout:         lockout,
		logger:          logger,
		lockoutDuration: 15 * time.Minute,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login verifies credentials and opens a new session.
func (s *Session) Login(ctx context.Context, creds model.Credentials) (model.TokenPair, error) {
	s.logger.Debug("Session service: login attempt",
		"email", creds.Email,
		"tenant_id", creds.TenantID)

	user, err := s.users.GetByEmail(ctx, creds.TenantID, creds.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.hasher.VerifyDummy(creds.Password)
			s.metrics.Login(ctx, metrics.OutcomeInvalid)
			return model.TokenPair{}, model.ErrInvalidCredentials
		}
		s.logger.Error("Session service: failed to get user by email",
			"email", creds.Email,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.IsLocked(s.now()) {
		s.metrics.Login(ctx, metrics.OutcomeLocked)
		s.logger.Info("Session service: login rejected for locked account",
			"user_id", user.ID)
		return model.TokenPair{}, model.ErrAccountLocked
	}

	ok, err := s.hasher.Verify(creds.Password, user.PasswordHash)
	if err != nil {
		s.logger.Error("Session service: failed to verify password",
			"user_id", user.ID,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return model.TokenPair{}, s.recordFailure(ctx, user)
	}

	if !user.EmailConfirmed {
		s.metrics.Login(ctx, metrics.OutcomeUnconfirmed)
		return model.TokenPair{}, model.ErrEmailNotConfirmed
	}

	if err := s.lockout.Reset(ctx, user.ID); err != nil {
		s.logger.Warn("Session service: failed to reset lockout counter",
			"user_id", user.ID,
			"error", err.Error())
	}

	principal, access, expiresAt, err := s.issueAccess(ctx, user)
	if err != nil {
		return model.TokenPair{}, err
	}

	refresh, err := s.ledger.Issue(ctx, user.ID)
	if err != nil {
		s.logger.Error("Session service: failed to issue refresh token",
			"user_id", user.ID,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	s.metrics.Login(ctx, metrics.OutcomeSuccess)
	s.logger.Info("Session service: user logged in",
		"user_id", user.ID,
		"roles", principal.Roles)

	return model.TokenPair{
		AccessToken:     access,
		RefreshToken:    refresh,
		AccessExpiresAt: expiresAt,
	}, nil
}

func (s *Session) recordFailure(ctx context.Context, user model.User) error {
	reached, err := s.lockout.RecordFailure(ctx, user.ID)
	if err != nil {
		s.logger.Warn("Session service: failed to record login failure",
			"user_id", user.ID,
			"error", err.Error())
	}

	if !reached {
		s.metrics.Login(ctx, metrics.OutcomeInvalid)
		return model.ErrInvalidCredentials
	}

	until := s.now().Add(s.lockoutDuration)
	if err := s.users.Lock(ctx, user.ID, until); err != nil {
		s.logger.Error("Session service: failed to lock account",
			"user_id", user.ID,
			"error", err.Error())
		return fmt.Errorf("failed to lock account: %w", err)
	}
	if err := s.lockout.Reset(ctx, user.ID); err != nil {
		s.logger.Warn("Session service: failed to reset lockout counter",
			"user_id", user.ID,
			"error", err.Error())
	}

	s.metrics.Login(ctx, metrics.OutcomeLocked)
	s.logger.Warn("Session service: account locked after repeated failures",
		"user_id", user.ID,
		"locked_until", until)

	return model.ErrAccountLocked
}

// errAccountInactive vetoes a rotation for a user that may no longer hold
// sessions.
var errAccountInactive = errors.New("account inactive")

// Refresh rotates the presented refresh code and issues a fresh access
// token with recomputed permissions. The access token is issued before the
// rotation commits, so a failure at any step leaves the presented code valid.
func (s *Session) Refresh(ctx context.Context, code string) (model.TokenPair, error) {
	var (
		access    string
		expiresAt time.Time
	)
	next, userID, err := s.ledger.Rotate(ctx, code, func(owner uuid.UUID) error {
		user, err := s.users.GetByID(ctx, owner)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return errAccountInactive
			}
			s.logger.Error("Session service: failed to get user by id",
				"user_id", owner,
				"error", err.Error())
			return fmt.Errorf("failed to get user by id: %w", err)
		}

		if user.IsLocked(s.now()) || !user.EmailConfirmed {
			return errAccountInactive
		}

		_, access, expiresAt, err = s.issueAccess(ctx, user)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTokenReuse):
			return model.TokenPair{}, s.compromised(ctx, userID)
		case errors.Is(err, errAccountInactive):
			s.revokeForAccountState(ctx, userID)
			s.metrics.Refresh(ctx, metrics.OutcomeExpired)
			return model.TokenPair{}, model.ErrSessionExpired
		case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrTokenExpired):
			s.metrics.Refresh(ctx, metrics.OutcomeExpired)
			return model.TokenPair{}, model.ErrSessionExpired
		default:
			s.metrics.Refresh(ctx, metrics.OutcomeError)
			s.logger.Error("Session service: failed to rotate refresh token",
				"user_id", userID,
				"error", err.Error())
			return model.TokenPair{}, fmt.Errorf("failed to rotate refresh token: %w", err)
		}
	}

	s.metrics.Refresh(ctx, metrics.OutcomeSuccess)
	s.logger.Debug("Session service: session refreshed",
		"user_id", userID)

	return model.TokenPair{
		AccessToken:     access,
		RefreshToken:    next,
		AccessExpiresAt: expiresAt,
	}, nil
}

func (s *Session) compromised(ctx context.Context, userID uuid.UUID) error {
	n, err := s.ledger.RevokeAll(ctx, userID, model.RevokedBySystem, model.RevokeReasonReuseDetected)
	if err != nil {
		s.logger.Error("Session service: failed to revoke compromised session chain",
			"user_id", userID,
			"error", err.Error())
	}

	s.metrics.Refresh(ctx, metrics.OutcomeCompromised)
	s.metrics.Revoked(ctx, model.RevokeReasonReuseDetected, n)
	if s.incidents != nil {
		s.incidents.TokenReuse(ctx, userID, n)
	}

	return model.ErrSessionCompromised
}

func (s *Session) revokeForAccountState(ctx context.Context, userID uuid.UUID) {
	n, err := s.ledger.RevokeAll(ctx, userID, model.RevokedBySystem, model.RevokeReasonAccountState)
	if err != nil {
		s.logger.Error("Session service: failed to revoke sessions of inactive account",
			"user_id", userID,
			"error", err.Error())
		return
	}
	s.metrics.Revoked(ctx, model.RevokeReasonAccountState, n)
	s.logger.Info("Session service: sessions revoked for inactive account",
		"user_id", userID,
		"revoked", n)
}

// Logout revokes the session of code, or every session of its owner when
// everywhere is set. Unknown or already invalid codes are not an error.
func (s *Session) Logout(ctx context.Context, code string, everywhere bool) error {
	userID, err := s.ledger.Revoke(ctx, code, "", model.RevokeReasonLogout)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		s.logger.Error("Session service: failed to revoke refresh token",
			"error", err.Error())
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	s.metrics.Revoked(ctx, model.RevokeReasonLogout, 1)

	if !everywhere {
		s.logger.Info("Session service: user logged out",
			"user_id", userID)
		return nil
	}

	n, err := s.ledger.RevokeAll(ctx, userID, userID.String(), model.RevokeReasonLogoutAll)
	if err != nil {
		s.logger.Error("Session service: failed to revoke all sessions",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to revoke all sessions: %w", err)
	}
	s.metrics.Revoked(ctx, model.RevokeReasonLogoutAll, n)

	s.logger.Info("Session service: user logged out everywhere",
		"user_id", userID,
		"revoked", n+1)

	return nil
}

// RevokeAllSessions revokes every session of the caller.
func (s *Session) RevokeAllSessions(ctx context.Context, principal model.Principal) (int64, error) {
	n, err := s.ledger.RevokeAll(ctx, principal.UserID, principal.UserID.String(), model.RevokeReasonLogoutAll)
	if err != nil {
		s.logger.Error("Session service: failed to revoke all sessions",
			"user_id", principal.UserID,
			"error", err.Error())
		return 0, fmt.Errorf("failed to revoke all sessions: %w", err)
	}
	s.metrics.Revoked(ctx, model.RevokeReasonLogoutAll, n)

	s.logger.Info("Session service: all sessions revoked by owner",
		"user_id", principal.UserID,
		"revoked", n)

	return n, nil
}

// RevokeUserSessions revokes every session of target on behalf of an
// administrator. Tenant administrators are confined to their tenant.
func (s *Session) RevokeUserSessions(ctx context.Context, admin model.Principal, target uuid.UUID) (int64, error) {
	if !slices.Contains(admin.Permissions, model.PermissionRevokeAnySessions) {
		return 0, model.ErrForbidden
	}

	if !admin.IsPlatform() {
		user, err := s.users.GetByID(ctx, target)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return 0, model.ErrForbidden
			}
			return 0, fmt.Errorf("failed to get user by id: %w", err)
		}
		if user.TenantID != admin.TenantID {
			s.logger.Warn("Session service: cross-tenant revoke rejected",
				"admin_id", admin.UserID,
				"target_id", target)
			return 0, model.ErrForbidden
		}
	}

	n, err := s.ledger.RevokeAll(ctx, target, admin.UserID.String(), model.RevokeReasonAdmin)
	if err != nil {
		s.logger.Error("Session service: failed to revoke user sessions",
			"admin_id", admin.UserID,
			"target_id", target,
			"error", err.Error())
		return 0, fmt.Errorf("failed to revoke user sessions: %w", err)
	}
	s.metrics.Revoked(ctx, model.RevokeReasonAdmin, n)

	s.logger.Info("Session service: user sessions revoked by admin",
		"admin_id", admin.UserID,
		"target_id", target,
		"revoked", n)

	return n, nil
}

func (s *Session) issueAccess(ctx context.Context, user model.User) (model.Principal, string, time.Time, error) {
	principal := model.Principal{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Roles:    user.Roles,
	}

	set, err := s.permissions.Resolve(ctx, principal)
	if err != nil {
		s.logger.Error("Session service: failed to resolve permissions",
			"user_id", user.ID,
			"error", err.Error())
		return model.Principal{}, "", time.Time{}, fmt.Errorf("failed to resolve permissions: %w", err)
	}
	principal.Permissions = set.Codes()

	access, expiresAt, err := s.issuer.IssueAccessToken(principal)
	if err != nil {
		s.logger.Error("Session service: failed to issue access token",
			"user_id", user.ID,
			"error", err.Error())
		return model.Principal{}, "", time.Time{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	return principal, access, expiresAt, nil
}
