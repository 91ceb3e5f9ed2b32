// Package session keeps the tokens of a logged-in client and renews the
// access token transparently when the server rejects it.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/marketplace-auth/internal/logger"
	"github.com/dtroode/marketplace-auth/internal/model"
)

// Errors surfaced to callers after a failed renewal. The session is
// cleared in both cases and the user has to log in again.
var (
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionCompromised = errors.New("session compromised")
)

const (
	authorizationHeader   = "authorization"
	defaultRefreshTimeout = 10 * time.Second
)

// Tokens is the credential pair held by a session.
type Tokens struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// Refresher exchanges a refresh code for a new token pair.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (Tokens, error)
}

// Session holds the current token pair. The generation counter grows with
// every stored pair, so a call can tell whether the token it failed with
// has already been replaced.
type Session struct {
	refresher      Refresher
	refreshTimeout time.Duration
	exempt         map[string]struct{}
	logger         *logger.Logger

	mu         sync.RWMutex
	tokens     Tokens
	generation uint64

	group singleflight.Group
}

// Option configures a Session.
type Option func(*Session)

// WithRefreshTimeout bounds a single refresh round trip.
func WithRefreshTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.refreshTimeout = d
		}
	}
}

// WithExemptMethods lists full method names that are sent without a bearer
// and never trigger a refresh.
func WithExemptMethods(methods ...string) Option {
	return func(s *Session) {
		for _, m := range methods {
			s.exempt[m] = struct{}{}
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New creates an empty session renewing through refresher.
func New(refresher Refresher, opts ...Option) *Session {
	s := &Session{
		refresher:      refresher,
		refreshTimeout: defaultRefreshTimeout,
		exempt:         make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set stores a new token pair, typically after login.
func (s *Session) Set(tokens Tokens) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = tokens
	s.generation++
}

// Clear forgets the token pair.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = Tokens{}
	s.generation++
}

// Tokens returns the current pair and whether the session is logged in.
func (s *Session) Tokens() (Tokens, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tokens, s.tokens.RefreshToken != ""
}

func (s *Session) current() (Tokens, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tokens, s.generation
}

// UnaryClientInterceptor attaches the access token to outgoing calls. When a
// call fails with Unauthenticated it is replayed once with a renewed token.
func (s *Session) UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if _, ok := s.exempt[method]; ok {
			return invoker(ctx, method, req, reply, cc, opts...)
		}

		tokens, generation := s.current()
		if tokens.AccessToken == "" {
			return invoker(ctx, method, req, reply, cc, opts...)
		}

		err := invoker(withBearer(ctx, tokens.AccessToken), method, req, reply, cc, opts...)
		if status.Code(err) != codes.Unauthenticated {
			return err
		}

		access, err := s.renew(ctx, generation)
		if err != nil {
			return err
		}

		return invoker(withBearer(ctx, access), method, req, reply, cc, opts...)
	}
}

// renew returns an access token newer than the one issued at generation,
// refreshing at most once per generation across concurrent callers.
func (s *Session) renew(ctx context.Context, generation uint64) (string, error) {
	tokens, current := s.current()
	if tokens.RefreshToken == "" {
		return "", ErrSessionExpired
	}
	if current != generation {
		return tokens.AccessToken, nil
	}

	// Detached from the caller: a cancelled caller stops waiting only.
	refreshCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(strconv.FormatUint(current, 10), func() (any, error) {
		return s.refresh(refreshCtx, tokens.RefreshToken, current)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *Session) refresh(ctx context.Context, refreshToken string, generation uint64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.refreshTimeout)
	defer cancel()

	next, err := s.refresher.Refresh(ctx, refreshToken)
	if err != nil {
		s.clearIfCurrent(generation)
		if s.logger != nil {
			s.logger.Warn("Client session: refresh failed, session cleared", "error", err.Error())
		}
		return "", classify(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		// Replaced by a login or cleared while the refresh was in flight.
		if s.tokens.AccessToken == "" {
			return "", ErrSessionExpired
		}
		return s.tokens.AccessToken, nil
	}
	s.tokens = next
	s.generation++

	return next.AccessToken, nil
}

func (s *Session) clearIfCurrent(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation == generation {
		s.tokens = Tokens{}
		s.generation++
	}
}

func classify(err error) error {
	if st, ok := status.FromError(err); ok && st.Code() == codes.Unauthenticated && st.Message() == model.MessageSessionCompromised {
		return fmt.Errorf("%w: %s", ErrSessionCompromised, st.Message())
	}
	return fmt.Errorf("%w: %w", ErrSessionExpired, err)
}

func withBearer(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(authorizationHeader, "Bearer "+token)

	return metadata.NewOutgoingContext(ctx, md)
}
