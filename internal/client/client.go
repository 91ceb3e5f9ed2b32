// Package client is a gRPC client of the auth service that keeps the user's
// session and renews it transparently.
package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/marketplace-auth/internal/api/grpc/authv1"
	"github.com/dtroode/marketplace-auth/internal/client/session"
	"github.com/dtroode/marketplace-auth/internal/logger"
)

// Client talks to the auth service on behalf of a single user.
type Client struct {
	conn    *grpc.ClientConn
	auth    authv1.AuthClient
	session *session.Session
	logger  *logger.Logger
}

// Options configures New.
type Options struct {
	Addr           string
	RefreshTimeout time.Duration
	EnableTLS      bool
	CAFile         string
	DialOptions    []grpc.DialOption
}

// New creates a Client. Calls other than Login, Refresh and Logout carry the
// session's access token.
func New(opts Options, logger *logger.Logger) (*Client, error) {
	c := &Client{logger: logger}
	c.session = session.New(c,
		session.WithExemptMethods(
			authv1.Auth_Login_FullMethodName,
			authv1.Auth_Refresh_FullMethodName,
			authv1.Auth_Logout_FullMethodName,
		),
		session.WithRefreshTimeout(opts.RefreshTimeout),
		session.WithLogger(logger),
	)

	creds, err := transportCredentials(opts)
	if err != nil {
		return nil, err
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithUnaryInterceptor(c.session.UnaryClientInterceptor()),
	}, opts.DialOptions...)

	conn, err := grpc.NewClient(opts.Addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create grpc client: %w", err)
	}
	c.conn = conn
	c.auth = authv1.NewAuthClient(conn)

	return c, nil
}

func transportCredentials(opts Options) (credentials.TransportCredentials, error) {
	if !opts.EnableTLS {
		return insecure.NewCredentials(), nil
	}

	cfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if opts.CAFile != "" {
		pem, err := os.ReadFile(opts.CAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates in CA file %s", opts.CAFile)
		}
		cfg.RootCAs = pool
	}

	return credentials.NewTLS(cfg), nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Session returns the session of the client.
func (c *Client) Session() *session.Session {
	return c.session
}

// Login authenticates the user and stores the issued tokens.
func (c *Client) Login(ctx context.Context, email, password, tenantID string) error {
	resp, err := c.auth.Login(ctx, &authv1.LoginRequest{
		Email:    email,
		Password: password,
		TenantId: tenantID,
	})
	if err != nil {
		return err
	}

	c.session.Set(toTokens(resp))
	return nil
}

// Refresh rotates refreshToken. It is used by the session and does not
// change the stored tokens itself.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (session.Tokens, error) {
	resp, err := c.auth.Refresh(ctx, &authv1.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return session.Tokens{}, err
	}
	return toTokens(resp), nil
}

// Logout revokes the session on the server and clears it locally. The local
// session is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context, everywhere bool) error {
	tokens, ok := c.session.Tokens()
	if !ok {
		return nil
	}
	defer c.session.Clear()

	_, err := c.auth.Logout(ctx, &authv1.LogoutRequest{
		RefreshToken: tokens.RefreshToken,
		Everywhere:   everywhere,
	})
	return err
}

// WhoAmI returns the identity carried by the current access token.
func (c *Client) WhoAmI(ctx context.Context) (*authv1.WhoAmIResponse, error) {
	return c.auth.WhoAmI(ctx, &emptypb.Empty{})
}

// RevokeAllSessions revokes every session of the current user, this one included.
func (c *Client) RevokeAllSessions(ctx context.Context) (int64, error) {
	resp, err := c.auth.RevokeAllSessions(ctx, &emptypb.Empty{})
	if err != nil {
		return 0, err
	}
	c.session.Clear()
	return resp.Revoked, nil
}

// RevokeUserSessions revokes every session of another user.
func (c *Client) RevokeUserSessions(ctx context.Context, userID string) (int64, error) {
	resp, err := c.auth.RevokeUserSessions(ctx, &authv1.RevokeUserSessionsRequest{UserId: userID})
	if err != nil {
		return 0, err
	}
	return resp.Revoked, nil
}

func toTokens(p *authv1.TokenPair) session.Tokens {
	t := session.Tokens{
		AccessToken:  p.GetAccessToken(),
		RefreshToken: p.GetRefreshToken(),
	}
	if p.GetAccessExpiresAt() != nil {
		t.AccessExpiresAt = p.GetAccessExpiresAt().AsTime()
	}
	return t
}
