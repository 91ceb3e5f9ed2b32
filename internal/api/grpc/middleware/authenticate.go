package middleware

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/marketplace-auth/internal/logger"
	"github.com/dtroode/marketplace-auth/internal/model"
)

const bearerPrefix = "Bearer "

// Authenticate validates bearer tokens and injects the principal into context.
type Authenticate struct {
	issuer         model.TokenIssuer
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(issuer model.TokenIssuer, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{issuer: issuer, contextManager: contextManager, logger: logger}
}

// AuthFunc parses the authorization metadata, validates the access token and
// returns a context carrying the principal.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	tokenString := bearerFromContext(ctx)
	if tokenString == "" {
		return nil, status.Error(codes.Unauthenticated, model.MessageUnauthenticated)
	}

	principal, err := m.issuer.ParseAccessToken(tokenString)
	if err != nil || principal.UserID == uuid.Nil {
		m.logger.Debug("Authenticate middleware: rejected access token",
			"error", err)
		return nil, status.Error(codes.Unauthenticated, model.MessageUnauthenticated)
	}

	return m.contextManager.SetPrincipalToContext(ctx, principal), nil
}

func bearerFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return ""
	}

	v := values[0]
	if len(v) < len(bearerPrefix) || !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(v[len(bearerPrefix):])
}
