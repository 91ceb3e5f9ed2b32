package middleware

import (
	"context"
	"errors"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/marketplace-auth/internal/authz"
	"github.com/dtroode/marketplace-auth/internal/logger"
	"github.com/dtroode/marketplace-auth/internal/metrics"
	"github.com/dtroode/marketplace-auth/internal/model"
)

// Authorize enforces the requirement registered for each method.
type Authorize struct {
	catalog        *authz.Catalog
	contextManager model.ContextManager
	metrics        *metrics.Metrics
	logger         *logger.Logger
}

// NewAuthorize creates a new Authorize middleware instance.
func NewAuthorize(catalog *authz.Catalog, contextManager model.ContextManager, metrics *metrics.Metrics, logger *logger.Logger) *Authorize {
	return &Authorize{
		catalog:        catalog,
		contextManager: contextManager,
		metrics:        metrics,
		logger:         logger,
	}
}

// RequiresAuth reports whether a bearer token must be validated for the call.
// It is used as the selector for the authentication interceptor.
func (m *Authorize) RequiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	return m.catalog.Lookup(c.FullMethod()).NeedsPrincipal()
}

// HandleGRPC rejects calls whose principal does not satisfy the method requirement.
func (m *Authorize) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	requirement := m.catalog.Lookup(info.FullMethod)
	if !requirement.NeedsPrincipal() {
		return handler(ctx, req)
	}

	var principal *model.Principal
	if p, ok := m.contextManager.GetPrincipalFromContext(ctx); ok {
		principal = &p
	}
	granted, _ := m.contextManager.GetPermissionsFromContext(ctx)

	err := authz.Check(principal, granted, requirement)
	switch {
	case err == nil:
		return handler(ctx, req)
	case errors.Is(err, model.ErrUnauthenticated):
		m.metrics.Denied(ctx, info.FullMethod, "unauthenticated")
		return nil, status.Error(codes.Unauthenticated, model.MessageUnauthenticated)
	default:
		m.metrics.Denied(ctx, info.FullMethod, "forbidden")
		m.logger.Info("Authorize middleware: permission denied",
			"method", info.FullMethod,
			"user_id", principal.UserID,
			"requirement", requirement.String())
		return nil, status.Error(codes.PermissionDenied, model.MessageForbidden)
	}
}
