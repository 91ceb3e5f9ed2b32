package router

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/marketplace-auth/internal/api/grpc/authv1"
	"github.com/dtroode/marketplace-auth/internal/api/grpc/handler"
	"github.com/dtroode/marketplace-auth/internal/api/grpc/middleware"
	"github.com/dtroode/marketplace-auth/internal/authz"
	"github.com/dtroode/marketplace-auth/internal/logger"
	"github.com/dtroode/marketplace-auth/internal/metrics"
	"github.com/dtroode/marketplace-auth/internal/model"
)

// Router builds the gRPC server for the auth service together with its
// authentication and authorization pipeline.
type Router struct {
	sessions       model.SessionService
	issuer         model.TokenIssuer
	contextManager model.ContextManager
	metrics        *metrics.Metrics
	logger         *logger.Logger
	catalog        *authz.Catalog
}

// New creates new gRPC Router instance.
func New(
	sessions model.SessionService,
	issuer model.TokenIssuer,
	contextManager model.ContextManager,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Router {
	return &Router{
		sessions:       sessions,
		issuer:         issuer,
		contextManager: contextManager,
		metrics:        metrics,
		logger:         logger,
		catalog:        NewCatalog(),
	}
}

// NewCatalog returns the frozen requirement catalog of the auth service.
func NewCatalog() *authz.Catalog {
	c := authz.NewCatalog()
	c.MustRegister(authv1.Auth_Login_FullMethodName, authz.Public())
	c.MustRegister(authv1.Auth_Refresh_FullMethodName, authz.Public())
	c.MustRegister(authv1.Auth_Logout_FullMethodName, authz.Public())
	c.MustRegister(authv1.Auth_RevokeAllSessions_FullMethodName, authz.Authenticated())
	c.MustRegister(authv1.Auth_WhoAmI_FullMethodName, authz.Authenticated())
	c.MustRegister(authv1.Auth_RevokeUserSessions_FullMethodName, authz.Permission(model.PermissionRevokeAnySessions))
	c.Freeze()

	return c
}

// Catalog returns the requirement catalog used by the router.
func (r *Router) Catalog() *authz.Catalog {
	return r.catalog
}

// Register creates the gRPC server and registers the auth service on it.
// Interceptors run in order: panic recovery, request logging, bearer
// authentication for non-public methods, requirement check.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.issuer, r.contextManager, r.logger)
	authorize := middleware.NewAuthorize(r.catalog, r.contextManager, r.metrics, r.logger)

	opts = append(opts, grpc.ChainUnaryInterceptor(
		recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(r.recoverPanic)),
		logging.HandleGRPC,
		selector.UnaryServerInterceptor(
			auth.UnaryServerInterceptor(authenticate.AuthFunc),
			selector.MatchFunc(authorize.RequiresAuth),
		),
		authorize.HandleGRPC,
	))

	s := grpc.NewServer(opts...)
	authv1.RegisterAuthServer(s, handler.NewAuth(r.sessions, r.contextManager, r.logger))

	return s
}

func (r *Router) recoverPanic(_ context.Context, p any) error {
	r.logger.Error("Router: recovered from panic", "panic", p)
	return status.Error(codes.Internal, model.MessageInternal)
}
