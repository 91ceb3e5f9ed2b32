package handler

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dtroode/marketplace-auth/internal/api/grpc/authv1"
	"github.com/dtroode/marketplace-auth/internal/logger"
	"github.com/dtroode/marketplace-auth/internal/model"
)

// Auth handles gRPC endpoints for session management.
type Auth struct {
	authv1.UnimplementedAuthServer
	sessions       model.SessionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

var _ authv1.AuthServer = (*Auth)(nil)

// NewAuth creates a new Auth handler.
func NewAuth(sessions model.SessionService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		sessions:       sessions,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Login exchanges credentials for a token pair.
func (h *Auth) Login(ctx context.Context, req *authv1.LoginRequest) (*authv1.TokenPair, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, handleError(&model.APIError{GRPCCode: codes.InvalidArgument, Message: "email and password are required"})
	}

	tenantID, err := parseOptionalUUID(req.TenantId)
	if err != nil {
		return nil, handleError(&model.APIError{GRPCCode: codes.InvalidArgument, Message: "invalid tenant id", Err: err})
	}

	pair, err := h.sessions.Login(ctx, model.Credentials{
		Email:    email,
		Password: req.Password,
		TenantID: tenantID,
	})
	if err != nil {
		h.logger.Debug("Auth handler: login failed",
			"email", email,
			"error", err.Error())
		return nil, handleError(err)
	}

	return toTokenPair(pair), nil
}

// Refresh rotates a refresh token.
func (h *Auth) Refresh(ctx context.Context, req *authv1.RefreshRequest) (*authv1.TokenPair, error) {
	if req.RefreshToken == "" {
		return nil, handleError(model.ErrSessionExpired)
	}

	pair, err := h.sessions.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.logger.Debug("Auth handler: refresh failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	return toTokenPair(pair), nil
}

// Logout revokes the presented refresh token, or all tokens of its owner.
func (h *Auth) Logout(ctx context.Context, req *authv1.LogoutRequest) (*emptypb.Empty, error) {
	if req.RefreshToken == "" {
		return &emptypb.Empty{}, nil
	}

	if err := h.sessions.Logout(ctx, req.RefreshToken, req.Everywhere); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	return &emptypb.Empty{}, nil
}

// RevokeAllSessions revokes every session of the caller.
func (h *Auth) RevokeAllSessions(ctx context.Context, _ *emptypb.Empty) (*authv1.RevokeResponse, error) {
	principal, ok := h.contextManager.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, handleError(model.ErrUnauthenticated)
	}

	n, err := h.sessions.RevokeAllSessions(ctx, principal)
	if err != nil {
		return nil, handleError(err)
	}

	return &authv1.RevokeResponse{Revoked: n}, nil
}

// RevokeUserSessions revokes every session of another user.
func (h *Auth) RevokeUserSessions(ctx context.Context, req *authv1.RevokeUserSessionsRequest) (*authv1.RevokeResponse, error) {
	principal, ok := h.contextManager.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, handleError(model.ErrUnauthenticated)
	}

	target, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, handleError(&model.APIError{GRPCCode: codes.InvalidArgument, Message: "invalid user id", Err: err})
	}

	n, err := h.sessions.RevokeUserSessions(ctx, principal, target)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: user sessions revoked",
		"admin_id", principal.UserID,
		"target_id", target,
		"revoked", n)

	return &authv1.RevokeResponse{Revoked: n}, nil
}

// WhoAmI returns the caller's principal as carried by its access token.
func (h *Auth) WhoAmI(ctx context.Context, _ *emptypb.Empty) (*authv1.WhoAmIResponse, error) {
	principal, ok := h.contextManager.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, handleError(model.ErrUnauthenticated)
	}

	resp := &authv1.WhoAmIResponse{
		UserId:      principal.UserID.String(),
		Roles:       principal.Roles,
		Permissions: principal.Permissions,
	}
	if principal.TenantID.Valid {
		resp.TenantId = principal.TenantID.UUID.String()
	}

	return resp, nil
}

func toTokenPair(pair model.TokenPair) *authv1.TokenPair {
	return &authv1.TokenPair{
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		AccessExpiresAt: timestamppb.New(pair.AccessExpiresAt),
	}
}

func parseOptionalUUID(s string) (uuid.NullUUID, error) {
	if s == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.NullUUID{}, err
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}
