package context

import (
	"context"

	"github.com/dtroode/marketplace-auth/internal/model"
)

type principalKey struct{}

// caller is what a request context carries once authenticated. The
// permission set is built when the principal is stored.
type caller struct {
	principal   model.Principal
	permissions model.PermissionSet
}

var _ model.ContextManager = (*Manager)(nil)

// Manager stores the authenticated principal of a gRPC request.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetPrincipalToContext returns a copy of ctx carrying principal. The role
// and permission slices are copied so handlers cannot alter the caller's view.
func (m *Manager) SetPrincipalToContext(ctx context.Context, principal model.Principal) context.Context {
	p := principal
	p.Roles = append([]string(nil), principal.Roles...)
	p.Permissions = append([]string(nil), principal.Permissions...)

	return context.WithValue(ctx, principalKey{}, caller{
		principal:   p,
		permissions: model.NewPermissionSet(p.Permissions...),
	})
}

// GetPrincipalFromContext returns the principal stored by SetPrincipalToContext.
func (m *Manager) GetPrincipalFromContext(ctx context.Context) (model.Principal, bool) {
	c, ok := ctx.Value(principalKey{}).(caller)
	return c.principal, ok
}

// GetPermissionsFromContext returns the permission set of the stored principal.
func (m *Manager) GetPermissionsFromContext(ctx context.Context) (model.PermissionSet, bool) {
	c, ok := ctx.Value(principalKey{}).(caller)
	return c.permissions, ok
}
