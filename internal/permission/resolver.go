// Package permission computes the effective permission set of a principal.
package permission

import (
	"context"
	"fmt"

	"github.com/dtroode/marketplace-auth/internal/model"
)

// Resolver unions role defaults with explicit grants.
type Resolver struct {
	store model.PermissionStore
}

func NewResolver(store model.PermissionStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the permissions of the principal's roles plus the grants
// recorded for its (tenant, user) pair.
func (r *Resolver) Resolve(ctx context.Context, principal model.Principal) (model.PermissionSet, error) {
	fromRoles, err := r.store.RolePermissions(ctx, principal.Roles)
	if err != nil {
		return model.PermissionSet{}, fmt.Errorf("failed to load role permissions: %w", err)
	}

	grants, err := r.store.Grants(ctx, principal.TenantID, principal.UserID)
	if err != nil {
		return model.PermissionSet{}, fmt.Errorf("failed to load permission grants: %w", err)
	}

	return model.NewPermissionSet(append(fromRoles, grants...)...), nil
}
