package model

import (
	"slices"

	"github.com/google/uuid"
)

// Principal is the resolved identity of an authenticated request. It is
// built when an access token is issued and never mutated afterwards.
type Principal struct {
	UserID      uuid.UUID
	TenantID    uuid.NullUUID
	Roles       []string
	Permissions []string
}

// IsPlatform reports whether the principal belongs to no tenant.
func (p Principal) IsPlatform() bool {
	return !p.TenantID.Valid
}

// HasRole reports whether the principal carries the named role.
func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}
