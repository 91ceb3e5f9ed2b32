package model

import (
	"context"
	"slices"

	"github.com/google/uuid"
)

// PermissionRevokeAnySessions allows revoking sessions of other users.
const PermissionRevokeAnySessions = "Sessions.RevokeAny"

// PermissionStore reads role defaults and explicit per-user grants.
type PermissionStore interface {
	RolePermissions(ctx context.Context, roles []string) ([]string, error)
	Grants(ctx context.Context, tenantID uuid.NullUUID, userID uuid.UUID) ([]string, error)
}

// PermissionSet is an immutable collection of permission codes.
type PermissionSet struct {
	codes map[string]struct{}
}

// NewPermissionSet builds a set from codes, ignoring empty entries and duplicates.
func NewPermissionSet(codes ...string) PermissionSet {
	s := PermissionSet{codes: make(map[string]struct{}, len(codes))}
	for _, c := range codes {
		if c == "" {
			continue
		}
		s.codes[c] = struct{}{}
	}
	return s
}

// Has reports whether code is in the set.
func (s PermissionSet) Has(code string) bool {
	_, ok := s.codes[code]
	return ok
}

// Len returns the number of codes.
func (s PermissionSet) Len() int {
	return len(s.codes)
}

// Codes returns the codes sorted.
func (s PermissionSet) Codes() []string {
	out := make([]string, 0, len(s.codes))
	for c := range s.codes {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
