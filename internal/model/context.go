package model

import "context"

// ContextManager stores the authenticated principal in a request context,
// together with its permission set.
type ContextManager interface {
	SetPrincipalToContext(ctx context.Context, principal Principal) context.Context
	GetPrincipalFromContext(ctx context.Context) (Principal, bool)
	GetPermissionsFromContext(ctx context.Context) (PermissionSet, bool)
}
