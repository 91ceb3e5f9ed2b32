package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/marketplace-auth/internal/model"
)

func TestCheck(t *testing.T) {
	admin := &model.Principal{UserID: uuid.New(), Roles: []string{"Admin"}, Permissions: []string{"Orders.Cancel"}}
	customer := &model.Principal{UserID: uuid.New(), Roles: []string{"Customer"}}

	tests := []struct {
		name      string
		principal *model.Principal
		req       Requirement
		wantErr   error
	}{
		{"public anonymous", nil, Public(), nil},
		{"authenticated anonymous", nil, Authenticated(), model.ErrUnauthenticated},
		{"authenticated ok", customer, Authenticated(), nil},
		{"permission anonymous", nil, Permission("Orders.Cancel"), model.ErrUnauthenticated},
		{"permission missing", customer, Permission("Orders.Cancel"), model.ErrForbidden},
		{"permission held", admin, Permission("Orders.Cancel"), nil},
		{"unknown kind", admin, Requirement{kind: Kind(42)}, model.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var granted model.PermissionSet
			if tt.principal != nil {
				granted = model.NewPermissionSet(tt.principal.Permissions...)
			}
			err := Check(tt.principal, granted, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequirement(t *testing.T) {
	assert.False(t, Public().NeedsPrincipal())
	assert.True(t, Authenticated().NeedsPrincipal())
	assert.True(t, Permission("x").NeedsPrincipal())
	assert.Equal(t, "permission(Orders.Cancel)", Permission("Orders.Cancel").String())
	assert.Equal(t, "authenticated", Authenticated().String())
	assert.Equal(t, "Orders.Cancel", Permission("Orders.Cancel").Code())
}

func TestCatalog(t *testing.T) {
	c := NewCatalog()

	require.NoError(t, c.Register("/orders.v1.Orders/Cancel", Permission("Orders.Cancel")))
	require.NoError(t, c.Register("/orders.v1.Orders/List", Authenticated()))

	assert.ErrorIs(t, c.Register("/orders.v1.Orders/Cancel", Public()), ErrDuplicate)
	assert.ErrorIs(t, c.Register("", Public()), ErrInvalid)
	assert.ErrorIs(t, c.Register("/x/Y", Permission("")), ErrInvalid)

	assert.Equal(t, KindPermission, c.Lookup("/orders.v1.Orders/Cancel").Kind())
	assert.Equal(t, KindAuthenticated, c.Lookup("/orders.v1.Orders/List").Kind())
	assert.Equal(t, KindPublic, c.Lookup("/catalog.v1.Catalog/Browse").Kind())

	assert.Equal(t, []string{"/orders.v1.Orders/Cancel", "/orders.v1.Orders/List"}, c.Operations())

	c.Freeze()
	assert.ErrorIs(t, c.Register("/late/Op", Public()), ErrFrozen)
	assert.Panics(t, func() { c.MustRegister("/late/Op", Public()) })
}
