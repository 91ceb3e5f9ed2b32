package context

import (
	stdctx "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/marketplace-auth/internal/model"
)

func TestManager_SetAndGetPrincipal(t *testing.T) {
	m := NewManager()
	p := model.Principal{
		UserID:      uuid.New(),
		TenantID:    uuid.NullUUID{UUID: uuid.New(), Valid: true},
		Roles:       []string{"Admin"},
		Permissions: []string{"Orders.Cancel"},
	}

	ctx := m.SetPrincipalToContext(stdctx.Background(), p)

	got, ok := m.GetPrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, p, got)
}

func TestManager_GetPrincipal_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetPrincipalFromContext(stdctx.Background())
	assert.False(t, ok)

	_, ok = m.GetPermissionsFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_PrincipalIsCopied(t *testing.T) {
	m := NewManager()
	perms := []string{"Orders.View"}
	ctx := m.SetPrincipalToContext(stdctx.Background(), model.Principal{UserID: uuid.New(), Permissions: perms})

	perms[0] = "Orders.Cancel"

	got, _ := m.GetPrincipalFromContext(ctx)
	assert.Equal(t, []string{"Orders.View"}, got.Permissions)

	set, ok := m.GetPermissionsFromContext(ctx)
	assert.True(t, ok)
	assert.True(t, set.Has("Orders.View"))
	assert.False(t, set.Has("Orders.Cancel"))
}
