package rbac

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasdoors/backoffice/internal/config"
)

const testRoles = `{
  "admin": {
    "name": "Administrator",
    "permissions": {
      "product": ["read", "write"],
      "ledger": ["read", "write"]
    }
  },
  "staff": {
    "name": "Staff",
    "permissions": {
      "product": ["read"]
    }
  }
}`

func newTestService(t *testing.T) *RBACService {
	t.Helper()

	path := filepath.Join(t.TempDir(), "roles.json")
	require.NoError(t, os.WriteFile(path, []byte(testRoles), 0o644))

	svc, err := NewRBACService(&config.Configuration{
		RBAC: config.RBACConfig{RolesConfigPath: path},
	})
	require.NoError(t, err)
	return svc
}

func TestHasPermission(t *testing.T) {
	svc := newTestService(t)

	assert.True(t, svc.HasPermission([]string{"admin"}, "product", "write"))
	assert.True(t, svc.HasPermission([]string{"staff"}, "product", "read"))
	assert.False(t, svc.HasPermission([]string{"staff"}, "product", "write"))
	assert.False(t, svc.HasPermission([]string{"staff"}, "ledger", "read"))

	// Any granting role is enough.
	assert.True(t, svc.HasPermission([]string{"staff", "admin"}, "ledger", "write"))
}

func TestHasPermissionDeniesWithoutRoles(t *testing.T) {
	svc := newTestService(t)

	assert.False(t, svc.HasPermission(nil, "product", "read"))
	assert.False(t, svc.HasPermission([]string{}, "product", "read"))
	assert.False(t, svc.HasPermission([]string{"unknown"}, "product", "read"))
}

func TestValidateRole(t *testing.T) {
	svc := newTestService(t)

	assert.True(t, svc.ValidateRole("admin"))
	assert.False(t, svc.ValidateRole("superuser"))
}

func TestListRoles(t *testing.T) {
	svc := newTestService(t)

	roles := svc.ListRoles()
	assert.Len(t, roles, 2)
}

func TestMissingRolesFile(t *testing.T) {
	_, err := NewRBACService(&config.Configuration{
		RBAC: config.RBACConfig{RolesConfigPath: "/nonexistent/roles.json"},
	})
	assert.Error(t, err)
}
