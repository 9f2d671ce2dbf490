package access

import (
	"testing"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestGuard_Authorize(t *testing.T) {
	guard := NewGuard()

	t.Run("super admin can access any branch", func(t *testing.T) {
		caller := auth.Caller{UserID: "u1", Role: auth.RoleSuperAdmin}
		assert.NoError(t, guard.Authorize(caller, "branch-1"))
		assert.NoError(t, guard.Authorize(caller, "branch-2"))
	})

	t.Run("admin can access own branch", func(t *testing.T) {
		caller := auth.Caller{UserID: "u2", Role: auth.RoleAdmin, BranchID: strPtr("branch-1")}
		assert.NoError(t, guard.Authorize(caller, "branch-1"))
	})

	t.Run("admin cannot access another branch", func(t *testing.T) {
		caller := auth.Caller{UserID: "u2", Role: auth.RoleAdmin, BranchID: strPtr("branch-1")}
		err := guard.Authorize(caller, "branch-2")
		assert.ErrorIs(t, err, auth.ErrBranchAccessDenied)
	})

	t.Run("admin without branch assignment is rejected", func(t *testing.T) {
		caller := auth.Caller{UserID: "u3", Role: auth.RoleAdmin}
		err := guard.Authorize(caller, "branch-1")
		assert.ErrorIs(t, err, auth.ErrBranchNotAssigned)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		caller := auth.Caller{UserID: "u4", Role: auth.Role("VIEWER")}
		err := guard.Authorize(caller, "branch-1")
		assert.ErrorIs(t, err, auth.ErrBranchAccessDenied)
	})
}

func TestGuard_RequireSuperAdmin(t *testing.T) {
	guard := NewGuard()

	assert.NoError(t, guard.RequireSuperAdmin(auth.Caller{Role: auth.RoleSuperAdmin}))
	assert.ErrorIs(t, guard.RequireSuperAdmin(auth.Caller{Role: auth.RoleAdmin, BranchID: strPtr("b1")}), auth.ErrSuperAdminRequired)
}
