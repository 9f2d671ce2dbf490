package access

import (
	"github.com/educenter/educenter-backend-go/internal/domain/auth"
)

// Guard enforces branch-level tenancy for every service operation. Decisions
// depend only on the caller passed in, never on ambient request state.
type Guard struct{}

func NewGuard() *Guard {
	return &Guard{}
}

// Authorize returns nil when the caller may operate on branchID.
func (g *Guard) Authorize(caller auth.Caller, branchID string) error {
	if caller.Role == auth.RoleAdmin && caller.BranchID == nil {
		return auth.ErrBranchNotAssigned
	}
	if !caller.CanAccessBranch(branchID) {
		return auth.ErrBranchAccessDenied
	}
	return nil
}

// RequireSuperAdmin returns nil only for SUPER_ADMIN callers.
func (g *Guard) RequireSuperAdmin(caller auth.Caller) error {
	if !caller.IsSuperAdmin() {
		return auth.ErrSuperAdminRequired
	}
	return nil
}
