package auth

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
)

func (r Role) IsValid() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// Caller is the authenticated identity behind a request. Handlers build it
// from verified JWT claims and services receive it explicitly; services never
// read identity from ambient state.
type Caller struct {
	UserID   string
	Role     Role
	BranchID *string
}

// CanAccessBranch reports whether the caller may operate on the given branch.
// SUPER_ADMIN spans all branches, ADMIN is pinned to the one assigned branch.
func (c Caller) CanAccessBranch(branchID string) bool {
	switch c.Role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return c.BranchID != nil && *c.BranchID == branchID
	}
	return false
}

func (c Caller) IsSuperAdmin() bool {
	return c.Role == RoleSuperAdmin
}
