package group

import "context"

type GroupRepository interface {
	Create(ctx context.Context, g Group) (Group, error)
	// GetByID resolves a group regardless of the active flag so that
	// historical ledger rows keep joining after a soft delete.
	GetByID(ctx context.Context, id string) (Group, error)
	GetActiveByBranchID(ctx context.Context, branchID string) ([]Group, error)
	GetActiveByTeacherID(ctx context.Context, teacherID string) ([]Group, error)
	Update(ctx context.Context, req UpdateGroupRequest) error
	SoftDelete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
	CountActiveByBranchID(ctx context.Context, branchID string) (int64, error)

	// Enrollment relation.
	AddStudent(ctx context.Context, groupID, studentID string) error
	RemoveStudent(ctx context.Context, groupID, studentID string) error
	IsStudentEnrolled(ctx context.Context, groupID, studentID string) (bool, error)
	GetStudentIDs(ctx context.Context, groupID string) ([]string, error)
	GetGroupIDsByStudent(ctx context.Context, studentID string) ([]string, error)
	CountStudents(ctx context.Context, groupID string) (int, error)
}
