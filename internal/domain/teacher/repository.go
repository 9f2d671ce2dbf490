package teacher

import "context"

type TeacherRepository interface {
	Create(ctx context.Context, t Teacher) (Teacher, error)
	// GetByID resolves a teacher regardless of the active flag so that
	// historical ledger rows keep joining after a soft delete.
	GetByID(ctx context.Context, id string) (Teacher, error)
	GetActiveByBranchID(ctx context.Context, branchID string) ([]Teacher, error)
	Update(ctx context.Context, req UpdateTeacherRequest) error
	SoftDelete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
	CountActiveByBranchID(ctx context.Context, branchID string) (int64, error)
}
