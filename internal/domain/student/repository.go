package student

import "context"

type StudentRepository interface {
	Create(ctx context.Context, s Student) (Student, error)
	// GetByID resolves a student regardless of the active flag so that
	// historical ledger rows keep joining after a soft delete.
	GetByID(ctx context.Context, id string) (Student, error)
	GetActiveByBranchID(ctx context.Context, branchID string) ([]Student, error)
	SearchByName(ctx context.Context, branchID, name string) ([]Student, error)
	Update(ctx context.Context, req UpdateStudentRequest) error
	SoftDelete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
	CountActiveByBranchID(ctx context.Context, branchID string) (int64, error)
}
