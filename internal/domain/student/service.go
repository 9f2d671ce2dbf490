package student

import (
	"context"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
)

type StudentService interface {
	Create(ctx context.Context, caller auth.Caller, req CreateStudentRequest) (StudentResponse, error)
	GetByID(ctx context.Context, caller auth.Caller, id string) (StudentResponse, error)
	ListByBranch(ctx context.Context, caller auth.Caller, branchID string) ([]StudentResponse, error)
	SearchByName(ctx context.Context, caller auth.Caller, branchID, name string) ([]StudentResponse, error)
	Update(ctx context.Context, caller auth.Caller, req UpdateStudentRequest) (StudentResponse, error)
	Delete(ctx context.Context, caller auth.Caller, id string) error
}
