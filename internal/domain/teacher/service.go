package teacher

import (
	"context"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
)

type TeacherService interface {
	Create(ctx context.Context, caller auth.Caller, req CreateTeacherRequest) (TeacherResponse, error)
	GetByID(ctx context.Context, caller auth.Caller, id string) (TeacherResponse, error)
	ListByBranch(ctx context.Context, caller auth.Caller, branchID string) ([]TeacherResponse, error)
	Update(ctx context.Context, caller auth.Caller, req UpdateTeacherRequest) (TeacherResponse, error)
	Delete(ctx context.Context, caller auth.Caller, id string) error
}
