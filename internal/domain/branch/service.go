package branch

import (
	"context"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
)

type BranchService interface {
	Create(ctx context.Context, caller auth.Caller, req CreateBranchRequest) (BranchResponse, error)
	GetByID(ctx context.Context, caller auth.Caller, id string) (BranchResponse, error)
	List(ctx context.Context, caller auth.Caller) ([]BranchResponse, error)
	Update(ctx context.Context, caller auth.Caller, req UpdateBranchRequest) (BranchResponse, error)
	Delete(ctx context.Context, caller auth.Caller, id string) error
}
