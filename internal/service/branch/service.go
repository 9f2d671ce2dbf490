package branch

import (
	"context"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/domain/branch"
	"github.com/educenter/educenter-backend-go/internal/domain/student"
	"github.com/educenter/educenter-backend-go/internal/domain/teacher"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/educenter/educenter-backend-go/internal/service/access"
)

type BranchServiceImpl struct {
	db          *database.DB
	branchRepo  branch.BranchRepository
	userRepo    auth.UserRepository
	teacherRepo teacher.TeacherRepository
	studentRepo student.StudentRepository
	guard       *access.Guard
}

func NewBranchService(
	db *database.DB,
	branchRepo branch.BranchRepository,
	userRepo auth.UserRepository,
	teacherRepo teacher.TeacherRepository,
	studentRepo student.StudentRepository,
	guard *access.Guard,
) branch.BranchService {
	return &BranchServiceImpl{
		db:          db,
		branchRepo:  branchRepo,
		userRepo:    userRepo,
		teacherRepo: teacherRepo,
		studentRepo: studentRepo,
		guard:       guard,
	}
}

func (s *BranchServiceImpl) Create(ctx context.Context, caller auth.Caller, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	if err := s.guard.RequireSuperAdmin(caller); err != nil {
		return branch.BranchResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	created, err := s.branchRepo.Create(ctx, branch.Branch{Name: req.Name, Address: req.Address})
	if err != nil {
		return branch.BranchResponse{}, err
	}

	return toBranchResponse(created), nil
}

func (s *BranchServiceImpl) GetByID(ctx context.Context, caller auth.Caller, id string) (branch.BranchResponse, error) {
	if err := s.guard.Authorize(caller, id); err != nil {
		return branch.BranchResponse{}, err
	}

	b, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return branch.BranchResponse{}, err
	}

	return toBranchResponse(b), nil
}

// List returns every branch for SUPER_ADMIN and only the assigned branch for
// ADMIN callers.
func (s *BranchServiceImpl) List(ctx context.Context, caller auth.Caller) ([]branch.BranchResponse, error) {
	if caller.IsSuperAdmin() {
		branches, err := s.branchRepo.List(ctx)
		if err != nil {
			return nil, err
		}

		responses := make([]branch.BranchResponse, 0, len(branches))
		for _, b := range branches {
			responses = append(responses, toBranchResponse(b))
		}
		return responses, nil
	}

	if caller.BranchID == nil {
		return nil, auth.ErrBranchNotAssigned
	}

	b, err := s.branchRepo.GetByID(ctx, *caller.BranchID)
	if err != nil {
		return nil, err
	}

	return []branch.BranchResponse{toBranchResponse(b)}, nil
}

func (s *BranchServiceImpl) Update(ctx context.Context, caller auth.Caller, req branch.UpdateBranchRequest) (branch.BranchResponse, error) {
	if err := s.guard.RequireSuperAdmin(caller); err != nil {
		return branch.BranchResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	if err := s.branchRepo.Update(ctx, req); err != nil {
		return branch.BranchResponse{}, err
	}

	b, err := s.branchRepo.GetByID(ctx, req.ID)
	if err != nil {
		return branch.BranchResponse{}, err
	}

	return toBranchResponse(b), nil
}

// Delete removes a branch only when nothing references it anymore.
func (s *BranchServiceImpl) Delete(ctx context.Context, caller auth.Caller, id string) error {
	if err := s.guard.RequireSuperAdmin(caller); err != nil {
		return err
	}

	if _, err := s.branchRepo.GetByID(ctx, id); err != nil {
		return err
	}

	userCount, err := s.userRepo.CountByBranchID(ctx, id)
	if err != nil {
		return err
	}
	teacherCount, err := s.teacherRepo.CountActiveByBranchID(ctx, id)
	if err != nil {
		return err
	}
	studentCount, err := s.studentRepo.CountActiveByBranchID(ctx, id)
	if err != nil {
		return err
	}

	if userCount > 0 || teacherCount > 0 || studentCount > 0 {
		return branch.ErrBranchHasDependents
	}

	return s.branchRepo.Delete(ctx, id)
}

func toBranchResponse(b branch.Branch) branch.BranchResponse {
	return branch.BranchResponse{
		ID:      b.ID,
		Name:    b.Name,
		Address: b.Address,
	}
}
