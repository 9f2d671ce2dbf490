package teacher

import (
	"context"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/domain/branch"
	"github.com/educenter/educenter-backend-go/internal/domain/teacher"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/educenter/educenter-backend-go/internal/service/access"
	"github.com/shopspring/decimal"
)

type TeacherServiceImpl struct {
	db          *database.DB
	teacherRepo teacher.TeacherRepository
	branchRepo  branch.BranchRepository
	guard       *access.Guard
}

func NewTeacherService(
	db *database.DB,
	teacherRepo teacher.TeacherRepository,
	branchRepo branch.BranchRepository,
	guard *access.Guard,
) teacher.TeacherService {
	return &TeacherServiceImpl{
		db:          db,
		teacherRepo: teacherRepo,
		branchRepo:  branchRepo,
		guard:       guard,
	}
}

func (s *TeacherServiceImpl) Create(ctx context.Context, caller auth.Caller, req teacher.CreateTeacherRequest) (teacher.TeacherResponse, error) {
	if err := req.Validate(); err != nil {
		return teacher.TeacherResponse{}, err
	}
	if err := s.guard.Authorize(caller, req.BranchID); err != nil {
		return teacher.TeacherResponse{}, err
	}

	if _, err := s.branchRepo.GetByID(ctx, req.BranchID); err != nil {
		return teacher.TeacherResponse{}, err
	}

	baseSalary := decimal.Zero
	if req.BaseSalary != nil {
		baseSalary = *req.BaseSalary
	}
	paymentPercentage := decimal.Zero
	if req.PaymentPercentage != nil {
		paymentPercentage = *req.PaymentPercentage
	}

	created, err := s.teacherRepo.Create(ctx, teacher.Teacher{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Phone:             req.Phone,
		Email:             req.Email,
		BaseSalary:        baseSalary,
		PaymentPercentage: paymentPercentage,
		SalaryType:        teacher.SalaryType(req.SalaryType),
		BranchID:          req.BranchID,
	})
	if err != nil {
		return teacher.TeacherResponse{}, err
	}

	return toTeacherResponse(created), nil
}

func (s *TeacherServiceImpl) GetByID(ctx context.Context, caller auth.Caller, id string) (teacher.TeacherResponse, error) {
	t, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return teacher.TeacherResponse{}, err
	}
	if err := s.guard.Authorize(caller, t.BranchID); err != nil {
		return teacher.TeacherResponse{}, err
	}

	return toTeacherResponse(t), nil
}

func (s *TeacherServiceImpl) ListByBranch(ctx context.Context, caller auth.Caller, branchID string) ([]teacher.TeacherResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}

	teachers, err := s.teacherRepo.GetActiveByBranchID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	responses := make([]teacher.TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		responses = append(responses, toTeacherResponse(t))
	}

	return responses, nil
}

func (s *TeacherServiceImpl) Update(ctx context.Context, caller auth.Caller, req teacher.UpdateTeacherRequest) (teacher.TeacherResponse, error) {
	if err := req.Validate(); err != nil {
		return teacher.TeacherResponse{}, err
	}

	existing, err := s.teacherRepo.GetByID(ctx, req.ID)
	if err != nil {
		return teacher.TeacherResponse{}, err
	}
	if err := s.guard.Authorize(caller, existing.BranchID); err != nil {
		return teacher.TeacherResponse{}, err
	}

	if err := s.teacherRepo.Update(ctx, req); err != nil {
		return teacher.TeacherResponse{}, err
	}

	updated, err := s.teacherRepo.GetByID(ctx, req.ID)
	if err != nil {
		return teacher.TeacherResponse{}, err
	}

	return toTeacherResponse(updated), nil
}

// Delete deactivates a teacher. Ledger rows referencing the teacher remain
// intact and keep resolving through GetByID.
func (s *TeacherServiceImpl) Delete(ctx context.Context, caller auth.Caller, id string) error {
	existing, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guard.Authorize(caller, existing.BranchID); err != nil {
		return err
	}

	return s.teacherRepo.SoftDelete(ctx, id)
}

func toTeacherResponse(t teacher.Teacher) teacher.TeacherResponse {
	return teacher.TeacherResponse{
		ID:                t.ID,
		FirstName:         t.FirstName,
		LastName:          t.LastName,
		Phone:             t.Phone,
		Email:             t.Email,
		BaseSalary:        t.BaseSalary,
		PaymentPercentage: t.PaymentPercentage,
		SalaryType:        string(t.SalaryType),
		BranchID:          t.BranchID,
		Active:            t.Active,
	}
}
