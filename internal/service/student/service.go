package student

import (
	"context"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/domain/branch"
	"github.com/educenter/educenter-backend-go/internal/domain/student"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/educenter/educenter-backend-go/internal/service/access"
)

type StudentServiceImpl struct {
	db          *database.DB
	studentRepo student.StudentRepository
	branchRepo  branch.BranchRepository
	guard       *access.Guard
}

func NewStudentService(
	db *database.DB,
	studentRepo student.StudentRepository,
	branchRepo branch.BranchRepository,
	guard *access.Guard,
) student.StudentService {
	return &StudentServiceImpl{
		db:          db,
		studentRepo: studentRepo,
		branchRepo:  branchRepo,
		guard:       guard,
	}
}

func (s *StudentServiceImpl) Create(ctx context.Context, caller auth.Caller, req student.CreateStudentRequest) (student.StudentResponse, error) {
	if err := req.Validate(); err != nil {
		return student.StudentResponse{}, err
	}
	if err := s.guard.Authorize(caller, req.BranchID); err != nil {
		return student.StudentResponse{}, err
	}

	if _, err := s.branchRepo.GetByID(ctx, req.BranchID); err != nil {
		return student.StudentResponse{}, err
	}

	created, err := s.studentRepo.Create(ctx, student.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		ParentPhone: req.ParentPhone,
		BranchID:    req.BranchID,
	})
	if err != nil {
		return student.StudentResponse{}, err
	}

	return toStudentResponse(created), nil
}

func (s *StudentServiceImpl) GetByID(ctx context.Context, caller auth.Caller, id string) (student.StudentResponse, error) {
	st, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return student.StudentResponse{}, err
	}
	if err := s.guard.Authorize(caller, st.BranchID); err != nil {
		return student.StudentResponse{}, err
	}

	return toStudentResponse(st), nil
}

func (s *StudentServiceImpl) ListByBranch(ctx context.Context, caller auth.Caller, branchID string) ([]student.StudentResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}

	students, err := s.studentRepo.GetActiveByBranchID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	return toStudentResponses(students), nil
}

func (s *StudentServiceImpl) SearchByName(ctx context.Context, caller auth.Caller, branchID, name string) ([]student.StudentResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}

	students, err := s.studentRepo.SearchByName(ctx, branchID, name)
	if err != nil {
		return nil, err
	}

	return toStudentResponses(students), nil
}

func (s *StudentServiceImpl) Update(ctx context.Context, caller auth.Caller, req student.UpdateStudentRequest) (student.StudentResponse, error) {
	if err := req.Validate(); err != nil {
		return student.StudentResponse{}, err
	}

	existing, err := s.studentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return student.StudentResponse{}, err
	}
	if err := s.guard.Authorize(caller, existing.BranchID); err != nil {
		return student.StudentResponse{}, err
	}

	if err := s.studentRepo.Update(ctx, req); err != nil {
		return student.StudentResponse{}, err
	}

	updated, err := s.studentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return student.StudentResponse{}, err
	}

	return toStudentResponse(updated), nil
}

// Delete deactivates a student. Payment history stays on the books.
func (s *StudentServiceImpl) Delete(ctx context.Context, caller auth.Caller, id string) error {
	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guard.Authorize(caller, existing.BranchID); err != nil {
		return err
	}

	return s.studentRepo.SoftDelete(ctx, id)
}

func toStudentResponse(st student.Student) student.StudentResponse {
	return student.StudentResponse{
		ID:          st.ID,
		FirstName:   st.FirstName,
		LastName:    st.LastName,
		Phone:       st.Phone,
		ParentPhone: st.ParentPhone,
		BranchID:    st.BranchID,
		Active:      st.Active,
	}
}

func toStudentResponses(students []student.Student) []student.StudentResponse {
	responses := make([]student.StudentResponse, 0, len(students))
	for _, st := range students {
		responses = append(responses, toStudentResponse(st))
	}
	return responses
}
