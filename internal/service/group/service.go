package group

import (
	"context"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/domain/group"
	"github.com/educenter/educenter-backend-go/internal/domain/student"
	"github.com/educenter/educenter-backend-go/internal/domain/teacher"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/educenter/educenter-backend-go/internal/service/access"
)

type GroupServiceImpl struct {
	db          *database.DB
	groupRepo   group.GroupRepository
	teacherRepo teacher.TeacherRepository
	studentRepo student.StudentRepository
	guard       *access.Guard
}

func NewGroupService(
	db *database.DB,
	groupRepo group.GroupRepository,
	teacherRepo teacher.TeacherRepository,
	studentRepo student.StudentRepository,
	guard *access.Guard,
) group.GroupService {
	return &GroupServiceImpl{
		db:          db,
		groupRepo:   groupRepo,
		teacherRepo: teacherRepo,
		studentRepo: studentRepo,
		guard:       guard,
	}
}

func (s *GroupServiceImpl) Create(ctx context.Context, caller auth.Caller, req group.CreateGroupRequest) (group.GroupResponse, error) {
	if err := req.Validate(); err != nil {
		return group.GroupResponse{}, err
	}
	if err := s.guard.Authorize(caller, req.BranchID); err != nil {
		return group.GroupResponse{}, err
	}

	t, err := s.teacherRepo.GetByID(ctx, req.TeacherID)
	if err != nil {
		return group.GroupResponse{}, err
	}
	if t.BranchID != req.BranchID {
		return group.GroupResponse{}, group.ErrTeacherBranchMismatch
	}

	created, err := s.groupRepo.Create(ctx, group.Group{
		Name:      req.Name,
		Price:     req.Price,
		TeacherID: req.TeacherID,
		BranchID:  req.BranchID,
	})
	if err != nil {
		return group.GroupResponse{}, err
	}

	return s.toGroupResponse(ctx, created)
}

func (s *GroupServiceImpl) GetByID(ctx context.Context, caller auth.Caller, id string) (group.GroupResponse, error) {
	g, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return group.GroupResponse{}, err
	}
	if err := s.guard.Authorize(caller, g.BranchID); err != nil {
		return group.GroupResponse{}, err
	}

	return s.toGroupResponse(ctx, g)
}

func (s *GroupServiceImpl) ListByBranch(ctx context.Context, caller auth.Caller, branchID string) ([]group.GroupResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}

	groups, err := s.groupRepo.GetActiveByBranchID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	return s.toGroupResponses(ctx, groups)
}

func (s *GroupServiceImpl) ListByTeacher(ctx context.Context, caller auth.Caller, teacherID string) ([]group.GroupResponse, error) {
	t, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(caller, t.BranchID); err != nil {
		return nil, err
	}

	groups, err := s.groupRepo.GetActiveByTeacherID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	return s.toGroupResponses(ctx, groups)
}

// ListByStudent returns every group the student is enrolled in, including
// deactivated ones so payment history stays explainable.
func (s *GroupServiceImpl) ListByStudent(ctx context.Context, caller auth.Caller, studentID string) ([]group.GroupResponse, error) {
	st, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(caller, st.BranchID); err != nil {
		return nil, err
	}

	groupIDs, err := s.groupRepo.GetGroupIDsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]group.GroupResponse, 0, len(groupIDs))
	for _, id := range groupIDs {
		g, err := s.groupRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		resp, err := s.toGroupResponse(ctx, g)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

func (s *GroupServiceImpl) Update(ctx context.Context, caller auth.Caller, req group.UpdateGroupRequest) (group.GroupResponse, error) {
	if err := req.Validate(); err != nil {
		return group.GroupResponse{}, err
	}

	existing, err := s.groupRepo.GetByID(ctx, req.ID)
	if err != nil {
		return group.GroupResponse{}, err
	}
	if err := s.guard.Authorize(caller, existing.BranchID); err != nil {
		return group.GroupResponse{}, err
	}

	if req.TeacherID != nil {
		t, err := s.teacherRepo.GetByID(ctx, *req.TeacherID)
		if err != nil {
			return group.GroupResponse{}, err
		}
		if t.BranchID != existing.BranchID {
			return group.GroupResponse{}, group.ErrTeacherBranchMismatch
		}
	}

	if err := s.groupRepo.Update(ctx, req); err != nil {
		return group.GroupResponse{}, err
	}

	updated, err := s.groupRepo.GetByID(ctx, req.ID)
	if err != nil {
		return group.GroupResponse{}, err
	}

	return s.toGroupResponse(ctx, updated)
}

// Delete deactivates a group. Enrollments and payment history stay intact.
func (s *GroupServiceImpl) Delete(ctx context.Context, caller auth.Caller, id string) error {
	existing, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guard.Authorize(caller, existing.BranchID); err != nil {
		return err
	}

	return s.groupRepo.SoftDelete(ctx, id)
}

func (s *GroupServiceImpl) EnrollStudent(ctx context.Context, caller auth.Caller, groupID, studentID string) error {
	g, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if err := s.guard.Authorize(caller, g.BranchID); err != nil {
		return err
	}

	st, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if st.BranchID != g.BranchID {
		return group.ErrStudentBranchMismatch
	}

	return s.groupRepo.AddStudent(ctx, groupID, studentID)
}

func (s *GroupServiceImpl) UnenrollStudent(ctx context.Context, caller auth.Caller, groupID, studentID string) error {
	g, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if err := s.guard.Authorize(caller, g.BranchID); err != nil {
		return err
	}

	return s.groupRepo.RemoveStudent(ctx, groupID, studentID)
}

func (s *GroupServiceImpl) ListStudents(ctx context.Context, caller auth.Caller, groupID string) ([]student.StudentResponse, error) {
	g, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(caller, g.BranchID); err != nil {
		return nil, err
	}

	studentIDs, err := s.groupRepo.GetStudentIDs(ctx, groupID)
	if err != nil {
		return nil, err
	}

	responses := make([]student.StudentResponse, 0, len(studentIDs))
	for _, id := range studentIDs {
		st, err := s.studentRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		responses = append(responses, student.StudentResponse{
			ID:          st.ID,
			FirstName:   st.FirstName,
			LastName:    st.LastName,
			Phone:       st.Phone,
			ParentPhone: st.ParentPhone,
			BranchID:    st.BranchID,
			Active:      st.Active,
		})
	}

	return responses, nil
}

func (s *GroupServiceImpl) toGroupResponse(ctx context.Context, g group.Group) (group.GroupResponse, error) {
	count, err := s.groupRepo.CountStudents(ctx, g.ID)
	if err != nil {
		return group.GroupResponse{}, err
	}

	resp := group.GroupResponse{
		ID:           g.ID,
		Name:         g.Name,
		Price:        g.Price,
		TeacherID:    g.TeacherID,
		BranchID:     g.BranchID,
		StudentCount: count,
		Active:       g.Active,
	}

	if t, err := s.teacherRepo.GetByID(ctx, g.TeacherID); err == nil {
		resp.TeacherName = t.FullName()
	}

	return resp, nil
}

func (s *GroupServiceImpl) toGroupResponses(ctx context.Context, groups []group.Group) ([]group.GroupResponse, error) {
	responses := make([]group.GroupResponse, 0, len(groups))
	for _, g := range groups {
		resp, err := s.toGroupResponse(ctx, g)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
