package attendance

import (
	"context"
	"strings"
	"time"

	"github.com/educenter/educenter-backend-go/internal/domain/attendance"
	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/domain/group"
	"github.com/educenter/educenter-backend-go/internal/domain/student"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/educenter/educenter-backend-go/internal/pkg/validator"
	"github.com/educenter/educenter-backend-go/internal/repository/postgresql"
	"github.com/educenter/educenter-backend-go/internal/service/access"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	groupRepo      group.GroupRepository
	studentRepo    student.StudentRepository
	guard          *access.Guard
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	groupRepo group.GroupRepository,
	studentRepo student.StudentRepository,
	guard *access.Guard,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		groupRepo:      groupRepo,
		studentRepo:    studentRepo,
		guard:          guard,
	}
}

// Mark records one student's attendance. Marking the same (student, group,
// date) again overwrites the earlier status.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, caller auth.Caller, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := s.guard.Authorize(caller, req.BranchID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	g, err := s.groupRepo.GetByID(ctx, req.GroupID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if g.BranchID != req.BranchID {
		return attendance.AttendanceResponse{}, attendance.ErrGroupBranchMismatch
	}

	enrolled, err := s.groupRepo.IsStudentEnrolled(ctx, req.GroupID, req.StudentID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !enrolled {
		return attendance.AttendanceResponse{}, group.ErrStudentNotEnrolled
	}

	date, _ := validator.IsValidDate(req.Date)
	saved, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
		StudentID: req.StudentID,
		GroupID:   req.GroupID,
		Date:      date,
		Status:    attendance.Status(strings.ToUpper(req.Status)),
		Note:      req.Note,
		BranchID:  req.BranchID,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.toAttendanceResponse(ctx, saved), nil
}

// MarkBulk marks a whole group for one date in a single transaction.
func (s *AttendanceServiceImpl) MarkBulk(ctx context.Context, caller auth.Caller, req attendance.BulkAttendanceRequest) (attendance.BulkAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkAttendanceResponse{}, err
	}
	if err := s.guard.Authorize(caller, req.BranchID); err != nil {
		return attendance.BulkAttendanceResponse{}, err
	}

	g, err := s.groupRepo.GetByID(ctx, req.GroupID)
	if err != nil {
		return attendance.BulkAttendanceResponse{}, err
	}
	if g.BranchID != req.BranchID {
		return attendance.BulkAttendanceResponse{}, attendance.ErrGroupBranchMismatch
	}

	date, _ := validator.IsValidDate(req.Date)

	resp := attendance.BulkAttendanceResponse{
		GroupID:   g.ID,
		GroupName: g.Name,
		Date:      req.Date,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, item := range req.Attendances {
			enrolled, err := s.groupRepo.IsStudentEnrolled(txCtx, req.GroupID, item.StudentID)
			if err != nil {
				return err
			}
			if !enrolled {
				return group.ErrStudentNotEnrolled
			}

			saved, err := s.attendanceRepo.Upsert(txCtx, attendance.Attendance{
				StudentID: item.StudentID,
				GroupID:   req.GroupID,
				Date:      date,
				Status:    attendance.Status(strings.ToUpper(item.Status)),
				Note:      item.Note,
				BranchID:  req.BranchID,
			})
			if err != nil {
				return err
			}

			resp.TotalMarked++
			if saved.Status == attendance.StatusPresent {
				resp.PresentCount++
			} else {
				resp.AbsentCount++
			}
			resp.Attendances = append(resp.Attendances, s.toAttendanceResponse(txCtx, saved))
		}
		return nil
	})
	if err != nil {
		return attendance.BulkAttendanceResponse{}, err
	}

	return resp, nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, caller auth.Caller, id string) error {
	a, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guard.Authorize(caller, a.BranchID); err != nil {
		return err
	}

	return s.attendanceRepo.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) ListByGroupAndDate(ctx context.Context, caller auth.Caller, groupID, date string) ([]attendance.AttendanceResponse, error) {
	g, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(caller, g.BranchID); err != nil {
		return nil, err
	}

	day, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "date", Message: "must be YYYY-MM-DD"}}
	}

	records, err := s.attendanceRepo.ListByGroupAndDate(ctx, groupID, day)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, s.toAttendanceResponse(ctx, a))
	}

	return responses, nil
}

func (s *AttendanceServiceImpl) ListByStudent(ctx context.Context, caller auth.Caller, studentID string) ([]attendance.AttendanceResponse, error) {
	st, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(caller, st.BranchID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, s.toAttendanceResponse(ctx, a))
	}

	return responses, nil
}

func (s *AttendanceServiceImpl) MonthlySummary(ctx context.Context, caller auth.Caller, studentID, groupID string, year, month int) (attendance.StudentMonthlySummary, error) {
	st, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return attendance.StudentMonthlySummary{}, err
	}
	if err := s.guard.Authorize(caller, st.BranchID); err != nil {
		return attendance.StudentMonthlySummary{}, err
	}

	return s.attendanceRepo.MonthlySummary(ctx, studentID, groupID, year, month)
}

func (s *AttendanceServiceImpl) toAttendanceResponse(ctx context.Context, a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:        a.ID,
		StudentID: a.StudentID,
		GroupID:   a.GroupID,
		Date:      a.Date.Format(time.DateOnly),
		Status:    string(a.Status),
		Note:      a.Note,
		BranchID:  a.BranchID,
	}

	if st, err := s.studentRepo.GetByID(ctx, a.StudentID); err == nil {
		resp.StudentName = st.FullName()
	}
	if g, err := s.groupRepo.GetByID(ctx, a.GroupID); err == nil {
		resp.GroupName = g.Name
	}

	return resp
}
