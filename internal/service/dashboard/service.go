package dashboard

import (
	"context"
	"time"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/domain/branch"
	"github.com/educenter/educenter-backend-go/internal/domain/dashboard"
	"github.com/educenter/educenter-backend-go/internal/domain/group"
	"github.com/educenter/educenter-backend-go/internal/domain/payment"
	"github.com/educenter/educenter-backend-go/internal/domain/student"
	"github.com/educenter/educenter-backend-go/internal/domain/teacher"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type DashboardServiceImpl struct {
	db          *database.DB
	branchRepo  branch.BranchRepository
	userRepo    auth.UserRepository
	studentRepo student.StudentRepository
	teacherRepo teacher.TeacherRepository
	groupRepo   group.GroupRepository
	paymentRepo payment.PaymentRepository
}

func NewDashboardService(
	db *database.DB,
	branchRepo branch.BranchRepository,
	userRepo auth.UserRepository,
	studentRepo student.StudentRepository,
	teacherRepo teacher.TeacherRepository,
	groupRepo group.GroupRepository,
	paymentRepo payment.PaymentRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		db:          db,
		branchRepo:  branchRepo,
		userRepo:    userRepo,
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		groupRepo:   groupRepo,
		paymentRepo: paymentRepo,
	}
}

// Stats returns organisation-wide numbers for SUPER_ADMIN and the assigned
// branch's numbers for ADMIN.
func (s *DashboardServiceImpl) Stats(ctx context.Context, caller auth.Caller) (dashboard.Stats, error) {
	if caller.IsSuperAdmin() {
		return s.globalStats(ctx)
	}

	if caller.BranchID == nil {
		return dashboard.Stats{}, auth.ErrBranchNotAssigned
	}

	return s.branchStats(ctx, *caller.BranchID)
}

func (s *DashboardServiceImpl) globalStats(ctx context.Context) (dashboard.Stats, error) {
	var stats dashboard.Stats
	var err error

	if stats.TotalBranches, err = s.branchRepo.CountAll(ctx); err != nil {
		return dashboard.Stats{}, err
	}
	if stats.TotalUsers, err = s.userRepo.CountAll(ctx); err != nil {
		return dashboard.Stats{}, err
	}
	if stats.TotalStudents, err = s.studentRepo.CountAll(ctx); err != nil {
		return dashboard.Stats{}, err
	}
	if stats.TotalTeachers, err = s.teacherRepo.CountAll(ctx); err != nil {
		return dashboard.Stats{}, err
	}
	if stats.TotalGroups, err = s.groupRepo.CountAll(ctx); err != nil {
		return dashboard.Stats{}, err
	}

	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	now := time.Now()
	stats.MonthlyRevenue = decimal.Zero
	stats.TotalRevenue = decimal.Zero
	for _, b := range branches {
		monthly, err := s.paymentRepo.SumByBranchAndPeriod(ctx, b.ID, now.Year(), int(now.Month()))
		if err != nil {
			return dashboard.Stats{}, err
		}
		total, err := s.paymentRepo.SumByBranch(ctx, b.ID)
		if err != nil {
			return dashboard.Stats{}, err
		}
		stats.MonthlyRevenue = stats.MonthlyRevenue.Add(monthly)
		stats.TotalRevenue = stats.TotalRevenue.Add(total)
	}

	return stats, nil
}

func (s *DashboardServiceImpl) branchStats(ctx context.Context, branchID string) (dashboard.Stats, error) {
	stats := dashboard.Stats{TotalBranches: 1}
	var err error

	if stats.TotalUsers, err = s.userRepo.CountByBranchID(ctx, branchID); err != nil {
		return dashboard.Stats{}, err
	}
	if stats.TotalStudents, err = s.studentRepo.CountActiveByBranchID(ctx, branchID); err != nil {
		return dashboard.Stats{}, err
	}
	if stats.TotalTeachers, err = s.teacherRepo.CountActiveByBranchID(ctx, branchID); err != nil {
		return dashboard.Stats{}, err
	}
	if stats.TotalGroups, err = s.groupRepo.CountActiveByBranchID(ctx, branchID); err != nil {
		return dashboard.Stats{}, err
	}

	now := time.Now()
	if stats.MonthlyRevenue, err = s.paymentRepo.SumByBranchAndPeriod(ctx, branchID, now.Year(), int(now.Month())); err != nil {
		return dashboard.Stats{}, err
	}
	if stats.TotalRevenue, err = s.paymentRepo.SumByBranch(ctx, branchID); err != nil {
		return dashboard.Stats{}, err
	}

	return stats, nil
}
