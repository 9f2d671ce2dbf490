package salary

import (
	"context"
	"time"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/domain/branch"
	"github.com/educenter/educenter-backend-go/internal/domain/group"
	"github.com/educenter/educenter-backend-go/internal/domain/payment"
	"github.com/educenter/educenter-backend-go/internal/domain/salary"
	"github.com/educenter/educenter-backend-go/internal/domain/teacher"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/educenter/educenter-backend-go/internal/service/access"
	"github.com/shopspring/decimal"
)

type SalaryServiceImpl struct {
	db          *database.DB
	salaryRepo  salary.SalaryPaymentRepository
	paymentRepo payment.PaymentRepository
	teacherRepo teacher.TeacherRepository
	groupRepo   group.GroupRepository
	branchRepo  branch.BranchRepository
	guard       *access.Guard
}

func NewSalaryService(
	db *database.DB,
	salaryRepo salary.SalaryPaymentRepository,
	paymentRepo payment.PaymentRepository,
	teacherRepo teacher.TeacherRepository,
	groupRepo group.GroupRepository,
	branchRepo branch.BranchRepository,
	guard *access.Guard,
) salary.SalaryService {
	return &SalaryServiceImpl{
		db:          db,
		salaryRepo:  salaryRepo,
		paymentRepo: paymentRepo,
		teacherRepo: teacherRepo,
		groupRepo:   groupRepo,
		branchRepo:  branchRepo,
		guard:       guard,
	}
}

// Calculate recomputes a teacher's salary for one (year, month) from the
// payment ledger. Nothing is persisted, so amending or deleting a student
// payment changes the next calculation.
func (s *SalaryServiceImpl) Calculate(ctx context.Context, caller auth.Caller, teacherID string, year, month int) (salary.CalculationResponse, error) {
	t, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return salary.CalculationResponse{}, err
	}
	if err := s.guard.Authorize(caller, t.BranchID); err != nil {
		return salary.CalculationResponse{}, err
	}

	return s.calculate(ctx, t, year, month)
}

// CalculateForBranch recomputes the breakdown for every active teacher of
// the branch.
func (s *SalaryServiceImpl) CalculateForBranch(ctx context.Context, caller auth.Caller, branchID string, year, month int) ([]salary.CalculationResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}
	if _, err := s.branchRepo.GetByID(ctx, branchID); err != nil {
		return nil, err
	}

	teachers, err := s.teacherRepo.GetActiveByBranchID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	calcs := make([]salary.CalculationResponse, 0, len(teachers))
	for _, t := range teachers {
		calc, err := s.calculate(ctx, t, year, month)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, calc)
	}

	return calcs, nil
}

func (s *SalaryServiceImpl) calculate(ctx context.Context, t teacher.Teacher, year, month int) (salary.CalculationResponse, error) {
	groups, err := s.groupRepo.GetActiveByTeacherID(ctx, t.ID)
	if err != nil {
		return salary.CalculationResponse{}, err
	}

	totalPayments := decimal.Zero
	totalStudents := 0
	groupInfos := make([]salary.GroupSalaryInfo, 0, len(groups))

	for _, g := range groups {
		studentIDs, err := s.groupRepo.GetStudentIDs(ctx, g.ID)
		if err != nil {
			return salary.CalculationResponse{}, err
		}

		groupPayments := decimal.Zero
		paidCount := 0
		for _, studentID := range studentIDs {
			paid, err := s.paymentRepo.TotalPaid(ctx, studentID, g.ID, year, month)
			if err != nil {
				return salary.CalculationResponse{}, err
			}
			if paid.IsPositive() {
				paidCount++
			}
			groupPayments = groupPayments.Add(paid)
		}

		// Only students with a payment in the period count. A student
		// paying in two of the teacher's groups counts once per group.
		totalStudents += paidCount
		totalPayments = totalPayments.Add(groupPayments)

		groupInfos = append(groupInfos, salary.GroupSalaryInfo{
			GroupID:          g.ID,
			GroupName:        g.Name,
			PaidStudentCount: paidCount,
			GroupPayments:    groupPayments,
			TotalStudents:    len(studentIDs),
			GroupPrice:       g.Price,
		})
	}

	paymentBased, total := salary.ApplyPolicy(t.SalaryType, t.BaseSalary, t.PaymentPercentage, totalPayments)

	alreadyPaid, err := s.salaryRepo.SumByTeacherAndPeriod(ctx, t.ID, year, month)
	if err != nil {
		return salary.CalculationResponse{}, err
	}

	resp := salary.CalculationResponse{
		TeacherID:            t.ID,
		TeacherName:          t.FullName(),
		Year:                 year,
		Month:                month,
		BaseSalary:           t.BaseSalary,
		PaymentBasedSalary:   paymentBased,
		TotalSalary:          total,
		TotalStudentPayments: totalPayments,
		TotalStudents:        totalStudents,
		AlreadyPaid:          alreadyPaid,
		RemainingAmount:      salary.RemainingAfter(total, alreadyPaid),
		BranchID:             t.BranchID,
		Groups:               groupInfos,
	}

	if b, err := s.branchRepo.GetByID(ctx, t.BranchID); err == nil {
		resp.BranchName = b.Name
	}

	return resp, nil
}

// Disburse appends a payout row to the ledger.
func (s *SalaryServiceImpl) Disburse(ctx context.Context, caller auth.Caller, req salary.CreateSalaryPaymentRequest) (salary.SalaryPaymentResponse, error) {
	return s.appendPayment(ctx, caller, req)
}

// Subtract records a manual deduction. It shares the append path with
// Disburse: the row raises the period's paid total exactly like a payout,
// which keeps the ledger append-only.
func (s *SalaryServiceImpl) Subtract(ctx context.Context, caller auth.Caller, req salary.CreateSalaryPaymentRequest) (salary.SalaryPaymentResponse, error) {
	return s.appendPayment(ctx, caller, req)
}

func (s *SalaryServiceImpl) appendPayment(ctx context.Context, caller auth.Caller, req salary.CreateSalaryPaymentRequest) (salary.SalaryPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryPaymentResponse{}, err
	}
	if err := s.guard.Authorize(caller, req.BranchID); err != nil {
		return salary.SalaryPaymentResponse{}, err
	}

	t, err := s.teacherRepo.GetByID(ctx, req.TeacherID)
	if err != nil {
		return salary.SalaryPaymentResponse{}, err
	}
	if t.BranchID != req.BranchID {
		return salary.SalaryPaymentResponse{}, salary.ErrTeacherBranchMismatch
	}

	created, err := s.salaryRepo.Create(ctx, salary.SalaryPayment{
		TeacherID:   req.TeacherID,
		Year:        req.Year,
		Month:       req.Month,
		Amount:      req.Amount,
		Description: req.Description,
		BranchID:    req.BranchID,
	})
	if err != nil {
		return salary.SalaryPaymentResponse{}, err
	}

	return s.toSalaryPaymentResponse(ctx, created), nil
}

func (s *SalaryServiceImpl) DeletePayment(ctx context.Context, caller auth.Caller, id string) error {
	p, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guard.Authorize(caller, p.BranchID); err != nil {
		return err
	}

	return s.salaryRepo.Delete(ctx, id)
}

func (s *SalaryServiceImpl) ListByTeacher(ctx context.Context, caller auth.Caller, teacherID string) ([]salary.SalaryPaymentResponse, error) {
	t, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(caller, t.BranchID); err != nil {
		return nil, err
	}

	payments, err := s.salaryRepo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	return s.toSalaryPaymentResponses(ctx, payments), nil
}

func (s *SalaryServiceImpl) ListByTeacherAndPeriod(ctx context.Context, caller auth.Caller, teacherID string, year, month int) ([]salary.SalaryPaymentResponse, error) {
	t, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(caller, t.BranchID); err != nil {
		return nil, err
	}

	payments, err := s.salaryRepo.ListByTeacherAndPeriod(ctx, teacherID, year, month)
	if err != nil {
		return nil, err
	}

	return s.toSalaryPaymentResponses(ctx, payments), nil
}

func (s *SalaryServiceImpl) ListByBranch(ctx context.Context, caller auth.Caller, branchID string) ([]salary.SalaryPaymentResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}

	payments, err := s.salaryRepo.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	return s.toSalaryPaymentResponses(ctx, payments), nil
}

// History pairs a fresh calculation with the ledger totals for every period
// that has at least one disbursement, newest first.
func (s *SalaryServiceImpl) History(ctx context.Context, caller auth.Caller, teacherID string) ([]salary.HistoryEntry, error) {
	t, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(caller, t.BranchID); err != nil {
		return nil, err
	}

	periods, err := s.salaryRepo.DistinctPeriodsByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	entries := make([]salary.HistoryEntry, 0, len(periods))
	for _, period := range periods {
		calc, err := s.calculate(ctx, t, period.Year, period.Month)
		if err != nil {
			return nil, err
		}

		totalPaid, err := s.salaryRepo.SumByTeacherAndPeriod(ctx, teacherID, period.Year, period.Month)
		if err != nil {
			return nil, err
		}
		count, err := s.salaryRepo.CountByTeacherAndPeriod(ctx, teacherID, period.Year, period.Month)
		if err != nil {
			return nil, err
		}
		lastDate, err := s.salaryRepo.LastPaymentDate(ctx, teacherID, period.Year, period.Month)
		if err != nil {
			return nil, err
		}

		entry := salary.HistoryEntry{
			TeacherID:       teacherID,
			TeacherName:     t.FullName(),
			Year:            period.Year,
			Month:           period.Month,
			TotalSalary:     calc.TotalSalary,
			TotalPaid:       totalPaid,
			RemainingAmount: salary.RemainingAfter(calc.TotalSalary, totalPaid),
			FullyPaid:       totalPaid.GreaterThanOrEqual(calc.TotalSalary),
			PaymentCount:    count,
		}
		if lastDate != nil {
			formatted := lastDate.Format(time.RFC3339)
			entry.LastPaymentDate = &formatted
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *SalaryServiceImpl) toSalaryPaymentResponse(ctx context.Context, p salary.SalaryPayment) salary.SalaryPaymentResponse {
	resp := salary.SalaryPaymentResponse{
		ID:          p.ID,
		TeacherID:   p.TeacherID,
		Year:        p.Year,
		Month:       p.Month,
		Amount:      p.Amount,
		Description: p.Description,
		BranchID:    p.BranchID,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}

	if t, err := s.teacherRepo.GetByID(ctx, p.TeacherID); err == nil {
		resp.TeacherName = t.FullName()
	}
	if b, err := s.branchRepo.GetByID(ctx, p.BranchID); err == nil {
		resp.BranchName = b.Name
	}

	return resp
}

func (s *SalaryServiceImpl) toSalaryPaymentResponses(ctx context.Context, payments []salary.SalaryPayment) []salary.SalaryPaymentResponse {
	responses := make([]salary.SalaryPaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, s.toSalaryPaymentResponse(ctx, p))
	}
	return responses
}
