package payment

import (
	"context"
	"time"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/domain/group"
	"github.com/educenter/educenter-backend-go/internal/domain/payment"
	"github.com/educenter/educenter-backend-go/internal/domain/student"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/educenter/educenter-backend-go/internal/pkg/validator"
	"github.com/educenter/educenter-backend-go/internal/repository/postgresql"
	"github.com/educenter/educenter-backend-go/internal/service/access"
)

type PaymentServiceImpl struct {
	db          *database.DB
	paymentRepo payment.PaymentRepository
	studentRepo student.StudentRepository
	groupRepo   group.GroupRepository
	guard       *access.Guard
}

func NewPaymentService(
	db *database.DB,
	paymentRepo payment.PaymentRepository,
	studentRepo student.StudentRepository,
	groupRepo group.GroupRepository,
	guard *access.Guard,
) payment.PaymentService {
	return &PaymentServiceImpl{
		db:          db,
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
		groupRepo:   groupRepo,
		guard:       guard,
	}
}

// Record credits an amount toward a student's due for one group and billing
// period. The billing period comes from the request, so back-payments and
// advance payments are ordinary writes.
func (s *PaymentServiceImpl) Record(ctx context.Context, caller auth.Caller, req payment.CreatePaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}
	if err := s.guard.Authorize(caller, req.BranchID); err != nil {
		return payment.PaymentResponse{}, err
	}

	st, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	g, err := s.groupRepo.GetByID(ctx, req.GroupID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	if st.BranchID != req.BranchID || g.BranchID != req.BranchID {
		return payment.PaymentResponse{}, payment.ErrBranchMismatch
	}

	enrolled, err := s.groupRepo.IsStudentEnrolled(ctx, req.GroupID, req.StudentID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	if !enrolled {
		return payment.PaymentResponse{}, group.ErrStudentNotEnrolled
	}

	created, err := s.paymentRepo.Create(ctx, payment.Payment{
		StudentID:    req.StudentID,
		GroupID:      req.GroupID,
		Amount:       req.Amount,
		Description:  req.Description,
		Category:     payment.Category(req.Category),
		BranchID:     req.BranchID,
		PaymentYear:  req.PaymentYear,
		PaymentMonth: req.PaymentMonth,
	})
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	return s.toPaymentResponse(ctx, created), nil
}

func (s *PaymentServiceImpl) GetByID(ctx context.Context, caller auth.Caller, id string) (payment.PaymentResponse, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	if err := s.guard.Authorize(caller, p.BranchID); err != nil {
		return payment.PaymentResponse{}, err
	}

	return s.toPaymentResponse(ctx, p), nil
}

// AmendAmount corrects a recorded payment. The read and write run in one
// transaction so concurrent amendments cannot interleave.
func (s *PaymentServiceImpl) AmendAmount(ctx context.Context, caller auth.Caller, req payment.UpdatePaymentAmountRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	var amended payment.Payment
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		p, err := s.paymentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if err := s.guard.Authorize(caller, p.BranchID); err != nil {
			return err
		}

		if err := s.paymentRepo.UpdateAmount(txCtx, req.ID, req.Amount); err != nil {
			return err
		}

		amended, err = s.paymentRepo.GetByID(txCtx, req.ID)
		return err
	})
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	return s.toPaymentResponse(ctx, amended), nil
}

func (s *PaymentServiceImpl) Delete(ctx context.Context, caller auth.Caller, id string) error {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guard.Authorize(caller, p.BranchID); err != nil {
		return err
	}

	return s.paymentRepo.Delete(ctx, id)
}

func (s *PaymentServiceImpl) ListByBranch(ctx context.Context, caller auth.Caller, branchID string) ([]payment.PaymentResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	return s.toPaymentResponses(ctx, payments), nil
}

func (s *PaymentServiceImpl) ListByBranchAndCategory(ctx context.Context, caller auth.Caller, branchID string, category payment.Category) ([]payment.PaymentResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByBranchAndCategory(ctx, branchID, category)
	if err != nil {
		return nil, err
	}

	return s.toPaymentResponses(ctx, payments), nil
}

func (s *PaymentServiceImpl) ListByBranchCategoryAndPeriod(ctx context.Context, caller auth.Caller, branchID string, category payment.Category, year, month int) ([]payment.PaymentResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByBranchCategoryAndPeriod(ctx, branchID, category, year, month)
	if err != nil {
		return nil, err
	}

	return s.toPaymentResponses(ctx, payments), nil
}

func (s *PaymentServiceImpl) ListByBranchAndPeriod(ctx context.Context, caller auth.Caller, branchID string, year, month int) ([]payment.PaymentResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByBranchAndPeriod(ctx, branchID, year, month)
	if err != nil {
		return nil, err
	}

	return s.toPaymentResponses(ctx, payments), nil
}

func (s *PaymentServiceImpl) ListByBranchAndDateRange(ctx context.Context, caller auth.Caller, branchID, startDate, endDate string) ([]payment.PaymentResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}

	var errs validator.ValidationErrors
	start, startOK := validator.IsValidDate(startDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(endDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	payments, err := s.paymentRepo.ListByBranchAndCreatedBetween(ctx, branchID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return s.toPaymentResponses(ctx, payments), nil
}

func (s *PaymentServiceImpl) SearchByStudentName(ctx context.Context, caller auth.Caller, branchID, name string) ([]payment.PaymentResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}

	students, err := s.studentRepo.SearchByName(ctx, branchID, name)
	if err != nil {
		return nil, err
	}

	var responses []payment.PaymentResponse
	for _, st := range students {
		payments, err := s.paymentRepo.ListByStudent(ctx, st.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, s.toPaymentResponses(ctx, payments)...)
	}

	return responses, nil
}

func (s *PaymentServiceImpl) RecentByBranch(ctx context.Context, caller auth.Caller, branchID string, limit int) ([]payment.PaymentResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	payments, err := s.paymentRepo.ListRecentByBranch(ctx, branchID, limit)
	if err != nil {
		return nil, err
	}

	return s.toPaymentResponses(ctx, payments), nil
}

func (s *PaymentServiceImpl) ListByStudent(ctx context.Context, caller auth.Caller, studentID string) ([]payment.PaymentResponse, error) {
	st, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(caller, st.BranchID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return s.toPaymentResponses(ctx, payments), nil
}

// StudentInfo reports one student's standing in one group. When year or
// month is nil the paid total covers all billing periods.
func (s *PaymentServiceImpl) StudentInfo(ctx context.Context, caller auth.Caller, studentID, groupID string, year, month *int) (payment.StudentPaymentInfo, error) {
	st, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return payment.StudentPaymentInfo{}, err
	}
	if err := s.guard.Authorize(caller, st.BranchID); err != nil {
		return payment.StudentPaymentInfo{}, err
	}

	g, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return payment.StudentPaymentInfo{}, err
	}

	info := payment.StudentPaymentInfo{
		StudentID: studentID,
		GroupID:   groupID,
		Due:       g.Price,
	}

	if year != nil && month != nil {
		info.PaymentYear = *year
		info.PaymentMonth = *month
		info.TotalPaid, err = s.paymentRepo.TotalPaid(ctx, studentID, groupID, *year, *month)
	} else {
		now := time.Now()
		info.PaymentYear = now.Year()
		info.PaymentMonth = int(now.Month())
		info.TotalPaid, err = s.paymentRepo.TotalPaidAllTime(ctx, studentID, groupID)
	}
	if err != nil {
		return payment.StudentPaymentInfo{}, err
	}

	info.Remaining = payment.Remaining(g.Price, info.TotalPaid)
	info.Status = string(payment.Status(info.TotalPaid, g.Price))

	return info, nil
}

// UnpaidStudents lists every owed (student, group) entry for one billing
// period. A student enrolled in several groups with balances due appears
// once per owed group.
func (s *PaymentServiceImpl) UnpaidStudents(ctx context.Context, caller auth.Caller, branchID string, year, month int) ([]payment.UnpaidStudentResponse, error) {
	if err := s.guard.Authorize(caller, branchID); err != nil {
		return nil, err
	}

	groups, err := s.groupRepo.GetActiveByBranchID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	var unpaid []payment.UnpaidStudentResponse
	for _, g := range groups {
		if !g.Price.IsPositive() {
			continue
		}

		studentIDs, err := s.groupRepo.GetStudentIDs(ctx, g.ID)
		if err != nil {
			return nil, err
		}

		for _, studentID := range studentIDs {
			paid, err := s.paymentRepo.TotalPaid(ctx, studentID, g.ID, year, month)
			if err != nil {
				return nil, err
			}
			if paid.GreaterThanOrEqual(g.Price) {
				continue
			}

			st, err := s.studentRepo.GetByID(ctx, studentID)
			if err != nil {
				return nil, err
			}
			if !st.Active {
				continue
			}

			unpaid = append(unpaid, payment.UnpaidStudentResponse{
				StudentID:       st.ID,
				FirstName:       st.FirstName,
				LastName:        st.LastName,
				Phone:           st.Phone,
				ParentPhone:     st.ParentPhone,
				RemainingAmount: payment.Remaining(g.Price, paid),
				GroupID:         g.ID,
				GroupName:       g.Name,
			})
		}
	}

	return unpaid, nil
}

func (s *PaymentServiceImpl) toPaymentResponse(ctx context.Context, p payment.Payment) payment.PaymentResponse {
	resp := payment.PaymentResponse{
		ID:           p.ID,
		StudentID:    p.StudentID,
		GroupID:      p.GroupID,
		Amount:       p.Amount,
		Description:  p.Description,
		Category:     string(p.Category),
		BranchID:     p.BranchID,
		PaymentYear:  p.PaymentYear,
		PaymentMonth: p.PaymentMonth,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}

	if st, err := s.studentRepo.GetByID(ctx, p.StudentID); err == nil {
		resp.StudentName = st.FullName()
	}
	if g, err := s.groupRepo.GetByID(ctx, p.GroupID); err == nil {
		resp.GroupName = g.Name
	}

	return resp
}

func (s *PaymentServiceImpl) toPaymentResponses(ctx context.Context, payments []payment.Payment) []payment.PaymentResponse {
	responses := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, s.toPaymentResponse(ctx, p))
	}
	return responses
}
