package payment

import (
	"context"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
)

type PaymentService interface {
	Record(ctx context.Context, caller auth.Caller, req CreatePaymentRequest) (PaymentResponse, error)
	GetByID(ctx context.Context, caller auth.Caller, id string) (PaymentResponse, error)
	AmendAmount(ctx context.Context, caller auth.Caller, req UpdatePaymentAmountRequest) (PaymentResponse, error)
	Delete(ctx context.Context, caller auth.Caller, id string) error

	ListByBranch(ctx context.Context, caller auth.Caller, branchID string) ([]PaymentResponse, error)
	ListByBranchAndCategory(ctx context.Context, caller auth.Caller, branchID string, category Category) ([]PaymentResponse, error)
	ListByBranchCategoryAndPeriod(ctx context.Context, caller auth.Caller, branchID string, category Category, year, month int) ([]PaymentResponse, error)
	ListByBranchAndPeriod(ctx context.Context, caller auth.Caller, branchID string, year, month int) ([]PaymentResponse, error)
	// ListByBranchAndDateRange filters on createdAt; both dates inclusive.
	ListByBranchAndDateRange(ctx context.Context, caller auth.Caller, branchID, startDate, endDate string) ([]PaymentResponse, error)
	ListByStudent(ctx context.Context, caller auth.Caller, studentID string) ([]PaymentResponse, error)
	SearchByStudentName(ctx context.Context, caller auth.Caller, branchID, name string) ([]PaymentResponse, error)
	RecentByBranch(ctx context.Context, caller auth.Caller, branchID string, limit int) ([]PaymentResponse, error)

	// StudentInfo reports one student's standing in one group. A nil year or
	// month falls back to all-time totals.
	StudentInfo(ctx context.Context, caller auth.Caller, studentID, groupID string, year, month *int) (StudentPaymentInfo, error)
	// UnpaidStudents lists every owed (student, group) entry for a billing
	// period; a student owing in several groups appears once per group.
	UnpaidStudents(ctx context.Context, caller auth.Caller, branchID string, year, month int) ([]UnpaidStudentResponse, error)
}
