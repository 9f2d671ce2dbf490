package attendance

import (
	"context"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
)

type AttendanceService interface {
	Mark(ctx context.Context, caller auth.Caller, req MarkAttendanceRequest) (AttendanceResponse, error)
	MarkBulk(ctx context.Context, caller auth.Caller, req BulkAttendanceRequest) (BulkAttendanceResponse, error)
	Delete(ctx context.Context, caller auth.Caller, id string) error
	ListByGroupAndDate(ctx context.Context, caller auth.Caller, groupID, date string) ([]AttendanceResponse, error)
	ListByStudent(ctx context.Context, caller auth.Caller, studentID string) ([]AttendanceResponse, error)
	MonthlySummary(ctx context.Context, caller auth.Caller, studentID, groupID string, year, month int) (StudentMonthlySummary, error)
}
