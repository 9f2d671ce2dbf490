package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert inserts or, when a row for (student, group, date) exists,
	// overwrites its status and note.
	Upsert(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	Delete(ctx context.Context, id string) error
	ListByGroupAndDate(ctx context.Context, groupID string, date time.Time) ([]Attendance, error)
	ListByStudent(ctx context.Context, studentID string) ([]Attendance, error)
	MonthlySummary(ctx context.Context, studentID, groupID string, year, month int) (StudentMonthlySummary, error)
}
