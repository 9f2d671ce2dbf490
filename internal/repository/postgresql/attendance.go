package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/educenter/educenter-backend-go/internal/domain/attendance"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, student_id, group_id, date, status, note, branch_id, created_at, updated_at`

// Upsert implements attendance.AttendanceRepository. Marking the same
// (student, group, date) again overwrites status and note.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (student_id, group_id, date, status, note, branch_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (student_id, group_id, date)
		DO UPDATE SET status = EXCLUDED.status, note = EXCLUDED.note, updated_at = NOW()
		RETURNING ` + attendanceColumns

	var saved attendance.Attendance
	err := q.QueryRow(ctx, query,
		a.StudentID, a.GroupID, a.Date, a.Status, a.Note, a.BranchID,
	).Scan(
		&saved.ID, &saved.StudentID, &saved.GroupID, &saved.Date, &saved.Status,
		&saved.Note, &saved.BranchID, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return saved, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.StudentID, &a.GroupID, &a.Date, &a.Status,
		&a.Note, &a.BranchID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return a, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByGroupAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByGroupAndDate(ctx context.Context, groupID string, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE group_id = $1 AND date = $2
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, groupID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendances(rows)
}

// ListByStudent implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByStudent(ctx context.Context, studentID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE student_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendances(rows)
}

// MonthlySummary implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) MonthlySummary(ctx context.Context, studentID, groupID string, year, month int) (attendance.StudentMonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = $5),
			COUNT(*) FILTER (WHERE status = $6)
		FROM attendances
		WHERE student_id = $1 AND group_id = $2
			AND EXTRACT(YEAR FROM date) = $3 AND EXTRACT(MONTH FROM date) = $4
	`

	summary := attendance.StudentMonthlySummary{
		StudentID: studentID,
		GroupID:   groupID,
		Year:      year,
		Month:     month,
	}
	err := q.QueryRow(ctx, query, studentID, groupID, year, month, attendance.StatusPresent, attendance.StatusAbsent).
		Scan(&summary.PresentCount, &summary.AbsentCount)
	if err != nil {
		return attendance.StudentMonthlySummary{}, fmt.Errorf("failed to build attendance summary: %w", err)
	}

	return summary, nil
}

func scanAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID, &a.StudentID, &a.GroupID, &a.Date, &a.Status,
			&a.Note, &a.BranchID, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		attendances = append(attendances, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return attendances, nil
}
