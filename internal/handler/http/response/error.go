package response

import (
	"errors"
	"net/http"

	"github.com/educenter/educenter-backend-go/internal/domain/attendance"
	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/domain/branch"
	"github.com/educenter/educenter-backend-go/internal/domain/expense"
	"github.com/educenter/educenter-backend-go/internal/domain/group"
	"github.com/educenter/educenter-backend-go/internal/domain/payment"
	"github.com/educenter/educenter-backend-go/internal/domain/salary"
	"github.com/educenter/educenter-backend-go/internal/domain/student"
	"github.com/educenter/educenter-backend-go/internal/domain/teacher"
	"github.com/educenter/educenter-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth and access errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrBranchAccessDenied):
		Forbidden(w, "Access to this branch is denied")
	case errors.Is(err, auth.ErrSuperAdminRequired):
		Forbidden(w, "Super admin privileges required")
	case errors.Is(err, auth.ErrBranchNotAssigned):
		Forbidden(w, "Admin account has no branch assigned")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, auth.ErrCannotDeleteSelf):
		Conflict(w, "Users cannot delete their own account")

	// Branch errors
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, branch.ErrBranchHasDependents):
		Conflict(w, "Branch still has users, students or teachers assigned")

	// Teacher, student and group errors
	case errors.Is(err, teacher.ErrTeacherNotFound):
		NotFound(w, "Teacher not found")
	case errors.Is(err, student.ErrStudentNotFound):
		NotFound(w, "Student not found")
	case errors.Is(err, group.ErrGroupNotFound):
		NotFound(w, "Group not found")
	case errors.Is(err, group.ErrStudentNotEnrolled):
		BadRequest(w, "Student is not enrolled in this group", nil)
	case errors.Is(err, group.ErrStudentAlreadyInGroup):
		Conflict(w, "Student is already enrolled in this group")
	case errors.Is(err, group.ErrTeacherBranchMismatch):
		BadRequest(w, "Teacher belongs to a different branch", nil)
	case errors.Is(err, group.ErrStudentBranchMismatch):
		BadRequest(w, "Student belongs to a different branch", nil)

	// Ledger errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, payment.ErrBranchMismatch):
		BadRequest(w, "Student, group and payment must belong to the same branch", nil)
	case errors.Is(err, salary.ErrSalaryPaymentNotFound):
		NotFound(w, "Salary payment not found")
	case errors.Is(err, salary.ErrTeacherBranchMismatch):
		BadRequest(w, "Teacher belongs to a different branch", nil)
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrGroupBranchMismatch):
		BadRequest(w, "Group belongs to a different branch", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
