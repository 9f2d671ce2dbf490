package group

import (
	"context"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/domain/student"
)

type GroupService interface {
	Create(ctx context.Context, caller auth.Caller, req CreateGroupRequest) (GroupResponse, error)
	GetByID(ctx context.Context, caller auth.Caller, id string) (GroupResponse, error)
	ListByBranch(ctx context.Context, caller auth.Caller, branchID string) ([]GroupResponse, error)
	ListByTeacher(ctx context.Context, caller auth.Caller, teacherID string) ([]GroupResponse, error)
	ListByStudent(ctx context.Context, caller auth.Caller, studentID string) ([]GroupResponse, error)
	Update(ctx context.Context, caller auth.Caller, req UpdateGroupRequest) (GroupResponse, error)
	Delete(ctx context.Context, caller auth.Caller, id string) error

	EnrollStudent(ctx context.Context, caller auth.Caller, groupID, studentID string) error
	UnenrollStudent(ctx context.Context, caller auth.Caller, groupID, studentID string) error
	ListStudents(ctx context.Context, caller auth.Caller, groupID string) ([]student.StudentResponse, error)
}
