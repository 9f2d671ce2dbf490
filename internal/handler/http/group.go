package http

import (
	"encoding/json"
	"net/http"

	"github.com/educenter/educenter-backend-go/internal/domain/group"
	"github.com/educenter/educenter-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type GroupHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	EnrollStudent(w http.ResponseWriter, r *http.Request)
	UnenrollStudent(w http.ResponseWriter, r *http.Request)
	ListStudents(w http.ResponseWriter, r *http.Request)
}

type GroupHandlerImpl struct {
	groupService group.GroupService
}

func NewGroupHandler(groupService group.GroupService) GroupHandler {
	return &GroupHandlerImpl{groupService: groupService}
}

func (h *GroupHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req group.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.groupService.Create(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Group created successfully", created)
}

func (h *GroupHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	g, err := h.groupService.GetByID(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, g)
}

// List filters by student_id, teacher_id or branch_id, whichever is present.
func (h *GroupHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var groups []group.GroupResponse
	switch {
	case r.URL.Query().Get("student_id") != "":
		groups, err = h.groupService.ListByStudent(r.Context(), caller, r.URL.Query().Get("student_id"))
	case r.URL.Query().Get("teacher_id") != "":
		groups, err = h.groupService.ListByTeacher(r.Context(), caller, r.URL.Query().Get("teacher_id"))
	case r.URL.Query().Get("branch_id") != "":
		groups, err = h.groupService.ListByBranch(r.Context(), caller, r.URL.Query().Get("branch_id"))
	default:
		response.BadRequest(w, "branch_id, teacher_id or student_id query parameter is required", nil)
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, groups)
}

func (h *GroupHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req group.UpdateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.groupService.Update(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Group updated successfully", updated)
}

func (h *GroupHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.groupService.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Group deleted successfully", nil)
}

func (h *GroupHandlerImpl) EnrollStudent(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	groupID := chi.URLParam(r, "id")
	studentID := chi.URLParam(r, "studentID")

	if err := h.groupService.EnrollStudent(r.Context(), caller, groupID, studentID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Student enrolled successfully", nil)
}

func (h *GroupHandlerImpl) UnenrollStudent(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	groupID := chi.URLParam(r, "id")
	studentID := chi.URLParam(r, "studentID")

	if err := h.groupService.UnenrollStudent(r.Context(), caller, groupID, studentID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Student unenrolled successfully", nil)
}

func (h *GroupHandlerImpl) ListStudents(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	students, err := h.groupService.ListStudents(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, students)
}
