package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/handler/http/response"
	"github.com/educenter/educenter-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)

	CreateUser(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{authService: authService, jwtService: jwtService}
}

func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.ExpiresAt))
	response.Success(w, result)
}

func (h *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	var req auth.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		// Fall back to the cookie set at login.
		cookie, cookieErr := r.Cookie("refresh_token")
		if cookieErr != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		req.RefreshToken = cookie.Value
	}

	result, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.ExpiresAt))
	response.Success(w, result)
}

func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	cookie := h.jwtService.RefreshTokenCookie("", 0)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
	response.SuccessWithMessage(w, "Logged out", nil)
}

func (h *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	user, err := h.authService.Me(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, user)
}

func (h *AuthHandlerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req auth.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	user, err := h.authService.CreateUser(r.Context(), caller, req)
	if err != nil {
		slog.Error("Failed to create user", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", user)
}

func (h *AuthHandlerImpl) GetUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	user, err := h.authService.GetUser(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, user)
}

func (h *AuthHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var users []auth.UserResponse
	if branchID := r.URL.Query().Get("branch_id"); branchID != "" {
		users, err = h.authService.ListUsersByBranch(r.Context(), caller, branchID)
	} else {
		users, err = h.authService.ListUsers(r.Context(), caller)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

func (h *AuthHandlerImpl) UpdateUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req auth.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	user, err := h.authService.UpdateUser(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated successfully", user)
}

func (h *AuthHandlerImpl) DeleteUser(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.authService.DeleteUser(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted successfully", nil)
}
