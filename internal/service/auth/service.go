package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/educenter/educenter-backend-go/internal/domain/auth"
	"github.com/educenter/educenter-backend-go/internal/domain/branch"
	"github.com/educenter/educenter-backend-go/internal/pkg/database"
	"github.com/educenter/educenter-backend-go/internal/pkg/jwt"
	"github.com/educenter/educenter-backend-go/internal/service/access"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db         *database.DB
	userRepo   auth.UserRepository
	branchRepo branch.BranchRepository
	jwtService jwt.Service
	guard      *access.Guard
}

func NewAuthService(
	db *database.DB,
	userRepo auth.UserRepository,
	branchRepo branch.BranchRepository,
	jwtService jwt.Service,
	guard *access.Guard,
) auth.AuthService {
	return &AuthServiceImpl{
		db:         db,
		userRepo:   userRepo,
		branchRepo: branchRepo,
		jwtService: jwtService,
		guard:      guard,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	userID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidToken
		}
		return auth.LoginResponse{}, err
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, user auth.User) (auth.LoginResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(user.ID, user.Role, user.BranchID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	userResp, err := s.toUserResponse(ctx, user)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		User:         userResp,
	}, nil
}

func (s *AuthServiceImpl) Me(ctx context.Context, caller auth.Caller) (auth.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return s.toUserResponse(ctx, user)
}

func (s *AuthServiceImpl) CreateUser(ctx context.Context, caller auth.Caller, req auth.CreateUserRequest) (auth.UserResponse, error) {
	if err := s.guard.RequireSuperAdmin(caller); err != nil {
		return auth.UserResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	if req.BranchID != nil {
		if _, err := s.branchRepo.GetByID(ctx, *req.BranchID); err != nil {
			return auth.UserResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, auth.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         auth.Role(req.Role),
		BranchID:     req.BranchID,
	})
	if err != nil {
		return auth.UserResponse{}, err
	}

	return s.toUserResponse(ctx, created)
}

func (s *AuthServiceImpl) GetUser(ctx context.Context, caller auth.Caller, id string) (auth.UserResponse, error) {
	if err := s.guard.RequireSuperAdmin(caller); err != nil {
		return auth.UserResponse{}, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return s.toUserResponse(ctx, user)
}

func (s *AuthServiceImpl) ListUsers(ctx context.Context, caller auth.Caller) ([]auth.UserResponse, error) {
	if err := s.guard.RequireSuperAdmin(caller); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]auth.UserResponse, 0, len(users))
	for _, user := range users {
		resp, err := s.toUserResponse(ctx, user)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

func (s *AuthServiceImpl) ListUsersByBranch(ctx context.Context, caller auth.Caller, branchID string) ([]auth.UserResponse, error) {
	if err := s.guard.RequireSuperAdmin(caller); err != nil {
		return nil, err
	}
	if _, err := s.branchRepo.GetByID(ctx, branchID); err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListByBranchID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	responses := make([]auth.UserResponse, 0, len(users))
	for _, user := range users {
		resp, err := s.toUserResponse(ctx, user)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

func (s *AuthServiceImpl) UpdateUser(ctx context.Context, caller auth.Caller, req auth.UpdateUserRequest) (auth.UserResponse, error) {
	if err := s.guard.RequireSuperAdmin(caller); err != nil {
		return auth.UserResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	if req.BranchID != nil {
		if _, err := s.branchRepo.GetByID(ctx, *req.BranchID); err != nil {
			return auth.UserResponse{}, err
		}
	}

	var passwordHash *string
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashStr := string(hash)
		passwordHash = &hashStr
	}

	if err := s.userRepo.Update(ctx, req, passwordHash); err != nil {
		return auth.UserResponse{}, err
	}

	user, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return s.toUserResponse(ctx, user)
}

func (s *AuthServiceImpl) DeleteUser(ctx context.Context, caller auth.Caller, id string) error {
	if err := s.guard.RequireSuperAdmin(caller); err != nil {
		return err
	}
	if caller.UserID == id {
		return auth.ErrCannotDeleteSelf
	}

	return s.userRepo.Delete(ctx, id)
}

func (s *AuthServiceImpl) toUserResponse(ctx context.Context, user auth.User) (auth.UserResponse, error) {
	resp := auth.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		BranchID:  user.BranchID,
	}

	if user.BranchID != nil {
		b, err := s.branchRepo.GetByID(ctx, *user.BranchID)
		if err != nil {
			if !errors.Is(err, branch.ErrBranchNotFound) {
				return auth.UserResponse{}, err
			}
		} else {
			resp.BranchName = &b.Name
		}
	}

	return resp, nil
}
