package service

import (
	"context"

	"docintel-be/internal/dto"
	"docintel-be/internal/mapper"
	"docintel-be/internal/pkg/logger"
	"docintel-be/pkg/store"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*dto.UserResponse, error)
	State(ctx context.Context) *dto.SessionStateResponse
}

type authService struct {
	sessions   *store.SessionStore
	userMapper *mapper.UserMapper
	logger     logger.ILogger
}

func NewAuthService(sessions *store.SessionStore, log logger.ILogger) IAuthService {
	return &authService{
		sessions:   sessions,
		userMapper: mapper.NewUserMapper(),
		logger:     log,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.sessions.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Warn("AUTH", "Login failed", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("AUTH", "Login succeeded", map[string]interface{}{"user_id": user.Id})
	return &dto.LoginResponse{
		Token: s.sessions.Token(),
		User:  *s.userMapper.ToResponse(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.Logout(ctx); err != nil {
		s.logger.Error("AUTH", "Logout failed to clear token", map[string]interface{}{"error": err.Error()})
		return err
	}
	s.logger.Info("AUTH", "Logged out", nil)
	return nil
}

func (s *authService) Me(ctx context.Context) (*dto.UserResponse, error) {
	user := s.sessions.CurrentUser()
	if user == nil {
		return nil, store.ErrInvalidToken
	}
	return s.userMapper.ToResponse(user), nil
}

func (s *authService) State(ctx context.Context) *dto.SessionStateResponse {
	return &dto.SessionStateResponse{
		State:     string(s.sessions.State()),
		IsLoading: s.sessions.IsLoading(),
		User:      s.userMapper.ToResponse(s.sessions.CurrentUser()),
	}
}
