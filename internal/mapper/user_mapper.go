package mapper

import (
	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	permissions := make([]string, len(u.Permissions))
	copy(permissions, u.Permissions)
	return &dto.UserResponse{
		Id:          u.Id,
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
		Title:       u.Title,
		Avatar:      u.AvatarURL,
		LastActive:  u.LastActive,
		CanUseAI:    u.CanUseAI,
		Permissions: permissions,
		JoinedAt:    u.JoinedAt,
		Status:      string(u.Status),
	}
}

func (m *UserMapper) ToResponses(users []*entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *m.ToResponse(u))
	}
	return out
}
