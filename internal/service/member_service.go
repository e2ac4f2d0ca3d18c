package service

import (
	"context"
	"strings"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/mapper"
	"docintel-be/pkg/store"
)

var memberRoles = []entity.UserRole{
	entity.UserRoleAdmin,
	entity.UserRoleUploader,
	entity.UserRoleApprover,
	entity.UserRoleViewer,
	entity.UserRoleCustom,
}

type IMemberService interface {
	List(ctx context.Context, req *dto.ListMembersRequest) (*dto.ListMembersResponse, error)
}

type memberService struct {
	workspace  *store.WorkspaceStore
	userMapper *mapper.UserMapper
}

func NewMemberService(workspace *store.WorkspaceStore) IMemberService {
	return &memberService{
		workspace:  workspace,
		userMapper: mapper.NewUserMapper(),
	}
}

// List filters the directory by name or email and by role. Role "all" and
// the empty role match everyone. Role stats always cover the whole
// directory.
func (c *memberService) List(ctx context.Context, req *dto.ListMembersRequest) (*dto.ListMembersResponse, error) {
	role := entity.UserRole(req.Role)
	if role == "all" {
		role = ""
	}

	members := c.workspace.MembersMatching(strings.TrimSpace(req.Search), role)
	counts := c.workspace.RoleCounts()

	stats := make([]dto.RoleStat, 0, len(memberRoles))
	for _, r := range memberRoles {
		stats = append(stats, dto.RoleStat{Role: string(r), Count: counts[r]})
	}

	return &dto.ListMembersResponse{
		Members:   c.userMapper.ToResponses(members),
		Total:     len(members),
		RoleStats: stats,
	}, nil
}
