package mapper

import (
	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
)

type ApprovalMapper struct{}

func NewApprovalMapper() *ApprovalMapper {
	return &ApprovalMapper{}
}

func (m *ApprovalMapper) ToResponse(a *entity.Approval) dto.ApprovalResponse {
	return dto.ApprovalResponse{
		Id:          a.Id,
		Type:        string(a.Type),
		Title:       a.Title,
		Description: a.Description,
		RequestedBy: a.RequestedBy,
		RequestedAt: a.RequestedAt,
		Status:      string(a.Status),
		Priority:    string(a.Priority),
		RelatedFile: a.RelatedFile,
		DecidedBy:   a.DecidedBy,
		DecidedAt:   a.DecidedAt,
	}
}
