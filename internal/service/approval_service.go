package service

import (
	"context"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/mapper"
	"docintel-be/internal/pkg/logger"
	"docintel-be/pkg/store"
)

type IApprovalService interface {
	List(ctx context.Context, req *dto.ListApprovalsRequest) (*dto.ListApprovalsResponse, error)
	Approve(ctx context.Context, id string, actor string) (*dto.ApprovalResponse, error)
	Reject(ctx context.Context, id string, actor string) (*dto.ApprovalResponse, error)
}

type approvalService struct {
	workspace      *store.WorkspaceStore
	approvalMapper *mapper.ApprovalMapper
	logger         logger.ILogger
}

func NewApprovalService(workspace *store.WorkspaceStore, log logger.ILogger) IApprovalService {
	return &approvalService{
		workspace:      workspace,
		approvalMapper: mapper.NewApprovalMapper(),
		logger:         log,
	}
}

// List returns the approvals of one tab. Counts always cover every status.
func (c *approvalService) List(ctx context.Context, req *dto.ListApprovalsRequest) (*dto.ListApprovalsResponse, error) {
	all := c.workspace.Approvals("")
	counts := map[string]int{
		string(entity.ApprovalStatusPending):  0,
		string(entity.ApprovalStatusApproved): 0,
		string(entity.ApprovalStatusRejected): 0,
	}

	status := entity.ApprovalStatus(req.Status)
	res := &dto.ListApprovalsResponse{
		Approvals: make([]dto.ApprovalResponse, 0),
		Counts:    counts,
	}
	for _, a := range all {
		counts[string(a.Status)]++
		if status == "" || a.Status == status {
			res.Approvals = append(res.Approvals, c.approvalMapper.ToResponse(a))
		}
	}
	return res, nil
}

func (c *approvalService) Approve(ctx context.Context, id string, actor string) (*dto.ApprovalResponse, error) {
	return c.decide(id, entity.ApprovalStatusApproved, actor)
}

func (c *approvalService) Reject(ctx context.Context, id string, actor string) (*dto.ApprovalResponse, error) {
	return c.decide(id, entity.ApprovalStatusRejected, actor)
}

func (c *approvalService) decide(id string, decision entity.ApprovalStatus, actor string) (*dto.ApprovalResponse, error) {
	approval, err := c.workspace.DecideApproval(id, decision, actor)
	if err != nil {
		c.logger.Warn("APPROVAL", "Decision rejected", map[string]interface{}{
			"approval_id": id,
			"decision":    string(decision),
			"error":       err.Error(),
		})
		return nil, err
	}
	res := c.approvalMapper.ToResponse(approval)
	return &res, nil
}
