package service

import (
	"context"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/pkg/store"
)

type IAutomationService interface {
	List(ctx context.Context) (*dto.ListAutomationsResponse, error)
}

type automationService struct {
	workspace *store.WorkspaceStore
}

func NewAutomationService(workspace *store.WorkspaceStore) IAutomationService {
	return &automationService{workspace: workspace}
}

func (c *automationService) List(ctx context.Context) (*dto.ListAutomationsResponse, error) {
	res := &dto.ListAutomationsResponse{
		Automations: make([]dto.AutomationResponse, 0),
	}
	for _, a := range c.workspace.Automations() {
		if a.Status == entity.AutomationStatusActive {
			res.ActiveCount++
		}
		res.TotalRuns += a.RunCount
		res.Automations = append(res.Automations, dto.AutomationResponse{
			Id:          a.Id,
			Name:        a.Name,
			Description: a.Description,
			Trigger:     a.Trigger,
			Actions:     append([]string(nil), a.Actions...),
			Status:      string(a.Status),
			LastRun:     a.LastRun,
			RunCount:    a.RunCount,
		})
	}
	return res, nil
}
