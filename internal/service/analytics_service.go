package service

import (
	"context"

	"docintel-be/internal/dto"
	"docintel-be/pkg/store"
	"docintel-be/pkg/utils"
)

var revenueCards = []dto.RevenueCard{
	{Title: "Total Revenue", Value: "$5,795.00", Change: "+49% From last month", Positive: true},
	{Title: "Total Costs", Value: "$3,569.00", Change: "-25% From last month", Positive: false},
	{Title: "Total Savings", Value: "$2,765.00", Change: "+16% From last month", Positive: true},
}

type IAnalyticsService interface {
	Snapshot(ctx context.Context) (*dto.AnalyticsResponse, error)
}

type analyticsService struct {
	workspace *store.WorkspaceStore
}

func NewAnalyticsService(workspace *store.WorkspaceStore) IAnalyticsService {
	return &analyticsService{workspace: workspace}
}

func (c *analyticsService) Snapshot(ctx context.Context) (*dto.AnalyticsResponse, error) {
	a := c.workspace.Analytics()

	monthly := make([]dto.MonthlyUsageResponse, 0, len(a.MonthlyData))
	for _, m := range a.MonthlyData {
		monthly = append(monthly, dto.MonthlyUsageResponse{
			Month:   m.Month,
			Uploads: m.Uploads,
			Chats:   m.Chats,
			Storage: m.Storage,
		})
	}

	top := make([]dto.TopFileResponse, 0, len(a.TopFiles))
	for _, f := range a.TopFiles {
		top = append(top, dto.TopFileResponse{Name: f.Name, Views: f.Views, Chats: f.Chats})
	}

	return &dto.AnalyticsResponse{
		TotalFiles:    a.TotalFiles,
		TotalChats:    a.TotalChats,
		TotalUploads:  a.TotalUploads,
		TotalStorage:  a.TotalStorage,
		StorageLabel:  utils.FormatFileSize(a.TotalStorage),
		MonthlyData:   monthly,
		TopFiles:      top,
		AiEngineUsage: engineShares(a.AiEngineUsage),
		Revenue:       append([]dto.RevenueCard(nil), revenueCards...),
	}, nil
}
