package service

import (
	"context"
	"strings"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/mapper"
	"docintel-be/pkg/store"
	"docintel-be/pkg/utils"
)

const recentDocumentCount = 5

type IDashboardService interface {
	Overview(ctx context.Context, viewer *entity.User) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	workspace      *store.WorkspaceStore
	documentMapper *mapper.DocumentMapper
}

func NewDashboardService(workspace *store.WorkspaceStore) IDashboardService {
	return &dashboardService{
		workspace:      workspace,
		documentMapper: mapper.NewDocumentMapper(),
	}
}

func (c *dashboardService) Overview(ctx context.Context, viewer *entity.User) (*dto.DashboardResponse, error) {
	analytics := c.workspace.Analytics()
	usage := c.workspace.Usage()

	return &dto.DashboardResponse{
		Greeting: greeting(viewer),
		Stats: []dto.StatCard{
			{Title: "Total Files", Value: formatCount(int64(analytics.TotalFiles))},
			{Title: "AI Chats", Value: formatCount(int64(analytics.TotalChats))},
			{Title: "Uploads", Value: formatCount(int64(analytics.TotalUploads))},
			{Title: "Storage Used", Value: utils.FormatFileSize(analytics.TotalStorage)},
		},
		Usage:         usageIndicators(usage),
		RecentFiles:   c.documentMapper.ToResponses(c.workspace.RecentDocuments(recentDocumentCount)),
		EngineUsage:   engineShares(analytics.AiEngineUsage),
		BillingPeriod: string(usage.Period),
	}, nil
}

func greeting(viewer *entity.User) string {
	if viewer == nil {
		return "Welcome back!"
	}
	names := strings.Fields(viewer.Name)
	if len(names) == 0 {
		return "Welcome back!"
	}
	return "Welcome back, " + names[0] + "!"
}

func engineShares(in map[entity.AiEngine]int) map[string]int {
	out := make(map[string]int, len(in))
	for engine, share := range in {
		out[string(engine)] = share
	}
	return out
}
