package service

import (
	"context"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/pkg/store"
)

type engineInfo struct {
	id   entity.AiEngine
	name string
	cost string
}

var engineCatalogue = []engineInfo{
	{entity.AiEngineOpenAI, "OpenAI GPT-4", "$0.03/1K tokens"},
	{entity.AiEngineGemini, "Google Gemini Pro", "$0.025/1K tokens"},
	{entity.AiEngineDeepSeek, "DeepSeek", "$0.014/1K tokens"},
	{entity.AiEngineLlama, "LLaMA 3 (Self-hosted)", "Free"},
}

var languages = []dto.LanguageOption{
	{Code: "en", Name: "English"},
	{Code: "ha", Name: "Hausa"},
	{Code: "yo", Name: "Yoruba"},
	{Code: "ig", Name: "Igbo"},
	{Code: "fr", Name: "French"},
}

type ISettingsService interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
}

type settingsService struct {
	workspace *store.WorkspaceStore
}

func NewSettingsService(workspace *store.WorkspaceStore) ISettingsService {
	return &settingsService{workspace: workspace}
}

func (c *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	org := c.workspace.Organization()
	settings := org.Settings

	enabled := make(map[entity.AiEngine]bool, len(settings.EnabledAiEngines))
	engineIds := make([]string, 0, len(settings.EnabledAiEngines))
	for _, e := range settings.EnabledAiEngines {
		enabled[e] = true
		engineIds = append(engineIds, string(e))
	}

	engines := make([]dto.AiEngineOption, 0, len(engineCatalogue))
	for _, e := range engineCatalogue {
		engines = append(engines, dto.AiEngineOption{
			Id:      string(e.id),
			Name:    e.name,
			Enabled: enabled[e.id],
			Cost:    e.cost,
			Default: e.id == settings.DefaultAiEngine,
		})
	}

	return &dto.SettingsResponse{
		Organization: dto.OrganizationResponse{
			Id:            org.Id,
			Name:          org.Name,
			Plan:          string(org.Plan),
			DefaultEngine: string(settings.DefaultAiEngine),
			Engines:       engineIds,
			Language:      settings.Language,
			RetentionDays: settings.RetentionDays,
			Theme:         settings.Theme,
		},
		AiEngines: engines,
		Languages: append([]dto.LanguageOption(nil), languages...),
	}, nil
}
