package dto

type AiEngineOption struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Cost    string `json:"cost"`
	Default bool   `json:"default"`
}

type LanguageOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type OrganizationResponse struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Plan          string   `json:"plan"`
	DefaultEngine string   `json:"default_ai_engine"`
	Engines       []string `json:"enabled_ai_engines"`
	Language      string   `json:"language"`
	RetentionDays int      `json:"retention_days"`
	Theme         *string  `json:"theme,omitempty"`
}

type SettingsResponse struct {
	Organization OrganizationResponse `json:"organization"`
	AiEngines    []AiEngineOption     `json:"ai_engines"`
	Languages    []LanguageOption     `json:"languages"`
}
