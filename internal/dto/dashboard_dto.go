package dto

type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

type UsageIndicator struct {
	Kind       string  `json:"kind"`
	Used       int64   `json:"used"`
	Limit      int64   `json:"limit"`
	UsedLabel  string  `json:"used_label"`
	LimitLabel string  `json:"limit_label"`
	Percentage float64 `json:"percentage"`
	Severity   string  `json:"severity"`
	Variant    string  `json:"variant"`
	Exceeded   bool    `json:"exceeded"`
}

type DashboardResponse struct {
	Greeting      string             `json:"greeting"`
	Stats         []StatCard         `json:"stats"`
	Usage         []UsageIndicator   `json:"usage"`
	RecentFiles   []DocumentResponse `json:"recent_files"`
	EngineUsage   map[string]int     `json:"ai_engine_usage"`
	BillingPeriod string             `json:"billing_period"`
}
