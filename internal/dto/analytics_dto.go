package dto

type MonthlyUsageResponse struct {
	Month   string  `json:"month"`
	Uploads int     `json:"uploads"`
	Chats   int     `json:"chats"`
	Storage float64 `json:"storage"`
}

type TopFileResponse struct {
	Name  string `json:"name"`
	Views int    `json:"views"`
	Chats int    `json:"chats"`
}

type RevenueCard struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Change   string `json:"change"`
	Positive bool   `json:"positive"`
}

type AnalyticsResponse struct {
	TotalFiles    int                    `json:"total_files"`
	TotalChats    int                    `json:"total_chats"`
	TotalUploads  int                    `json:"total_uploads"`
	TotalStorage  int64                  `json:"total_storage"`
	StorageLabel  string                 `json:"storage_label"`
	MonthlyData   []MonthlyUsageResponse `json:"monthly_data"`
	TopFiles      []TopFileResponse      `json:"top_files"`
	AiEngineUsage map[string]int         `json:"ai_engine_usage"`
	Revenue       []RevenueCard          `json:"revenue"`
}
