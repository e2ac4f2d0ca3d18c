package dto

import "time"

type DocumentResponse struct {
	Id            string                 `json:"id"`
	Name          string                 `json:"name"`
	Type          string                 `json:"type"`
	Size          int64                  `json:"size"`
	SizeLabel     string                 `json:"size_label"`
	FolderId      string                 `json:"folder_id"`
	UploadedBy    string                 `json:"uploaded_by"`
	UploadedAt    time.Time              `json:"uploaded_at"`
	Tags          []string               `json:"tags"`
	AiStatus      string                 `json:"ai_status"`
	StatusVariant string                 `json:"status_variant"`
	AiEngine      *string                `json:"ai_engine,omitempty"`
	Summary       *string                `json:"summary,omitempty"`
	ExtractedData map[string]interface{} `json:"extracted_data,omitempty"`
	OcrText       *string                `json:"ocr_text,omitempty"`
	PreviewUrl    *string                `json:"preview_url,omitempty"`
	DownloadUrl   string                 `json:"download_url"`
}

type ListDocumentsRequest struct {
	FolderId string `query:"folder_id"`
	Search   string `query:"search"`
}

type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int                `json:"total"`
}

type UploadDocumentRequest struct {
	Name     string   `json:"name" validate:"required,max=255"`
	Type     string   `json:"type" validate:"required"`
	Size     int64    `json:"size" validate:"gte=0"`
	FolderId string   `json:"folder_id" validate:"required"`
	Tags     []string `json:"tags"`
	AiEngine string   `json:"ai_engine" validate:"omitempty,oneof=openai gemini deepseek llama"`
}

type UploadDocumentResponse struct {
	Document DocumentResponse `json:"document"`
	Usage    []UsageIndicator `json:"usage"`
}

// ProcessDocumentMessage is queued for the AI processing consumer after an
// upload.
type ProcessDocumentMessage struct {
	DocumentId string `json:"document_id"`
}
