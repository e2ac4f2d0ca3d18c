package entity

import "time"

type AiStatus string
type AiEngine string

const (
	AiStatusPending    AiStatus = "pending"
	AiStatusProcessing AiStatus = "processing"
	AiStatusCompleted  AiStatus = "completed"
	AiStatusFailed     AiStatus = "failed"

	AiEngineOpenAI   AiEngine = "openai"
	AiEngineGemini   AiEngine = "gemini"
	AiEngineDeepSeek AiEngine = "deepseek"
	AiEngineLlama    AiEngine = "llama"
)

type Document struct {
	Id            string
	Name          string
	MimeType      string
	Size          int64
	FolderId      string
	UploadedBy    string
	UploadedAt    time.Time
	Tags          []string
	AiStatus      AiStatus
	AiEngine      *AiEngine
	Summary       *string
	ExtractedData map[string]interface{}
	OcrText       *string
	PreviewURL    *string
	DownloadURL   string
}

// Clone copies the document including its tag slice and extracted data map.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.Tags = append([]string(nil), d.Tags...)
	if d.ExtractedData != nil {
		c.ExtractedData = make(map[string]interface{}, len(d.ExtractedData))
		for k, v := range d.ExtractedData {
			c.ExtractedData[k] = v
		}
	}
	return &c
}

// CanTransition reports whether the AI status may move from s to next.
// Statuses only move forward: pending -> processing -> completed | failed.
func (s AiStatus) CanTransition(next AiStatus) bool {
	switch s {
	case AiStatusPending:
		return next == AiStatusProcessing
	case AiStatusProcessing:
		return next == AiStatusCompleted || next == AiStatusFailed
	}
	return false
}

func (s AiStatus) IsTerminal() bool {
	return s == AiStatusCompleted || s == AiStatusFailed
}

func IsValidEngine(engine AiEngine) bool {
	switch engine {
	case AiEngineOpenAI, AiEngineGemini, AiEngineDeepSeek, AiEngineLlama:
		return true
	}
	return false
}
