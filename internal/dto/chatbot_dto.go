package dto

import "time"

type ChatMessageResponse struct {
	Id         string             `json:"id"`
	Role       string             `json:"role"`
	Content    string             `json:"content"`
	Timestamp  time.Time          `json:"timestamp"`
	DocumentId *string            `json:"document_id,omitempty"`
	AiEngine   string             `json:"ai_engine"`
	Usage      *ChatUsageResponse `json:"usage,omitempty"`
}

type ChatUsageResponse struct {
	TokensUsed int     `json:"tokens_used"`
	Cost       float64 `json:"cost"`
}

type SendChatRequest struct {
	Message    string  `json:"message" validate:"required"`
	DocumentId *string `json:"document_id"`
	AiEngine   string  `json:"ai_engine" validate:"omitempty,oneof=openai gemini deepseek llama"`
}

type SendChatResponse struct {
	Message ChatMessageResponse `json:"message"`
	// PendingReply is true while the assistant reply is being prepared; it
	// arrives later on the transcript and the websocket feed.
	PendingReply bool `json:"pending_reply"`
}

type QuickAction struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

type ChatTranscriptResponse struct {
	Greeting ChatMessageResponse   `json:"greeting"`
	Messages []ChatMessageResponse `json:"messages"`
	Actions  []QuickAction         `json:"quick_actions"`
}
