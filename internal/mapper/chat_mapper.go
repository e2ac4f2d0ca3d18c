package mapper

import (
	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToResponse(msg *entity.ChatMessage) dto.ChatMessageResponse {
	res := dto.ChatMessageResponse{
		Id:         msg.Id,
		Role:       string(msg.Role),
		Content:    msg.Content,
		Timestamp:  msg.Timestamp,
		DocumentId: msg.DocumentId,
		AiEngine:   msg.AiEngine,
	}
	if msg.Usage != nil {
		res.Usage = &dto.ChatUsageResponse{TokensUsed: msg.Usage.TokensUsed, Cost: msg.Usage.Cost}
	}
	return res
}

func (m *ChatMapper) ToResponses(msgs []*entity.ChatMessage) []dto.ChatMessageResponse {
	out := make([]dto.ChatMessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, m.ToResponse(msg))
	}
	return out
}
