package entity

import "time"

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatUsage struct {
	TokensUsed int
	Cost       float64
}

type ChatMessage struct {
	Id         string
	Role       ChatRole
	Content    string
	Timestamp  time.Time
	DocumentId *string
	AiEngine   string
	Usage      *ChatUsage
}

func (m *ChatMessage) Clone() *ChatMessage {
	if m == nil {
		return nil
	}
	c := *m
	if m.DocumentId != nil {
		id := *m.DocumentId
		c.DocumentId = &id
	}
	if m.Usage != nil {
		u := *m.Usage
		c.Usage = &u
	}
	return &c
}
