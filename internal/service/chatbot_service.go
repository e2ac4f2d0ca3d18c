package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/mapper"
	"docintel-be/internal/pkg/logger"
	"docintel-be/pkg/store"

	"github.com/google/uuid"
)

const (
	chatGreeting   = "Hello! I can help you analyze and answer questions about your documents. What would you like to know?"
	chatNoDocument = "I can help you analyze documents once you upload them. Please select a file to get started."
)

var quickActions = []dto.QuickAction{
	{Label: "Summarize", Prompt: "Please summarize this document"},
	{Label: "Extract Data", Prompt: "Extract key data points from this document"},
	{Label: "Key Insights", Prompt: "What are the key insights from this document?"},
	{Label: "Action Items", Prompt: "List any action items or next steps"},
}

type IChatbotService interface {
	Transcript(ctx context.Context) (*dto.ChatTranscriptResponse, error)
	Send(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	QuickActions(ctx context.Context) []dto.QuickAction
	// Close drops replies that have not been delivered yet and waits for
	// their goroutines to return.
	Close()
}

type chatbotService struct {
	workspace  *store.WorkspaceStore
	chatMapper *mapper.ChatMapper
	replyDelay time.Duration
	now        func() time.Time
	logger     logger.ILogger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
	done   chan struct{}
}

func NewChatbotService(workspace *store.WorkspaceStore, replyDelay time.Duration, log logger.ILogger) IChatbotService {
	return &chatbotService{
		workspace:  workspace,
		chatMapper: mapper.NewChatMapper(),
		replyDelay: replyDelay,
		now:        time.Now,
		logger:     log,
		done:       make(chan struct{}),
	}
}

func (c *chatbotService) Transcript(ctx context.Context) (*dto.ChatTranscriptResponse, error) {
	greeting := &entity.ChatMessage{
		Id:        "greeting",
		Role:      entity.ChatRoleAssistant,
		Content:   chatGreeting,
		Timestamp: c.now(),
		AiEngine:  c.defaultEngine(),
	}
	return &dto.ChatTranscriptResponse{
		Greeting: c.chatMapper.ToResponse(greeting),
		Messages: c.chatMapper.ToResponses(c.workspace.ChatMessages()),
		Actions:  c.QuickActions(ctx),
	}, nil
}

func (c *chatbotService) QuickActions(ctx context.Context) []dto.QuickAction {
	return append([]dto.QuickAction(nil), quickActions...)
}

// Send appends the user's message, charges one chat against the quota and
// schedules the assistant reply. With no reply delay the reply is appended
// before Send returns.
func (c *chatbotService) Send(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	if c.isClosed() {
		return nil, store.ErrStoreClosed
	}

	content := strings.TrimSpace(req.Message)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	var doc *entity.Document
	if req.DocumentId != nil && *req.DocumentId != "" {
		found, err := c.workspace.FindDocument(*req.DocumentId)
		if err != nil {
			return nil, err
		}
		doc = found
	}

	engine := req.AiEngine
	if engine == "" {
		engine = c.defaultEngine()
	}

	msg := &entity.ChatMessage{
		Id:         uuid.NewString(),
		Role:       entity.ChatRoleUser,
		Content:    content,
		Timestamp:  c.now(),
		DocumentId: req.DocumentId,
		AiEngine:   engine,
	}
	c.workspace.AppendChatMessage(msg)

	if _, err := c.workspace.UpdateUsageCounter(entity.UsageKindChats, 1); err != nil {
		return nil, err
	}

	if c.replyDelay <= 0 {
		c.reply(doc, engine)
		return &dto.SendChatResponse{Message: c.chatMapper.ToResponse(msg)}, nil
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return &dto.SendChatResponse{Message: c.chatMapper.ToResponse(msg)}, nil
	}
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		timer := time.NewTimer(c.replyDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
			c.reply(doc, engine)
		case <-c.done:
			c.logger.Warn("CHATBOT", "Discarding reply after shutdown", map[string]interface{}{"message_id": msg.Id})
		}
	}()

	return &dto.SendChatResponse{
		Message:      c.chatMapper.ToResponse(msg),
		PendingReply: true,
	}, nil
}

func (c *chatbotService) Close() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.done)
	}
	c.mu.Unlock()
	c.wg.Wait()
}

func (c *chatbotService) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *chatbotService) reply(doc *entity.Document, engine string) {
	content := chatNoDocument
	var documentId *string
	if doc != nil {
		summary := "various topics"
		if doc.Summary != nil && *doc.Summary != "" {
			summary = *doc.Summary
		}
		content = fmt.Sprintf(
			"Based on the analysis of \"%s\", I can provide insights about your query. This document contains information about %s. What specific aspect would you like me to elaborate on?",
			doc.Name, summary,
		)
		id := doc.Id
		documentId = &id
	}

	c.workspace.AppendChatMessage(&entity.ChatMessage{
		Id:         uuid.NewString(),
		Role:       entity.ChatRoleAssistant,
		Content:    content,
		Timestamp:  c.now(),
		DocumentId: documentId,
		AiEngine:   engine,
	})
}

func (c *chatbotService) defaultEngine() string {
	return string(c.workspace.Organization().Settings.DefaultAiEngine)
}
