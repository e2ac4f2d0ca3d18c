package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/logger"
	"docintel-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IProcessingService stands in for the document AI backend. It consumes
// ProcessDocumentMessage payloads and walks each document through
// pending -> processing -> completed.
type IProcessingService interface {
	Consume(ctx context.Context) error
	// Close stops picking up documents and blocks until every document
	// already picked up has settled.
	Close()
}

type processingService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	workspace *store.WorkspaceStore
	delay     time.Duration
	logger    logger.ILogger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewProcessingService(
	pubSub *gochannel.GoChannel,
	topicName string,
	workspace *store.WorkspaceStore,
	delay time.Duration,
	log logger.ILogger,
) IProcessingService {
	return &processingService{
		pubSub:    pubSub,
		topicName: topicName,
		workspace: workspace,
		delay:     delay,
		logger:    log,
	}
}

func (ps *processingService) Consume(ctx context.Context) error {
	messages, err := ps.pubSub.Subscribe(ctx, ps.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ps.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ps *processingService) Close() {
	ps.mu.Lock()
	ps.closed = true
	ps.mu.Unlock()
	ps.wg.Wait()
}

func (ps *processingService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ProcessDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		ps.logger.Error("PROCESSING", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}
	msg.Ack()

	ps.mu.Lock()
	if ps.closed {
		ps.mu.Unlock()
		ps.logger.Warn("PROCESSING", "Dropping document received after shutdown", map[string]interface{}{"document_id": payload.DocumentId})
		return
	}
	ps.wg.Add(1)
	ps.mu.Unlock()

	go func() {
		defer ps.wg.Done()
		ps.process(ctx, payload.DocumentId)
	}()
}

func (ps *processingService) process(ctx context.Context, documentId string) {
	doc, err := ps.workspace.AdvanceDocumentStatus(documentId, entity.AiStatusProcessing, nil)
	if err != nil {
		ps.logger.Warn("PROCESSING", "Skipping document", map[string]interface{}{
			"document_id": documentId,
			"error":       err.Error(),
		})
		return
	}

	if ps.delay > 0 {
		timer := time.NewTimer(ps.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			// Interrupted documents end as failed.
			ps.settle(documentId, entity.AiStatusFailed, nil)
			return
		}
	}

	summary := fmt.Sprintf("Automated analysis of %s: key topics, entities and figures extracted", doc.Name)
	ps.settle(documentId, entity.AiStatusCompleted, &summary)
}

func (ps *processingService) settle(documentId string, status entity.AiStatus, summary *string) {
	if _, err := ps.workspace.AdvanceDocumentStatus(documentId, status, summary); err != nil {
		ps.logger.Warn("PROCESSING", "Document vanished before processing finished", map[string]interface{}{
			"document_id": documentId,
			"error":       err.Error(),
		})
		return
	}
	ps.logger.Info("PROCESSING", "Document processed", map[string]interface{}{
		"document_id": documentId,
		"status":      string(status),
	})
}
