package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/mapper"
	"docintel-be/internal/pkg/logger"
	"docintel-be/pkg/store"
	"docintel-be/pkg/utils"

	"github.com/google/uuid"
)

type IDocumentService interface {
	List(ctx context.Context, req *dto.ListDocumentsRequest) (*dto.ListDocumentsResponse, error)
	Show(ctx context.Context, id string) (*dto.DocumentResponse, error)
	Upload(ctx context.Context, req *dto.UploadDocumentRequest, uploadedBy string) (*dto.UploadDocumentResponse, error)
	Delete(ctx context.Context, id string) error
}

type documentService struct {
	workspace        *store.WorkspaceStore
	publisherService IPublisherService
	documentMapper   *mapper.DocumentMapper
	maxUploadSize    int64
	now              func() time.Time
	logger           logger.ILogger
}

func NewDocumentService(
	workspace *store.WorkspaceStore,
	publisherService IPublisherService,
	maxUploadSize int64,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		workspace:        workspace,
		publisherService: publisherService,
		documentMapper:   mapper.NewDocumentMapper(),
		maxUploadSize:    maxUploadSize,
		now:              time.Now,
		logger:           log,
	}
}

func (c *documentService) List(ctx context.Context, req *dto.ListDocumentsRequest) (*dto.ListDocumentsResponse, error) {
	if req.FolderId != "" {
		if _, err := c.workspace.FindFolder(req.FolderId); err != nil {
			return nil, err
		}
	}

	docs := c.workspace.FilterDocuments(req.FolderId, strings.TrimSpace(req.Search))
	return &dto.ListDocumentsResponse{
		Documents: c.documentMapper.ToResponses(docs),
		Total:     len(docs),
	}, nil
}

func (c *documentService) Show(ctx context.Context, id string) (*dto.DocumentResponse, error) {
	doc, err := c.workspace.FindDocument(id)
	if err != nil {
		return nil, err
	}
	res := c.documentMapper.ToResponse(doc)
	return &res, nil
}

// Upload records the document as pending, charges one upload plus its size
// against the quota and queues it for AI processing. Exceeding a quota does
// not reject the upload; the returned indicators carry the exceedance.
func (c *documentService) Upload(ctx context.Context, req *dto.UploadDocumentRequest, uploadedBy string) (*dto.UploadDocumentResponse, error) {
	if c.maxUploadSize > 0 && req.Size > c.maxUploadSize {
		return nil, fmt.Errorf("%s over %s: %w", utils.FormatFileSize(req.Size), utils.FormatFileSize(c.maxUploadSize), ErrFileTooLarge)
	}
	if _, err := c.workspace.FindFolder(req.FolderId); err != nil {
		return nil, err
	}

	engine := c.workspace.Organization().Settings.DefaultAiEngine
	if req.AiEngine != "" {
		engine = entity.AiEngine(req.AiEngine)
	}

	id := uuid.NewString()
	doc := &entity.Document{
		Id:          id,
		Name:        req.Name,
		MimeType:    req.Type,
		Size:        req.Size,
		FolderId:    req.FolderId,
		UploadedBy:  uploadedBy,
		UploadedAt:  c.now(),
		Tags:        append([]string(nil), req.Tags...),
		AiStatus:    entity.AiStatusPending,
		AiEngine:    &engine,
		DownloadURL: "/api/documents/" + id,
	}
	c.workspace.UploadDocument(doc)

	if _, err := c.workspace.UpdateUsageCounter(entity.UsageKindUploads, 1); err != nil {
		return nil, err
	}
	if _, err := c.workspace.UpdateUsageCounter(entity.UsageKindStorage, req.Size); err != nil {
		return nil, err
	}

	msgPayload := dto.ProcessDocumentMessage{DocumentId: id}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := c.publisherService.Publish(ctx, msgJson); err != nil {
		// The document stays pending; it is still listed and can be deleted.
		c.logger.Error("DOCUMENT", "Failed to queue document for processing", map[string]interface{}{
			"document_id": id,
			"error":       err.Error(),
		})
	}

	c.logger.Info("DOCUMENT", "Document uploaded", map[string]interface{}{
		"document_id": id,
		"name":        req.Name,
		"size":        req.Size,
	})

	return &dto.UploadDocumentResponse{
		Document: c.documentMapper.ToResponse(doc),
		Usage:    usageIndicators(c.workspace.Usage()),
	}, nil
}

func (c *documentService) Delete(ctx context.Context, id string) error {
	return c.workspace.DeleteDocument(id)
}
