package service

import (
	"context"
	"strings"

	"docintel-be/internal/dto"
	"docintel-be/internal/mapper"
	"docintel-be/internal/pkg/logger"
	"docintel-be/pkg/store"
)

type IFolderService interface {
	List(ctx context.Context) ([]dto.FolderResponse, error)
	Tree(ctx context.Context) ([]dto.FolderResponse, error)
	Show(ctx context.Context, id string) (*dto.FolderResponse, error)
	Create(ctx context.Context, req *dto.CreateFolderRequest, createdBy string) (*dto.FolderResponse, error)
}

type folderService struct {
	workspace    *store.WorkspaceStore
	folderMapper *mapper.FolderMapper
	logger       logger.ILogger
}

func NewFolderService(workspace *store.WorkspaceStore, log logger.ILogger) IFolderService {
	return &folderService{
		workspace:    workspace,
		folderMapper: mapper.NewFolderMapper(),
		logger:       log,
	}
}

func (c *folderService) List(ctx context.Context) ([]dto.FolderResponse, error) {
	return c.folderMapper.ToResponses(c.workspace.Folders()), nil
}

func (c *folderService) Tree(ctx context.Context) ([]dto.FolderResponse, error) {
	return c.folderMapper.ToResponses(c.workspace.FolderTree()), nil
}

func (c *folderService) Show(ctx context.Context, id string) (*dto.FolderResponse, error) {
	folder, err := c.workspace.FindFolder(id)
	if err != nil {
		return nil, err
	}
	res := c.folderMapper.ToResponse(folder)
	return &res, nil
}

func (c *folderService) Create(ctx context.Context, req *dto.CreateFolderRequest, createdBy string) (*dto.FolderResponse, error) {
	parentId := req.ParentId
	if parentId != nil && strings.TrimSpace(*parentId) == "" {
		parentId = nil
	}

	folder, err := c.workspace.CreateFolderAs(strings.TrimSpace(req.Name), parentId, createdBy)
	if err != nil {
		return nil, err
	}
	res := c.folderMapper.ToResponse(folder)
	return &res, nil
}
