package dto

import "time"

type FolderResponse struct {
	Id          string              `json:"id"`
	Name        string              `json:"name"`
	ParentId    *string             `json:"parent_id,omitempty"`
	Path        string              `json:"path"`
	Permissions map[string][]string `json:"permissions"`
	CreatedAt   time.Time           `json:"created_at"`
	CreatedBy   string              `json:"created_by"`
	Children    []FolderResponse    `json:"children,omitempty"`
}

type CreateFolderRequest struct {
	Name     string  `json:"name" validate:"required,max=128"`
	ParentId *string `json:"parent_id"`
}
