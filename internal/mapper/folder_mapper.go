package mapper

import (
	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
)

type FolderMapper struct{}

func NewFolderMapper() *FolderMapper {
	return &FolderMapper{}
}

// ToResponse maps a folder and, recursively, its derived children.
func (m *FolderMapper) ToResponse(f *entity.Folder) dto.FolderResponse {
	res := dto.FolderResponse{
		Id:          f.Id,
		Name:        f.Name,
		ParentId:    f.ParentId,
		Path:        f.Path,
		Permissions: f.Permissions,
		CreatedAt:   f.CreatedAt,
		CreatedBy:   f.CreatedBy,
	}
	for _, child := range f.Children {
		res.Children = append(res.Children, m.ToResponse(child))
	}
	return res
}

func (m *FolderMapper) ToResponses(folders []*entity.Folder) []dto.FolderResponse {
	out := make([]dto.FolderResponse, 0, len(folders))
	for _, f := range folders {
		out = append(out, m.ToResponse(f))
	}
	return out
}
