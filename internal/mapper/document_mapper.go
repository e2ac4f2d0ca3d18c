package mapper

import (
	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/pkg/utils"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

// StatusVariant is the badge variant the UI renders for an AI status.
func StatusVariant(status entity.AiStatus) string {
	switch status {
	case entity.AiStatusCompleted:
		return "success"
	case entity.AiStatusProcessing:
		return "warning"
	case entity.AiStatusFailed:
		return "danger"
	}
	return "secondary"
}

func (m *DocumentMapper) ToResponse(d *entity.Document) dto.DocumentResponse {
	var engine *string
	if d.AiEngine != nil {
		e := string(*d.AiEngine)
		engine = &e
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.DocumentResponse{
		Id:            d.Id,
		Name:          d.Name,
		Type:          d.MimeType,
		Size:          d.Size,
		SizeLabel:     utils.FormatFileSize(d.Size),
		FolderId:      d.FolderId,
		UploadedBy:    d.UploadedBy,
		UploadedAt:    d.UploadedAt,
		Tags:          tags,
		AiStatus:      string(d.AiStatus),
		StatusVariant: StatusVariant(d.AiStatus),
		AiEngine:      engine,
		Summary:       d.Summary,
		ExtractedData: d.ExtractedData,
		OcrText:       d.OcrText,
		PreviewUrl:    d.PreviewURL,
		DownloadUrl:   d.DownloadURL,
	}
}

func (m *DocumentMapper) ToResponses(docs []*entity.Document) []dto.DocumentResponse {
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, m.ToResponse(d))
	}
	return out
}
