package mapper

import (
	"encoding/json"
	"testing"

	"docintel-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusVariant(t *testing.T) {
	assert.Equal(t, "success", StatusVariant(entity.AiStatusCompleted))
	assert.Equal(t, "warning", StatusVariant(entity.AiStatusProcessing))
	assert.Equal(t, "danger", StatusVariant(entity.AiStatusFailed))
	assert.Equal(t, "secondary", StatusVariant(entity.AiStatusPending))
}

func TestDocumentMapper_ToResponse(t *testing.T) {
	engine := entity.AiEngineGemini
	res := NewDocumentMapper().ToResponse(&entity.Document{
		Id:       "7",
		Name:     "Plan.pdf",
		Size:     2048000,
		AiStatus: entity.AiStatusProcessing,
		AiEngine: &engine,
	})

	assert.Equal(t, "1.95 MB", res.SizeLabel)
	assert.Equal(t, "warning", res.StatusVariant)
	require.NotNil(t, res.AiEngine)
	assert.Equal(t, "gemini", *res.AiEngine)
	assert.Equal(t, []string{}, res.Tags)
}

func TestUserMapper_EmptyPermissionsEncodeAsArray(t *testing.T) {
	m := NewUserMapper()
	assert.Nil(t, m.ToResponse(nil))

	raw, err := json.Marshal(m.ToResponse(&entity.User{Id: "1"}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"permissions":[]`)
}
