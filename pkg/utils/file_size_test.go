package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{-5, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{512000, "500 KB"},
		{1024000, "1000 KB"},
		{2048000, "1.95 MB"},
		{107374182400, "100 GB"},
		{45600000000, "42.47 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileSize(tt.bytes))
		})
	}
}

func TestParseFileSize(t *testing.T) {
	size, err := ParseFileSize("10MB")
	require.NoError(t, err)
	assert.Equal(t, int64(10<<20), size)

	size, err = ParseFileSize("50MB")
	require.NoError(t, err)
	assert.Equal(t, "50 MB", FormatFileSize(size))

	_, err = ParseFileSize("lots")
	assert.Error(t, err)
}
