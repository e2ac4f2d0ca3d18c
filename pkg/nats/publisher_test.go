package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "events.DOCUMENT_UPLOADED", Subject("DOCUMENT_UPLOADED"))
	assert.Equal(t, "events.USAGE_EXCEEDED", Subject("USAGE_EXCEEDED"))
}
