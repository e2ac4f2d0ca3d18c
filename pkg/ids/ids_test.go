package ids

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewIsUniqueAndOrdered(t *testing.T) {
	prev := New()
	seen := map[string]bool{prev: true}
	for i := 0; i < 100; i++ {
		id := New()
		assert.False(t, seen[id], "duplicate id %s", id)
		assert.Greater(t, id, prev)
		seen[id] = true
		prev = id
	}
}

func TestTimeRoundTrip(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	got, ok := Time(NewAt(at))
	assert.True(t, ok)
	assert.True(t, at.Equal(got))

	_, ok = Time("root")
	assert.False(t, ok)
}
