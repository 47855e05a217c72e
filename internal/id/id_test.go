package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Uniqueness(t *testing.T) {
	ids := make(map[string]bool)
	count := 1000

	for i := 0; i < count; i++ {
		id := New()
		assert.False(t, ids[id], "ID should be unique: %s", id)
		ids[id] = true
	}

	assert.Len(t, ids, count)
}

func TestNew_IsVersion4UUID(t *testing.T) {
	parsed, err := uuid.Parse(New())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}
