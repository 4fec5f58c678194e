package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Uniqueness(t *testing.T) {
	ids := make(map[string]bool)
	count := 1000

	for i := 0; i < count; i++ {
		id, err := Generate("loan")
		require.NoError(t, err)
		assert.False(t, ids[id], "ID should be unique: %s", id)
		ids[id] = true
	}

	assert.Len(t, ids, count)
}

func TestGenerate_Format(t *testing.T) {
	id, err := Generate("loan")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(id, "loan-"))

	// NanoID default is 21 URL-safe characters.
	nanoidPart := strings.TrimPrefix(id, "loan-")
	assert.Len(t, nanoidPart, 21)

	for _, char := range nanoidPart {
		assert.True(t,
			(char >= 'A' && char <= 'Z') ||
				(char >= 'a' && char <= 'z') ||
				(char >= '0' && char <= '9') ||
				char == '_' || char == '-',
			"Character %c should be URL-safe", char)
	}
}

func TestMustGenerate(t *testing.T) {
	id := MustGenerate("loan")
	assert.True(t, strings.HasPrefix(id, "loan-"))
	assert.Equal(t, len("loan")+1+21, len(id))
}
