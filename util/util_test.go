package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetValueAtPath(t *testing.T) {
	input := map[string]interface{}{
		"campaign": map[string]interface{}{
			"id":   "7",
			"name": "Campaign Seven",
		},
		"count": 3,
	}

	assert.Equal(t, "7", GetValueAtPath([]string{"campaign", "id"}, input))
	assert.Equal(t, 3, GetValueAtPath([]string{"count"}, input))
	assert.Nil(t, GetValueAtPath([]string{"campaign", "missing"}, input))
	assert.Nil(t, GetValueAtPath([]string{"missing", "id"}, input))
	assert.Nil(t, GetValueAtPath([]string{"count", "id"}, input))
	assert.Nil(t, GetValueAtPath(nil, input))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(""))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(0))
}
