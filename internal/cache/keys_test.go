package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	key := GenerateCacheKey("evaluation", "result", "abc123")
	assert.Equal(t, "hireready:evaluation:result:abc123", key)
}

func TestGenerateCacheKey_WithParams(t *testing.T) {
	key := GenerateCacheKey("quiz", "attempt", "01H", "Backend", "Low")
	assert.Equal(t, "hireready:quiz:attempt:01H:Backend_Low", key)
}
