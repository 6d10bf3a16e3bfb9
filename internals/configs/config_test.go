package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientKeyHasRecognizedPrefix(t *testing.T) {
	assert.True(t, ClientKeyHasRecognizedPrefix("Mid-client-abc123"))
	assert.True(t, ClientKeyHasRecognizedPrefix("SB-Mid-client-abc123"))

	assert.False(t, ClientKeyHasRecognizedPrefix(""))
	assert.False(t, ClientKeyHasRecognizedPrefix("mid-client-abc123"))
	assert.False(t, ClientKeyHasRecognizedPrefix("SB-Mid-server-abc123"))
}
