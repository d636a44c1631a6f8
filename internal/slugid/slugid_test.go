package slugid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	assert.Equal(t, "industrial-pumps", Make("Industrial Pumps"))
	assert.Equal(t, "nasosy", Make("Насосы"))
	assert.Equal(t, "a-b", Make("  A   b  "))
}

func TestWithSuffix(t *testing.T) {
	assert.Equal(t, "industrial-pumps-1", WithSuffix("industrial-pumps", 1))
	assert.Equal(t, "industrial-pumps-2", WithSuffix("industrial-pumps", 2))
}
