package langs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupported(t *testing.T) {
	supported := Supported()
	assert.NotEmpty(t, supported)
	assert.Equal(t, Default, supported[0].Code, "default language listed first")

	// The returned slice is a copy.
	supported[0].Code = "mutated"
	assert.True(t, IsSupported(Default))
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("eng"))
	assert.True(t, IsSupported("hindi"))
	assert.False(t, IsSupported("English"))
	assert.False(t, IsSupported(""))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "English", DisplayName("eng"))
	assert.Equal(t, "Kannada", DisplayName("kann"))
	assert.Equal(t, "zz", DisplayName("zz"), "unknown codes fall back to the code")
}
