package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "fr", Normalize("fr-CA"))
	assert.Equal(t, "en", Normalize(" EN "))
	assert.Equal(t, "", Normalize(""))
}

func TestSame(t *testing.T) {
	assert.True(t, Same("en-US", "en"))
	assert.False(t, Same("fr", "en"))
}

func TestSnowballName(t *testing.T) {
	name, ok := SnowballName("fr-FR")
	assert.True(t, ok)
	assert.Equal(t, "french", name)

	_, ok = SnowballName("ja")
	assert.False(t, ok)
}
