package style

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeYAMLKeepsOrder(t *testing.T) {
	doc := []byte(`
color: red
backgroundColor: green
":hover":
  color: cyan
"@media screen and (min-width: 300px)":
  margin: 0
zIndex: 3
`)
	m, err := DecodeYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, M{
		{"color", "red"},
		{"backgroundColor", "green"},
		{":hover", M{{"color", "cyan"}}},
		{"@media screen and (min-width: 300px)", M{{"margin", 0}}},
		{"zIndex", 3},
	}, m)
}

func TestDecodeYAMLEmpty(t *testing.T) {
	m, err := DecodeYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestDecodeYAMLNotAMapping(t *testing.T) {
	_, err := DecodeYAML([]byte("- color\n- red\n"))
	assert.True(t, errors.Is(err, ErrNotAMapping), "expected ErrNotAMapping, got %v", err)
}
