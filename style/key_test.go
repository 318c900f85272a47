package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalKey(t *testing.T) {
	m := M{
		{"color", "red"},
		{"size", 2},
		{"ratio", 0.5},
		{"unset", nil},
		{":hover", M{{"color", "<cyan>"}}},
	}
	assert.Equal(t, `{"color":"red","size":2,"ratio":0.5,":hover":{"color":"<cyan>"}}`, CanonicalKey(m))
	assert.Equal(t, `{}`, CanonicalKey(nil))
}

func TestCanonicalKeyOrderMatters(t *testing.T) {
	a := M{{"color", "red"}, {"background", "green"}}
	b := M{{"background", "green"}, {"color", "red"}}
	assert.NotEqual(t, CanonicalKey(a), CanonicalKey(b))
	assert.Equal(t, CanonicalKey(a), CanonicalKey(M{{"color", "red"}, {"background", "green"}}))
}

func TestCanonicalKeyNormalizesStrings(t *testing.T) {
	composed := M{{"content", "\u00e9"}}
	decomposed := M{{"content", "e\u0301"}}
	assert.Equal(t, CanonicalKey(composed), CanonicalKey(decomposed))
}
