package style

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKebab(t *testing.T) {
	tests := []struct {
		key, want string
	}{
		{"color", "color"},
		{"backgroundColor", "background-color"},
		{"borderTopLeftRadius", "border-top-left-radius"},
		{"MozAppearance", "-moz-appearance"},
		{"already-kebab", "already-kebab"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Kebab(tt.key), "Kebab(%q)", tt.key)
	}
}

func TestTruthiness(t *testing.T) {
	falsy := []any{nil, false, "", NullStyle, 0, 0.0, int64(0), math.NaN()}
	for _, v := range falsy {
		assert.False(t, IsTruthy(v), "expected %#v to be falsy", v)
	}
	truthy := []any{true, "red", 1, -2, 0.5, M{}, Property("x")}
	for _, v := range truthy {
		assert.True(t, IsTruthy(v), "expected %#v to be truthy", v)
	}
	assert.True(t, IsDefined(0), "zero should count as defined")
	assert.True(t, IsDefined(0.0), "zero should count as defined")
	assert.False(t, IsDefined(""), "empty string should not be defined")
	assert.False(t, IsDefined(nil), "nil should not be defined")
	assert.False(t, IsTruthy(unset{}), "unset optional should be falsy")
	assert.False(t, IsTruthy(blank{}), "value rendering as \"\" should be falsy")
	assert.False(t, IsDefined(unset{}), "unset optional should not be defined")
	assert.True(t, IsTruthy(pt(1)), "stringer should be truthy")
}

type unset struct{}

func (unset) IsNone() bool   { return true }
func (unset) String() string { return "none" }

type blank struct{}

func (blank) String() string { return "" }

type pt int

func (p pt) String() string {
	return "pt!"
}

func TestFormat(t *testing.T) {
	assert.Equal(t, Property("12"), Format(12))
	assert.Equal(t, Property("1.5"), Format(1.5))
	assert.Equal(t, Property("-3"), Format(int8(-3)))
	assert.Equal(t, Property("red"), Format("red"))
	assert.Equal(t, Property("true"), Format(true))
	assert.Equal(t, Property("pt!"), Format(pt(1)))
	assert.Equal(t, NullStyle, Format(nil))
}

func TestCompact(t *testing.T) {
	m := M{{"color", "red"}, {"margin", 1}, {"color", "blue"}}
	c := m.Compact()
	assert.Equal(t, M{{"color", "blue"}, {"margin", 1}}, c)
	v, ok := m.Get("color")
	assert.True(t, ok)
	assert.Equal(t, "blue", v)
}

func TestFromMapSortsKeys(t *testing.T) {
	m := FromMap(map[string]any{
		"zIndex": 1,
		"color":  "red",
		":hover": map[string]any{"color": "cyan"},
	})
	assert.Equal(t, M{
		{":hover", M{{"color", "cyan"}}},
		{"color", "red"},
		{"zIndex", 1},
	}, m)
	assert.True(t, IsObject(m[0].Value))
	assert.False(t, IsObject(m[1].Value))
}
