package rules

import (
	"testing"

	"github.com/npillmayer/sx/style"
	"github.com/stretchr/testify/assert"
)

func TestRenderKebabCase(t *testing.T) {
	r := New(".x", style.M{{Key: "backgroundColor", Value: "green"}, {Key: "WebkitTransition", Value: "none"}}, "")
	assert.Equal(t, ".x { background-color: green; -webkit-transition: none; }", r.CSSText())
	assert.Equal(t, r.CSSText(), r.String())
}

func TestRenderWrapped(t *testing.T) {
	r := New(".x", style.M{{Key: "color", Value: "red"}}, "@supports (display: grid)")
	assert.Equal(t, "@supports (display: grid) { .x { color: red; } }", r.CSSText())
}

func TestRender(t *testing.T) {
	got := Render(".x", style.M{{Key: "color", Value: "red"}, {Key: ":hover", Value: style.M{{Key: "color", Value: "cyan"}}}})
	assert.Equal(t, []string{".x { color: red; }", ".x:hover { color: cyan; }"}, got)
}
