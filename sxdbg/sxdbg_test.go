package sxdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sx/cssom/douceuradapter"
	"github.com/npillmayer/sx/style"
	"github.com/npillmayer/sx/style/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.rules")
	defer teardown()
	//
	rs := rules.Flatten(".sx-a", style.M{
		{Key: "color", Value: "red"},
		{Key: ":hover", Value: style.M{{Key: "color", Value: "blue"}}},
		{Key: "@media print", Value: style.M{{Key: "color", Value: "black"}}},
	}, "")
	tree := RuleTree(rs)
	t.Logf("\n%s", tree)
	assert.Contains(t, tree, ".sx-a:hover")
	assert.Contains(t, tree, "@media print")
	assert.Contains(t, tree, "color: blue")
	assert.Equal(t, 1, strings.Count(tree, "@media print"))
}

func TestRuleTreeImportant(t *testing.T) {
	rs := rules.Flatten(".a", style.M{{Key: "marginTop", Value: "4px !important"}}, "")
	tree := RuleTree(rs)
	t.Logf("\n%s", tree)
	assert.Contains(t, tree, "margin-top: 4px !important")
	assert.Equal(t, 1, strings.Count(tree, "!important"))
}

func TestSheetTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.dom")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(`
	.a { margin-top: 4px !important; }
	@media print { .a { color: black; } .b { color: gray; } }
	`)
	require.NoError(t, err)
	tree := SheetTree(sheet)
	t.Logf("\n%s", tree)
	assert.Contains(t, tree, "margin-top: 4px !important")
	assert.Equal(t, 1, strings.Count(tree, "!important"))
	assert.Contains(t, tree, "color: gray")
	assert.Equal(t, 1, strings.Count(tree, "@media print"))
}

func TestSheetTreeEmpty(t *testing.T) {
	tree := SheetTree(nil)
	assert.NotContains(t, tree, "─")
}
