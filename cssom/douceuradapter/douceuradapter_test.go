package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParseRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.dom")
	defer teardown()
	//
	r, err := ParseRule(".a { color: red; background-color: green; }")
	require.NoError(t, err)
	rule := Rule{rule: r}
	assert.Equal(t, ".a", rule.Selector())
	assert.Equal(t, []string{"color", "background-color"}, rule.Properties())
	assert.Equal(t, "green", rule.Value("background-color").String())
}

func TestParseRuleRejects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.dom")
	defer teardown()
	//
	for _, text := range []string{
		"",
		"   ",
		"{ color: red; }",
		".a { color: red;",
		".a { color: red; } }",
		".a { color: red; } .b { color: blue; }",
	} {
		_, err := ParseRule(text)
		assert.Error(t, err, "expected %q to be rejected", text)
	}
}

func TestRulesUnwrapsAtRules(t *testing.T) {
	sheet, err := Parse(".a { color: red; } @media print { .a { color: black; } }")
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "", rules[0].Wrapper())
	assert.Equal(t, "@media print", rules[1].Wrapper())
	assert.Equal(t, ".a", rules[1].Selector())
	assert.Equal(t, "black", rules[1].Value("color").String())
}

func TestMatchingRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sx.dom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(
		`<html><body><div class="sx-1"><span class="child">x</span></div></body></html>`))
	require.NoError(t, err)
	span := findByClass(doc, "child")
	require.NotNil(t, span)
	sheet, err := Parse(".sx-1 { color: red; } .sx-1 .child { color: blue; } .sx-1 .child:hover { color: cyan; }")
	require.NoError(t, err)
	matching := MatchingRules(sheet, span)
	require.Len(t, matching, 1)
	assert.Equal(t, ".sx-1 .child", matching[0].Selector())
}

func TestExtractStyleElements(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(
		`<html><head><style>.a { color: red; }</style></head><body><style>.b { margin: 0; }</style></body></html>`))
	require.NoError(t, err)
	sheets := ExtractStyleElements(doc)
	require.Len(t, sheets, 2)
	assert.False(t, sheets[0].Empty())
	sheets[0].AppendRules(sheets[1])
	assert.Len(t, sheets[0].Rules(), 2)
}

func findByClass(n *html.Node, class string) *html.Node {
	for _, a := range n.Attr {
		if a.Key == "class" && a.Val == class {
			return n
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if f := findByClass(ch, class); f != nil {
			return f
		}
	}
	return nil
}
