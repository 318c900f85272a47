package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/sx/cssom"
	"github.com/npillmayer/sx/cssom/douceuradapter"
	"golang.org/x/net/html"
)

// ErrSyntax is returned if rule text does not parse as a single CSS rule.
var ErrSyntax = errors.New("dom: syntax error in CSS rule")

// ErrIndexSize is returned for rule indices outside of a rule list.
var ErrIndexSize = errors.New("dom: rule index out of range")

// StyleSheet is the live rule list of a <style> element.
type StyleSheet struct {
	owner *html.Node
	rules []liveRule
}

type liveRule struct {
	text   string
	parsed *css.Rule
}

// Node returns the <style> element owning the stylesheet.
func (sheet *StyleSheet) Node() *html.Node {
	return sheet.owner
}

// Attached is true as long as the <style> element is part of a document.
func (sheet *StyleSheet) Attached() bool {
	return sheet.owner != nil && sheet.owner.Parent != nil
}

// Len returns the number of rules in the stylesheet.
func (sheet *StyleSheet) Len() int {
	return len(sheet.rules)
}

// InsertRule parses text as a single CSS rule and inserts it at position
// index, which must be in the range 0…Len(). It returns the index of the
// inserted rule.
//
// Malformed rule text results in ErrSyntax and leaves the stylesheet
// unchanged.
func (sheet *StyleSheet) InsertRule(text string, index int) (int, error) {
	if index < 0 || index > len(sheet.rules) {
		return 0, fmt.Errorf("%w: cannot insert at %d, sheet has %d rules", ErrIndexSize, index, len(sheet.rules))
	}
	parsed, err := douceuradapter.ParseRule(text)
	if err != nil {
		tracer().Errorf("dom: rejecting rule %q", text)
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	sheet.rules = append(sheet.rules, liveRule{})
	copy(sheet.rules[index+1:], sheet.rules[index:])
	sheet.rules[index] = liveRule{text: text, parsed: parsed}
	sheet.sync()
	tracer().Debugf("dom: inserted rule #%d: %s", index, text)
	return index, nil
}

// DeleteRule removes the rule at position index.
func (sheet *StyleSheet) DeleteRule(index int) error {
	if index < 0 || index >= len(sheet.rules) {
		return fmt.Errorf("%w: cannot delete %d, sheet has %d rules", ErrIndexSize, index, len(sheet.rules))
	}
	sheet.rules = append(sheet.rules[:index], sheet.rules[index+1:]...)
	sheet.sync()
	return nil
}

// Clear removes all rules.
func (sheet *StyleSheet) Clear() {
	sheet.rules = sheet.rules[:0]
	sheet.sync()
}

// CSSRules returns the text of every rule, in stylesheet order.
func (sheet *StyleSheet) CSSRules() []string {
	texts := make([]string, len(sheet.rules))
	for i, r := range sheet.rules {
		texts[i] = r.text
	}
	return texts
}

// CSSText returns all rules, separated by a single space.
func (sheet *StyleSheet) CSSText() string {
	return strings.Join(sheet.CSSRules(), " ")
}

// CSSOM returns the parsed rules for inspection.
func (sheet *StyleSheet) CSSOM() cssom.StyleSheet {
	parsed := make([]*css.Rule, len(sheet.rules))
	for i, r := range sheet.rules {
		parsed[i] = r.parsed
	}
	return douceuradapter.Wrap(&css.Stylesheet{Rules: parsed})
}

// sync writes the rule texts into the text node of the <style> element.
func (sheet *StyleSheet) sync() {
	if sheet.owner == nil {
		return
	}
	text := sheet.owner.FirstChild
	if text == nil || text.Type != html.TextNode {
		text = &html.Node{Type: html.TextNode}
		sheet.owner.InsertBefore(text, sheet.owner.FirstChild)
	}
	text.Data = strings.Join(sheet.CSSRules(), "\n")
}
