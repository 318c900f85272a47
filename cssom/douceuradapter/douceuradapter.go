/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It is used by hosting documents to check rule text before it is inserted
into a live stylesheet, and by tests to inspect stylesheets.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/sx/cssom"
	"github.com/npillmayer/sx/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
func (sheet *CSSStyles) AppendRules(other *CSSStyles) {
	sheet.css.Rules = append(sheet.css.Rules, other.css.Rules...)
}

// Rules returns all the rules of a stylesheet. Rules nested in at-rules
// are returned individually, with the at-rule as their wrapper.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		rules = appendRule(rules, r, "")
	}
	return rules
}

func appendRule(rules []cssom.Rule, r *css.Rule, wrapper string) []cssom.Rule {
	if r == nil {
		return rules
	}
	if r.Kind == css.AtRule && len(r.Rules) > 0 {
		w := strings.TrimSpace(r.Name + " " + r.Prelude)
		for _, nested := range r.Rules {
			rules = appendRule(rules, nested, w)
		}
		return rules
	}
	return append(rules, Rule{rule: r, wrapper: wrapper})
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	rule    *css.Rule
	wrapper string
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return strings.TrimSpace(r.rule.Prelude)
}

// Wrapper returns the enclosing at-rule, if any.
func (r Rule) Wrapper() string {
	return r.wrapper
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.rule.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) style.Property {
	decl := r.rule.Declarations
	for _, d := range decl {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.rule.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = Rule{}

// --- Rule checking ---------------------------------------------------------

// ParseRule parses text which has to hold exactly one CSS rule, either a
// qualified rule with a non-empty selector or an at-rule.
func ParseRule(text string) (*css.Rule, error) {
	if err := scan(text); err != nil {
		return nil, err
	}
	c, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	if len(c.Rules) != 1 {
		return nil, fmt.Errorf("expected a single rule, found %d", len(c.Rules))
	}
	r := c.Rules[0]
	switch r.Kind {
	case css.QualifiedRule:
		if strings.TrimSpace(r.Prelude) == "" {
			return nil, errors.New("rule has no selector")
		}
	case css.AtRule:
		if strings.TrimSpace(r.Name) == "" {
			return nil, errors.New("at-rule has no name")
		}
	}
	return r, nil
}

// scan tokenizes text and checks for bad tokens and unbalanced braces.
func scan(text string) error {
	s := scanner.New(text)
	depth := 0
	for {
		token := s.Next()
		switch token.Type {
		case scanner.TokenEOF:
			if depth != 0 {
				return errors.New("unbalanced braces")
			}
			return nil
		case scanner.TokenError:
			return fmt.Errorf("bad token at %d:%d: %q", token.Line, token.Column, token.Value)
		case scanner.TokenChar:
			switch token.Value {
			case "{":
				depth++
			case "}":
				depth--
				if depth < 0 {
					return errors.New("unbalanced braces")
				}
			}
		}
	}
}

// --- Matching --------------------------------------------------------------

// MatchingRules returns the rules of a stylesheet whose selector matches
// an HTML element. Wrappers (e.g., media queries) are not evaluated.
// Rules with selectors which cannot be evaluated statically, like
// ":hover", are skipped.
func MatchingRules(sheet cssom.StyleSheet, n *html.Node) []cssom.Rule {
	if sheet == nil || n == nil {
		return nil
	}
	var matching []cssom.Rule
	for _, r := range sheet.Rules() {
		sel, err := cascadia.Compile(r.Selector())
		if err != nil {
			tracer().Debugf("douceuradapter: cannot match selector %q: %v", r.Selector(), err)
			continue
		}
		if sel.Match(n) {
			matching = append(matching, r)
		}
	}
	return matching
}

// --- Style elements --------------------------------------------------------

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	css = append(css, extractStyles(body)...)
	return css
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style {
			continue
		}
		text := ""
		if ch.FirstChild != nil {
			text = ch.FirstChild.Data
		}
		c, err := parser.Parse(text)
		if err != nil {
			tracer().Errorf("douceuradapter: cannot parse style element: %v", err)
			break
		}
		css = append(css, Wrap(c))
	}
	return css
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
