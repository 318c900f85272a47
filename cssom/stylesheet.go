package cssom

import "github.com/npillmayer/sx/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Rules are returned in the order they appear in the stylesheet. Rules
// nested in an at-rule are returned individually, with the at-rule
// available as their wrapper.
//
// See interface Rule.
type StyleSheet interface {
	Empty() bool   // does this stylesheet contain any rules?
	Rules() []Rule // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Wrapper() string             // enclosing at-rule, e.g. "@media print", or ""
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// Sheet is a stylesheet implemented by a slice of rules.
type Sheet []Rule

// Empty checks if this stylesheet contains any rules.
func (s Sheet) Empty() bool {
	return len(s) == 0
}

// Rules returns all the rules of a stylesheet.
func (s Sheet) Rules() []Rule {
	return s
}

var _ StyleSheet = Sheet{}
