package rules

import (
	"strings"

	"github.com/npillmayer/sx/cssom"
	"github.com/npillmayer/sx/style"
)

// Rule is a single flat CSS rule: a selector, its declarations and an
// optional enclosing at-rule (the wrapper).
type Rule struct {
	selector string
	decls    style.M // flat values only
	wrapper  string
}

// New creates a rule. decls must not contain nested maps.
func New(selector string, decls style.M, wrapper string) Rule {
	return Rule{selector: selector, decls: decls, wrapper: wrapper}
}

// Selector returns the selector of the rule, e.g. ".sx-abc:hover".
func (r Rule) Selector() string {
	return r.selector
}

// Wrapper returns the enclosing at-rule, or "" for top-level rules.
func (r Rule) Wrapper() string {
	return r.wrapper
}

// Declarations returns the raw declarations of the rule, including those
// which will not be rendered.
func (r Rule) Declarations() style.M {
	return r.decls
}

// IsEmpty is true if no declaration holds a defined value.
func (r Rule) IsEmpty() bool {
	for _, kv := range r.decls {
		if style.IsDefined(kv.Value) {
			return false
		}
	}
	return true
}

// Properties returns the CSS property keys of all rendered declarations,
// e.g. "margin-top".
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.decls))
	for _, kv := range r.decls {
		if style.IsTruthy(kv.Value) {
			props = append(props, style.Kebab(kv.Key))
		}
	}
	return props
}

// Value returns the property value for a CSS property key, e.g. "15px".
func (r Rule) Value(key string) style.Property {
	for i := len(r.decls) - 1; i >= 0; i-- {
		kv := r.decls[i]
		if style.Kebab(kv.Key) == key && style.IsTruthy(kv.Value) {
			return style.Format(kv.Value)
		}
	}
	return style.NullStyle
}

// IsImportant returns true if a property value is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	v := strings.TrimSpace(r.Value(key).String())
	return strings.HasSuffix(v, "!important")
}

var _ cssom.Rule = Rule{}
