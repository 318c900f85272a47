package rules

import (
	"strings"

	"github.com/npillmayer/sx/style"
)

// Flatten expands a style map into a list of flat rules. The base rule for
// selector comes first, followed by the rules for nested selectors and
// at-rules in key order (depth first). wrapper is the enclosing at-rule,
// if any.
//
// Rules without any defined declaration are dropped.
func Flatten(selector string, m style.M, wrapper string) []Rule {
	base := Rule{selector: selector, wrapper: wrapper}
	var nested []Rule
	for _, kv := range m.Compact() {
		if !style.IsObject(kv.Value) {
			base.decls = append(base.decls, kv)
			continue
		}
		sub, ok := style.AsMap(kv.Value)
		switch {
		case !ok:
			tracer().Debugf("rules: ignoring list value for key %q", kv.Key)
		case strings.HasPrefix(kv.Key, "@"):
			nested = append(nested, Flatten(selector, sub, kv.Key)...)
		case isNestedSelector(kv.Key):
			nested = append(nested, Flatten(combine(selector, kv.Key), sub, wrapper)...)
		default:
			tracer().Debugf("rules: ignoring nested key %q of %s", kv.Key, selector)
		}
	}
	rules := make([]Rule, 0, len(nested)+1)
	if !base.IsEmpty() {
		rules = append(rules, base)
	}
	for _, r := range nested {
		if !r.IsEmpty() {
			rules = append(rules, r)
		}
	}
	return rules
}

// isNestedSelector is true for keys starting with one of ':', '>', '.', '*'.
func isNestedSelector(key string) bool {
	return key != "" && strings.IndexByte(":>.*", key[0]) >= 0
}

// combine appends a nested selector to its parent. Pseudo selectors are
// attached directly, all others are separated by a space.
func combine(parent, key string) string {
	if key[0] == ':' {
		return parent + key
	}
	return parent + " " + key
}
