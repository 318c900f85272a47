package rules

import (
	"strings"

	"github.com/npillmayer/sx/style"
)

// CSSText renders the rule as CSS text, ready for insertion into a
// stylesheet:
//
//     .sx-abc { color: red; background-color: green; }
//     @media print { .sx-abc { color: black; } }
//
// Declarations with falsy values are skipped.
func (r Rule) CSSText() string {
	decls := make([]string, 0, len(r.decls))
	for _, kv := range r.decls {
		if !style.IsTruthy(kv.Value) {
			continue
		}
		decls = append(decls, style.Kebab(kv.Key)+": "+style.Format(kv.Value).String()+";")
	}
	text := r.selector + " { " + strings.Join(decls, " ") + " }"
	if r.wrapper != "" {
		return r.wrapper + " { " + text + " }"
	}
	return text
}

func (r Rule) String() string {
	return r.CSSText()
}

// Render flattens a style map for selector and renders every resulting rule.
func Render(selector string, m style.M) []string {
	flat := Flatten(selector, m, "")
	texts := make([]string, len(flat))
	for i, r := range flat {
		texts[i] = r.CSSText()
	}
	return texts
}
