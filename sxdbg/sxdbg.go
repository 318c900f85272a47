/*
Package sxdbg implements helpers to debug generated style rules.

Rules are printed as a tree, grouped by their enclosing at-rule and their
selector:

    .
    ├── .sx-3kx0a9qz
    │   ├── color: red
    │   └── padding: 4px
    └── @media print
        └── .sx-3kx0a9qz
            └── color: black

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sxdbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/sx/cssom"
	"github.com/npillmayer/sx/style/rules"
	tp "github.com/xlab/treeprint"
)

// RuleTree prints flattened rules as a tree.
func RuleTree(rs []rules.Rule) string {
	sheet := make(cssom.Sheet, len(rs))
	for i, r := range rs {
		sheet[i] = r
	}
	return SheetTree(sheet)
}

// SheetTree prints the rules of a stylesheet as a tree. Rules sharing a
// wrapper are grouped under a common branch, in order of appearance.
func SheetTree(sheet cssom.StyleSheet) string {
	p := tp.New()
	if sheet == nil || sheet.Empty() {
		return p.String()
	}
	wrappers := make(map[string]tp.Tree)
	for _, r := range sheet.Rules() {
		branch := p
		if w := r.Wrapper(); w != "" {
			if branch = wrappers[w]; branch == nil {
				branch = p.AddBranch(w)
				wrappers[w] = branch
			}
		}
		ppr(branch, r)
	}
	return p.String()
}

func ppr(p tp.Tree, r cssom.Rule) {
	props := r.Properties()
	if len(props) == 0 {
		p.AddNode(r.Selector())
		return
	}
	branch := p.AddBranch(r.Selector())
	for _, key := range props {
		value := r.Value(key).String()
		decl := fmt.Sprintf("%s: %s", key, value)
		if r.IsImportant(key) && !strings.HasSuffix(value, "!important") {
			decl += " !important"
		}
		branch.AddNode(decl)
	}
}
