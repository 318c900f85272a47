/*
Package rules expands nested style maps into flat CSS rules and renders them
as CSS text.

A style map may contain nested maps for pseudo-classes, descendant
selectors and at-rules:

    style.M{
        {"color", "red"},
        {":hover", style.M{{"color", "cyan"}}},
        {".child", style.M{{"margin", "2px"}}},
        {"@media print", style.M{{"color", "black"}}},
    }

Flattening this map with selector ".a" results in four rules, which render as

    .a { color: red; }
    .a:hover { color: cyan; }
    .a .child { margin: 2px; }
    @media print { .a { color: black; } }

Keys holding a nested map which neither start with "@" nor with one of
":", ">", ".", "*" are ignored.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rules

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sx.rules'.
func tracer() tracing.Trace {
	return tracing.Select("sx.rules")
}
