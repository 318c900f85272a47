/*
Package registry owns the stylesheet generated styles are inserted into.

A Registry lazily creates its stylesheet on first use, by asking a host
(usually a dom.Document) to create and attach one. From then on, every
call to Insert appends the rules for a style map to the end of this
stylesheet, in the order they are produced by the flattener.

Registries have an explicit lifecycle: Reset drops the stylesheet and the
next insertion will create a fresh one. Tests will usually create a new
registry (and document) per test.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package registry

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sx.registry'.
func tracer() tracing.Trace {
	return tracing.Select("sx.registry")
}
