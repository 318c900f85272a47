/*
Package sx compiles style descriptions into CSS class names.

Overview

Clients describe a style as an ordered map of CSS properties. Package sx
allocates a unique class name for it, converts the map into CSS rules and
inserts them into a stylesheet of a host document. What clients get back is
the class name to put on their elements:

    c := sx.New()
    button, err := c.CSS(style.M{
        {"color", "white"},
        {"backgroundColor", "navy"},
        {":hover", style.M{{"backgroundColor", "blue"}}},
    })
    cls, _ := button.Class()   // e.g. "sx-2fkq0r1m"

Styles may depend on arguments. A function returning a style map compiles
to a dynamic style, which computes a class name per invocation. Every
distinct computed style gets its own class name and rules; identical
results are served from a cache:

    bg, _ := c.CSS(sx.StyleFunc(func(args ...any) style.M {
        if len(args) == 0 {
            return nil
        }
        return style.M{{"background", args[0]}}
    }))
    blue, _ := bg.Class("blue")

Several styles may be combined into one, which will be dynamic if any of
its parts is:

    both, _ := c.CSS(button, bg)
    cls, _ = both.Class("green")  // "sx-2fkq0r1m sx-9a0bc1de-1"

Status

Early draft, API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sx.compiler'.
func tracer() tracing.Trace {
	return tracing.Select("sx.compiler")
}
