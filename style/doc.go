/*
Package style holds the values clients use to describe styles.

Overview

A style is described by a StaticMap, i.e. an ordered list of
property-value pairs:

    style.M{
        {"color", "red"},
        {"backgroundColor", "green"},
        {":hover", style.M{{"color", "cyan"}}},
    }

Keys are written in camel case and converted to CSS property names
during rendering ("backgroundColor" => "background-color"). The order of
keys is significant: it determines the order of declarations and of
nested rules in the generated stylesheet. Values may either be flat
values (strings, numbers, booleans, fmt.Stringers) or nested maps for
selectors and at-rules.

Plain Go maps are accepted as well, but as Go maps do not have an
iteration order, their keys will be taken in sorted order.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'sx.style'
func tracer() tracing.Trace {
	return tracing.Select("sx.style")
}
