package douceuradapter

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sx.dom'.
func tracer() tracing.Trace {
	return tracing.Select("sx.dom")
}
