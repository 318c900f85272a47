/*
Package dom provides a minimal host document for generated stylesheets.

Overview

Generated CSS rules have to live somewhere. In a browser this would be a
<style> element in the document's head, with its CSSStyleSheet object
accepting new rules through insertRule(…). This package provides the same
two operations on top of an HTML parse tree (golang.org/x/net/html):

    doc := dom.NewDocument()
    sheet := doc.CreateStyleSheet()               // appends <style> to <head>
    _, err := sheet.InsertRule(".a { color: red; }", sheet.Len())

Like a browser, a stylesheet rejects rule text which does not parse as
exactly one CSS rule. The text content of the <style> element is kept in
sync with the rule list, thus rendering the document (or extracting its
style elements) reflects all inserted rules.

Status

Early draft, API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'sx.dom'
func tracer() tracing.Trace {
	return tracing.Select("sx.dom")
}
