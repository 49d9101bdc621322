/*
Package inlinestyle resolves inline styles of braille-formatted documents.

Inline styles are the contents of style attributes, e.g.

    <p style="display: block; margin-left: 2; -brl-volume-break-before: always">

Package inlinestyle ties together the parts of the styling engine: a
declaration parser (package cssom/douceuradapter), a property registry
of standard and dialect properties (package props), and style maps which
perform inheritance and concretization of values (package css).

A Styler is the entry point for clients:

    styler := inlinestyle.Default()
    parent, err := styler.Style("text-indent: 2; margin: 1", nil)
    child, err := styler.Style("text-indent: inherit", parent)
    v, _ := child.GetValue("text-indent")   // => 2

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inlinestyle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'inlinestyle'
func tracer() tracing.Trace {
	return tracing.Select("inlinestyle")
}
