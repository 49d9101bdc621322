/*
Package style holds the raw material of inline styling: parsed value terms
and the declarations carrying them.

A declaration like

    margin-left: 2 !important

is represented by a Declaration with property "margin-left", an importance
flag and a list of terms. Terms are the smallest units of a value: idents,
numbers, strings, colors, URIs and functions. Declarations are read-only
once constructed; downstream packages resolve them against a property
registry (package props) and collect them into style maps (package css).

Errors

Package style defines the error kinds shared by all styling packages.
Clients test for them with errors.Is.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'inlinestyle.style'
func tracer() tracing.Trace {
	return tracing.Select("inlinestyle.style")
}
