/*
Package css resolves inline styles.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting of (1) the textual nature of CSS properties
and (2) the complicated semantics of computing style attributes for a
given node.

A StyleMap collects the declarations of one element, keyed by property
name, and resolves them in up to three steps:

    Built → Inherited → Concretized

Inheriting copies inheritable properties from a parent element's style
and remembers the parent's values for properties explicitly declared as
'inherit'. Concretizing replaces every 'inherit' with the remembered value
or with the registry default. Each step returns a new StyleMap; style maps
are never modified in place, with the exception of RemoveProperty before
concretization.

Resolved values are handed out as PropertyValues, which have no mutators.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inlinestyle.css'.
func tracer() tracing.Trace {
	return tracing.Select("inlinestyle.css")
}
