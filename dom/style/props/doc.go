/*
Package props is the property registry for inline braille styling.

The registry knows, for every supported property name, how to parse a
declaration for it, what its default value is and whether it is inherited
by default. It is composed of two parts:

- a host catalog of standard properties (type Catalog, loaded from YAML),
  and
- a dialect contributing prefixed extension properties, e.g. "-brl-".

Registry is the single entry point for clients. It dispatches every name to
the part responsible for it and keeps a stable ordinal numbering across
both.

Parsing is table driven: every property definition carries a Syntax tag,
which selects one of a fixed set of parse functions. Shorthands like
"margin" expand into their longhands during parsing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package props

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inlinestyle.props'.
func tracer() tracing.Trace {
	return tracing.Select("inlinestyle.props")
}
