package cssom

import "github.com/npillmayer/inlinestyle/dom/style"

// DeclarationParser is an interface to abstract away a CSS parser.
// In order to de-couple implementations of CSS parsing from the
// construction of style maps, we introduce an interface for turning
// style text into declarations. Clients of the styling engine may provide
// a concrete implementation of this interface (e.g., see package
// douceuradapter).
//
// Implementations preserve the order of declarations; later declarations
// for the same property win during resolution.
type DeclarationParser interface {
	// ParseInlineStyle parses the content of a style attribute, e.g.
	// "display: block; margin-left: 2".
	ParseInlineStyle(text string) ([]*style.Declaration, error)
	// ParseDeclaration parses a single property value.
	ParseDeclaration(property, value string) (*style.Declaration, error)
}
