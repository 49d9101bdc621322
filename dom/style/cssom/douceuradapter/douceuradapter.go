/*
Package douceuradapter is a concrete implementation of interface
cssom.DeclarationParser, based on github.com/aymerick/douceur.

Douceur splits style text into raw declarations. Values are then
tokenized into terms by package style.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/inlinestyle/dom/style"
	"github.com/npillmayer/inlinestyle/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'inlinestyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("inlinestyle.cssom")
}

// DefaultOrigin is the origin recorded for declarations of inline styles.
const DefaultOrigin = "style attribute"

// Parser is an adapter for interface cssom.DeclarationParser.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.DeclarationParser.
type Parser struct {
	origin string
}

var _ cssom.DeclarationParser = &Parser{}

// NewParser creates a parser. Declarations are tagged with origin as their
// source; an empty origin is replaced by DefaultOrigin.
func NewParser(origin string) *Parser {
	if origin == "" {
		origin = DefaultOrigin
	}
	return &Parser{origin: origin}
}

// ParseInlineStyle parses the content of a style attribute.
//
// Declarations with values which cannot be tokenized are dropped. An error is
// returned only if the text as a whole is malformed; it wraps
// style.ErrValidation.
//
// Interface cssom.DeclarationParser
func (p *Parser) ParseInlineStyle(text string) ([]*style.Declaration, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	// douceur loses the value of a last declaration without terminator
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}
	raw, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", style.ErrValidation, err)
	}
	decls := make([]*style.Declaration, 0, len(raw))
	for i, d := range raw {
		decl, err := p.convert(d, i)
		if err != nil {
			tracer().Debugf("dropping declaration %s: %v", d.String(), err)
			continue
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

// ParseDeclaration parses a single property value, e.g. ("margin", "1 2").
//
// Interface cssom.DeclarationParser
func (p *Parser) ParseDeclaration(property, value string) (*style.Declaration, error) {
	raw, err := parser.ParseDeclarations(property + ": " + value + ";")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", style.ErrValidation, err)
	}
	if len(raw) != 1 {
		return nil, fmt.Errorf("%w: expected a single declaration for %s, have %d",
			style.ErrValidation, property, len(raw))
	}
	return p.convert(raw[0], 0)
}

func (p *Parser) convert(d *css.Declaration, index int) (*style.Declaration, error) {
	if d.Property == "" || d.Value == "" {
		return nil, fmt.Errorf("%w: incomplete declaration", style.ErrValidation)
	}
	terms, err := style.ParseTerms(d.Value)
	if err != nil {
		return nil, err
	}
	src := style.SourceLocation{Origin: p.origin, Index: index}
	return style.NewDeclaration(d.Property, d.Important, src, terms...), nil
}

// StyleAttribute returns the value of an element's style attribute.
func StyleAttribute(n *html.Node) (string, bool) {
	if n == nil || n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, "style") {
			return a.Val, true
		}
	}
	return "", false
}
