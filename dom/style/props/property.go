package props

import "github.com/npillmayer/inlinestyle/dom/style"

// Kind classifies resolved property values.
type Kind uint8

// Kinds of resolved property values. KindNone is the zero value and never
// produced by parsing.
const (
	KindNone Kind = iota
	KindInherit
	KindKeyword
	KindInteger
	KindColor
	KindString
	KindList
	KindFunction
)

var kindNames = [...]string{
	KindNone:     "none",
	KindInherit:  "inherit",
	KindKeyword:  "keyword",
	KindInteger:  "integer",
	KindColor:    "color",
	KindString:   "string",
	KindList:     "list",
	KindFunction: "function",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Property is a resolved property constant. For keyword values the keyword
// itself is the complete value. For other kinds the value is carried by
// a term, and Property only tells which kind of term to expect.
//
// Properties are comparable with ==.
type Property struct {
	Kind    Kind
	Keyword string // set for KindKeyword only
}

// Inherit is the property constant for the 'inherit' placeholder.
var Inherit = Property{Kind: KindInherit}

// Keyword creates a keyword property constant.
func Keyword(kw string) Property {
	return Property{Kind: KindKeyword, Keyword: kw}
}

// String returns the canonical string of a property constant: the keyword
// for keyword properties, the kind name otherwise.
func (p Property) String() string {
	if p.Kind == KindKeyword {
		return p.Keyword
	}
	return p.Kind.String()
}

// IsInherit denotes if a property is of inheritence-type "inherit".
func (p Property) IsInherit() bool {
	return p.Kind == KindInherit
}

// IsValid is false for the zero value.
func (p Property) IsValid() bool {
	return p.Kind != KindNone
}

// carriesTerm tells if a value of this kind needs a term to be complete.
// Keywords and 'inherit' are complete without one.
func (p Property) carriesTerm() bool {
	return p.Kind != KindKeyword && p.Kind != KindInherit
}

// expansionTerm returns the term to store for a longhand produced by
// expanding a shorthand.
func expansionTerm(p Property, t style.Term) style.Term {
	if !p.carriesTerm() {
		return nil
	}
	return style.CloneTerm(t)
}
