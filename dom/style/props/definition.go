package props

import (
	"fmt"
	"strings"

	"github.com/npillmayer/inlinestyle/dom/style"
	"gopkg.in/yaml.v3"
)

// Syntax selects the parse function for a property. The set of syntaxes is
// closed; see the dispatch table in dispatch.go.
type Syntax uint8

// Supported property syntaxes.
const (
	SyntaxKeyword   Syntax = iota // one keyword
	SyntaxInteger                 // integer ≥ min, or a keyword
	SyntaxColor                   // hex color or named color keyword
	SyntaxIdentList               // keyword, or a space separated list of idents
	SyntaxContent                 // generated content items
	SyntaxCounter                 // ident [integer] pairs, or 'none'
	SyntaxStringSet               // comma separated ident + content items
	SyntaxListStyle               // keyword, string or symbols()
	SyntaxFourSides               // shorthand for top/right/bottom/left
	syntaxCount
)

var syntaxNames = [...]string{
	SyntaxKeyword:   "keyword",
	SyntaxInteger:   "integer",
	SyntaxColor:     "color",
	SyntaxIdentList: "ident-list",
	SyntaxContent:   "content",
	SyntaxCounter:   "counter",
	SyntaxStringSet: "string-set",
	SyntaxListStyle: "list-style",
	SyntaxFourSides: "four-sides",
}

func (s Syntax) String() string {
	if s < syntaxCount {
		return syntaxNames[s]
	}
	return fmt.Sprintf("Syntax(%d)", uint8(s))
}

// ParseSyntax returns the syntax for a syntax name.
func ParseSyntax(name string) (Syntax, error) {
	for s, n := range syntaxNames {
		if n == name {
			return Syntax(s), nil
		}
	}
	return 0, fmt.Errorf("unknown property syntax %q", name)
}

// UnmarshalYAML reads a syntax from its name.
func (s *Syntax) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	syn, err := ParseSyntax(strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = syn
	return nil
}

// Definition describes a supported property. Definitions are loaded from
// catalog data and are read-only afterwards.
type Definition struct {
	Name      string   `yaml:"name"`
	Syntax    Syntax   `yaml:"syntax"`
	Keywords  []string `yaml:"keywords"`
	Min       *int     `yaml:"min"`     // lower bound for integers
	Default   string   `yaml:"default"` // textual default value
	Inherited bool     `yaml:"inherited"`
	Group     string   `yaml:"group"`   // property group, see PGMargins etc.
	Expands   []string `yaml:"expands"` // longhands of a shorthand

	initial     Property
	initialTerm style.Term
}

// IsShorthand is true for properties expanding into longhands.
func (def *Definition) IsShorthand() bool {
	return len(def.Expands) > 0
}

// Initial returns the default property and a copy of the default term.
// Shorthands have no default.
func (def *Definition) Initial() (Property, style.Term) {
	return def.initial, style.CloneTerm(def.initialTerm)
}

func (def *Definition) hasKeyword(kw string) bool {
	for _, k := range def.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// single resolves a one-term value for keyword, integer and color syntaxes.
func (def *Definition) single(t style.Term) (Property, bool) {
	if id, ok := t.(*style.Ident); ok {
		if def.hasKeyword(id.Value()) {
			return Keyword(id.Value()), true
		}
		return Property{}, false
	}
	switch def.Syntax {
	case SyntaxInteger:
		if n, ok := t.(*style.Integer); ok && (def.Min == nil || n.Value() >= *def.Min) {
			return Property{Kind: KindInteger}, true
		}
	case SyntaxColor:
		if _, ok := t.(*style.Color); ok {
			return Property{Kind: KindColor}, true
		}
	}
	return Property{}, false
}

// --- Property groups --------------------------------------------------

// Symbolic names for property groups. Every definition belongs to exactly
// one group; groups are used for organizing debug output.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGText      = "Text"
	PGList      = "List"
	PGPaging    = "Paging"
	PGGenerated = "Generated"
	PGBraille   = "Braille"
	PGX         = "X"
)

// groupOf returns the property group name for a property definition.
// Definitions without a group are assigned to group "X".
func groupOf(def *Definition) string {
	if def == nil || def.Group == "" {
		return PGX
	}
	return def.Group
}
