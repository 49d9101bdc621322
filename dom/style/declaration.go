package style

import (
	"fmt"
	"strings"
)

// SourceLocation tells where a declaration came from. Inline styles have no
// line information; Index is the position of the declaration within its
// block.
type SourceLocation struct {
	Origin string // e.g., "style attribute" or a file name
	Line   int    // 1-based; 0 if unknown
	Index  int    // 0-based position within the declaration block
}

func (loc SourceLocation) String() string {
	if loc.Line > 0 {
		return fmt.Sprintf("%s:%d", loc.Origin, loc.Line)
	}
	return fmt.Sprintf("%s#%d", loc.Origin, loc.Index)
}

// ValueList is the read-only view of a declaration: a property name with an
// ordered list of terms. Resolved property values implement it as well, so
// they may be used wherever a raw declaration is expected.
type ValueList interface {
	Property() string       // property name, lower case
	IsImportant() bool      // declared with "!important"?
	Source() SourceLocation // where the declaration came from
	Len() int               // number of terms
	Term(int) Term          // term i or nil
}

// Declaration is a parsed CSS declaration, e.g.
//
//     margin-left: 2 !important
//
// Declarations are immutable; all state is set at construction time.
type Declaration struct {
	property  string
	important bool
	source    SourceLocation
	terms     []Term
}

var _ ValueList = &Declaration{}

// NewDeclaration creates a declaration. The property name is converted to
// lower case. Terms are owned by the declaration after this call.
func NewDeclaration(property string, important bool, source SourceLocation, terms ...Term) *Declaration {
	return &Declaration{
		property:  strings.ToLower(strings.TrimSpace(property)),
		important: important,
		source:    source,
		terms:     terms,
	}
}

// Property returns the property name.
func (d *Declaration) Property() string { return d.property }

// IsImportant returns true if the declaration carries "!important".
func (d *Declaration) IsImportant() bool { return d.important }

// Source returns the source location of the declaration.
func (d *Declaration) Source() SourceLocation { return d.source }

// Len returns the number of terms.
func (d *Declaration) Len() int { return len(d.terms) }

// Term returns term i, or nil if i is out of range.
func (d *Declaration) Term(i int) Term {
	if i < 0 || i >= len(d.terms) {
		return nil
	}
	return d.terms[i]
}

// Terms returns a copy of the term slice. Terms themselves are shared.
func (d *Declaration) Terms() []Term {
	return append([]Term(nil), d.terms...)
}

// Value renders the terms of the declaration.
func (d *Declaration) Value() string {
	return renderTerms(d.terms)
}

func (d *Declaration) String() string {
	if d.important {
		return d.property + ": " + d.Value() + " !important"
	}
	return d.property + ": " + d.Value()
}

// CompareImportance orders value lists by importance only: an important
// list is greater than a non-important one. The result is 0 for equal
// importance, 1 if a is greater and -1 otherwise.
func CompareImportance(a, b ValueList) int {
	switch {
	case a.IsImportant() == b.IsImportant():
		return 0
	case a.IsImportant():
		return 1
	}
	return -1
}
