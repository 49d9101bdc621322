package css

import (
	"fmt"

	"github.com/npillmayer/inlinestyle/dom/style"
	"github.com/npillmayer/inlinestyle/dom/style/props"
)

// PropertyValue is one resolved property assignment. It is a read-only
// view: there are no mutators, and terms handed out are not shared with
// any StyleMap.
//
// A PropertyValue may be used wherever a declaration is expected: it is a
// value list of length 1, holding the display term. If the value was set
// by expanding a shorthand (e.g. padding-top from "padding: inherit"), the
// display term is a read-only identifier naming the property constant. It
// rejects every modification with style.ErrImmutable, but parses like any
// other identifier when the property value is resolved again.
type PropertyValue struct {
	name    string
	prop    props.Property
	value   style.Term // nil for keyword values set by expansion
	display style.Term
	source  style.ValueList
}

var _ style.ValueList = &PropertyValue{}

// NewPropertyValue creates a property value for property name. value may be
// nil; source is the declaration the value originates from and must not
// be nil.
//
// If value is nil and source is a declaration for name, the declaration's
// sole term is displayed. Otherwise a read-only identifier is synthesized
// from prop.
func NewPropertyValue(name string, prop props.Property, value style.Term, source style.ValueList) *PropertyValue {
	if source == nil {
		panic(fmt.Sprintf("css: property value for %q without source declaration", name))
	}
	pv := &PropertyValue{name: name, prop: prop, value: value, source: source}
	pv.display = pv.deriveDisplay()
	return pv
}

func (pv *PropertyValue) deriveDisplay() style.Term {
	if pv.value != nil {
		return pv.value
	}
	if pv.source.Property() == pv.name {
		if t := pv.source.Term(0); t != nil {
			return t
		}
	}
	return style.NewReadOnlyIdent(pv.prop.String())
}

// ParsePropertyValue resolves a single declaration with a registry. The
// declaration must not be a shorthand, as shorthands resolve to more than
// one value.
func ParsePropertyValue(registry *props.Registry, d style.ValueList) (*PropertyValue, error) {
	pmap := make(map[string]props.Property)
	vmap := make(map[string]style.Term)
	if !registry.ParseDeclaration(d, pmap, vmap) {
		return nil, fmt.Errorf("%w: declaration for %q not recognized", style.ErrValidation, d.Property())
	}
	p, ok := pmap[d.Property()]
	if !ok {
		return nil, fmt.Errorf("%w: %q does not resolve to a single value", style.ErrValidation, d.Property())
	}
	return NewPropertyValue(d.Property(), p, vmap[d.Property()], d), nil
}

// Property returns the property name.
func (pv *PropertyValue) Property() string { return pv.name }

// CSSProperty returns the resolved property constant.
func (pv *PropertyValue) CSSProperty() props.Property { return pv.prop }

// Value returns the value term, or nil if the value is fully described by
// the property constant.
func (pv *PropertyValue) Value() style.Term { return pv.value }

// SourceDeclaration returns the declaration the value originates from.
func (pv *PropertyValue) SourceDeclaration() style.ValueList { return pv.source }

// IsImportant delegates to the source declaration.
func (pv *PropertyValue) IsImportant() bool { return pv.source.IsImportant() }

// Source delegates to the source declaration.
func (pv *PropertyValue) Source() style.SourceLocation { return pv.source.Source() }

// Len is always 1.
func (pv *PropertyValue) Len() int { return 1 }

// Term returns the display term for i = 0 and nil otherwise.
func (pv *PropertyValue) Term(i int) style.Term {
	if i != 0 {
		return nil
	}
	return pv.display
}

// Compare orders by importance: important values are greater than
// non-important ones, and values of equal importance compare equal.
func (pv *PropertyValue) Compare(other style.ValueList) int {
	return style.CompareImportance(pv, other)
}

// Clone returns a copy with a deep copy of the value term. Property
// constant and source declaration are shared, as both are immutable.
func (pv *PropertyValue) Clone() *PropertyValue {
	return NewPropertyValue(pv.name, pv.prop, style.CloneTerm(pv.value), pv.source)
}

func (pv *PropertyValue) String() string {
	return pv.name + ": " + pv.display.String()
}
