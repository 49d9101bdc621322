package css

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/inlinestyle/dom/style"
	"github.com/npillmayer/inlinestyle/dom/style/props"
)

// State is the resolution state of a StyleMap.
type State uint8

// States of a style map. Transitions only go forward.
const (
	Built       State = iota // declarations collected
	Inherited                // values of a parent style merged in
	Concretized              // 'inherit' resolved; read-only
)

func (st State) String() string {
	switch st {
	case Built:
		return "built"
	case Inherited:
		return "inherited"
	case Concretized:
		return "concretized"
	}
	return "?"
}

// ComputedStyles is a read-only view of the styles of an element.
type ComputedStyles interface {
	Get(name string) (*PropertyValue, bool)
	GetValue(name string) (style.Term, bool)
	Names() []string
	Len() int
}

// entry is the resolved assignment for one property name.
type entry struct {
	prop   props.Property
	value  style.Term // nil for keyword values set by expansion
	source style.ValueList
}

func (e entry) clone() entry {
	return entry{prop: e.prop, value: style.CloneTerm(e.value), source: e.source}
}

// equals compares the resolved values, ignoring provenance.
func (e entry) equals(other entry) bool {
	return e.prop == other.prop && style.EqualTerms(e.value, other.value)
}

// StyleMap holds the styles of one element, keyed by property name. Names
// are always longhands; shorthand declarations are expanded.
//
// Style maps are values: InheritFrom and Concretize return new instances and
// never modify the receiver. Terms are never shared between instances.
// Style maps in any state may be read concurrently.
type StyleMap struct {
	registry *props.Registry
	state    State
	entries  map[string]entry
	lineage  map[string]entry // parent values for entries declared 'inherit'
}

var _ ComputedStyles = &StyleMap{}

// NewStyleMap collects declarations into a style map. Declarations are
// applied in order, with later declarations overwriting earlier ones for
// the same property. Declarations the registry does not recognize are
// dropped.
//
// Without a parent, the new style map is in state Built and the caller
// decides when to concretize. With a parent, the style map inherits from the
// concretized parent and is concretized, i.e., it is returned in state
// Concretized.
func NewStyleMap[D style.ValueList](registry *props.Registry, decls []D, parent *StyleMap) *StyleMap {
	if registry == nil {
		panic("css: style map needs a property registry")
	}
	s := &StyleMap{
		registry: registry,
		state:    Built,
		entries:  make(map[string]entry, len(decls)),
	}
	for _, d := range decls {
		pmap := make(map[string]props.Property)
		vmap := make(map[string]style.Term)
		if !registry.ParseDeclaration(d, pmap, vmap) {
			tracer().Debugf("dropping declaration for %q", d.Property())
			continue
		}
		for name, p := range pmap {
			s.entries[name] = entry{prop: p, value: vmap[name], source: d}
		}
	}
	if parent == nil {
		return s
	}
	return s.inherit(parent.Concretize()).Concretize()
}

// Registry returns the property registry of this style map.
func (s *StyleMap) Registry() *props.Registry {
	return s.registry
}

// State returns the resolution state.
func (s *StyleMap) State() State {
	return s.state
}

// InheritFrom returns a style map with values merged in from a parent style.
// Properties not declared in s are copied from parent if they are
// inherited by default. Properties declared 'inherit' in s remember the
// parent's value, to be used by Concretize; this works for properties which
// are not inherited by default as well.
//
// InheritFrom may only be called on style maps in state Built; otherwise it
// fails with style.ErrState. The parent has to be a *StyleMap; otherwise
// style.ErrType is returned.
func (s *StyleMap) InheritFrom(parent ComputedStyles) (*StyleMap, error) {
	switch s.state {
	case Inherited:
		return nil, fmt.Errorf("%w: style map has already inherited from a parent", style.ErrState)
	case Concretized:
		return nil, fmt.Errorf("%w: cannot inherit into a concretized style map", style.ErrState)
	}
	p, ok := parent.(*StyleMap)
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: parent style of type %T, expected *css.StyleMap", style.ErrType, parent)
	}
	return s.inherit(p), nil
}

func (s *StyleMap) inherit(parent *StyleMap) *StyleMap {
	child := s.derive(Inherited)
	for name, pe := range parent.entries {
		own, declared := child.entries[name]
		switch {
		case declared && own.prop.IsInherit():
			child.lineage[name] = parent.resolve(name, pe).clone()
		case !declared && s.registry.IsInherited(name):
			child.entries[name] = parent.resolve(name, pe).clone()
		}
	}
	tracer().Debugf("inherited %d value(s) from parent", len(child.entries)-len(s.entries)+len(child.lineage))
	return child
}

// Concretize returns a style map with every 'inherit' value replaced, either
// by the value inherited from the parent or by the registry default.
// The result is in state Concretized. For a style map already in this
// state, Concretize returns the receiver.
func (s *StyleMap) Concretize() *StyleMap {
	if s.state == Concretized {
		return s
	}
	c := s.derive(Concretized)
	for name, e := range c.entries {
		if e.prop.IsInherit() {
			c.entries[name] = c.resolve(name, e)
		}
	}
	c.lineage = nil
	return c
}

// resolve returns the concrete entry for e. For entries other than 'inherit'
// this is e itself.
func (s *StyleMap) resolve(name string, e entry) entry {
	if !e.prop.IsInherit() {
		return e
	}
	if le, ok := s.lineage[name]; ok {
		return le
	}
	p, _ := s.registry.DefaultProperty(name)
	return entry{prop: p, value: s.registry.DefaultValue(name), source: e.source}
}

// derive creates a deep copy in a given state.
func (s *StyleMap) derive(state State) *StyleMap {
	d := &StyleMap{
		registry: s.registry,
		state:    state,
		entries:  make(map[string]entry, len(s.entries)),
		lineage:  make(map[string]entry, len(s.lineage)),
	}
	for name, e := range s.entries {
		d.entries[name] = e.clone()
	}
	for name, e := range s.lineage {
		d.lineage[name] = e.clone()
	}
	return d
}

// Clone returns a deep copy of s, in the same state.
func (s *StyleMap) Clone() *StyleMap {
	return s.derive(s.state)
}

// Get returns the property value for a property name, if set.
func (s *StyleMap) Get(name string) (*PropertyValue, bool) {
	e, ok := s.entries[name]
	if !ok {
		return nil, false
	}
	return NewPropertyValue(name, e.prop, style.CloneTerm(e.value), e.source), true
}

// GetValue returns a copy of the value term for a property name. If the
// property is not set, the registry default is returned. Values fully
// described by their property constant (see Property) have no term.
func (s *StyleMap) GetValue(name string) (style.Term, bool) {
	if e, ok := s.entries[name]; ok {
		if e.value == nil {
			return nil, false
		}
		return e.value.Clone(), true
	}
	if t := s.registry.DefaultValue(name); t != nil {
		return t, true
	}
	return nil, false
}

// Property returns the property constant for a property name. If the
// property is not set, the registry default is returned.
func (s *StyleMap) Property(name string) (props.Property, bool) {
	if e, ok := s.entries[name]; ok {
		return e.prop, true
	}
	return s.registry.DefaultProperty(name)
}

// RemoveProperty deletes a property. This is permitted only before the
// style map is concretized; afterwards style.ErrImmutable is returned.
// RemoveProperty must not be called concurrently with reads.
func (s *StyleMap) RemoveProperty(name string) error {
	if s.state == Concretized {
		return fmt.Errorf("%w: cannot remove %q from concretized style map", style.ErrImmutable, name)
	}
	delete(s.entries, name)
	delete(s.lineage, name)
	return nil
}

// Values returns all property values, in no particular order.
func (s *StyleMap) Values() []*PropertyValue {
	values := make([]*PropertyValue, 0, len(s.entries))
	for name := range s.entries {
		pv, _ := s.Get(name)
		values = append(values, pv)
	}
	return values
}

// Names returns the names of all set properties, sorted.
func (s *StyleMap) Names() []string {
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of set properties.
func (s *StyleMap) Len() int {
	return len(s.entries)
}

// IsEmpty is true if no property is set.
func (s *StyleMap) IsEmpty() bool {
	return len(s.entries) == 0
}

// Equals compares the resolved values of two style maps. Source
// declarations, importance and state are not considered.
func (s *StyleMap) Equals(other *StyleMap) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.entries) != len(other.entries) {
		return false
	}
	for name, e := range s.entries {
		o, ok := other.entries[name]
		if !ok || !e.equals(o) {
			return false
		}
	}
	return true
}

// String renders the style map as "name: value" pairs, sorted by name and
// separated by "; ".
func (s *StyleMap) String() string {
	var b strings.Builder
	for i, name := range s.Names() {
		if i > 0 {
			b.WriteString("; ")
		}
		e := s.entries[name]
		b.WriteString(name)
		b.WriteString(": ")
		if e.value != nil {
			b.WriteString(e.value.String())
		} else {
			b.WriteString(e.prop.String())
		}
	}
	return b.String()
}
