package props

import (
	"fmt"
	"strings"

	"github.com/npillmayer/inlinestyle/dom/style"
	"go.uber.org/multierr"
)

// Registry is the property registry clients work with. It composes a host
// catalog of standard properties with a dialect of prefixed extension
// properties. Names carrying the dialect prefix are answered by the
// dialect, all other names by the host.
//
// Ordinals of host properties come first, followed by the dialect's
// properties in dialect order.
//
// A Registry is read-only after construction and may be shared between
// goroutines.
type Registry struct {
	host    Host
	dialect Dialect
	prefix  string
	names   []string // dialect names, in ordinal order
	index   map[string]int
}

// NewRegistry composes a registry. It checks the dialect's naming
// conventions: the prefix has to start and end with '-', every dialect
// property has to carry it, and no host property may. All violations are
// reported, each wrapping style.ErrNaming.
func NewRegistry(host Host, dialect Dialect) (*Registry, error) {
	if host == nil || dialect == nil {
		return nil, fmt.Errorf("%w: registry needs a host and a dialect", style.ErrType)
	}
	r := &Registry{
		host:    host,
		dialect: dialect,
		prefix:  dialect.Prefix(),
		names:   dialect.Names(),
		index:   make(map[string]int),
	}
	var errs error
	if len(r.prefix) < 3 || !strings.HasPrefix(r.prefix, "-") || !strings.HasSuffix(r.prefix, "-") {
		errs = multierr.Append(errs, fmt.Errorf("%w: dialect prefix %q must start and end with '-'",
			style.ErrNaming, r.prefix))
	}
	for i, name := range r.names {
		if !strings.HasPrefix(name, r.prefix) || len(name) == len(r.prefix) {
			errs = multierr.Append(errs, fmt.Errorf("%w: dialect property %q lacks prefix %q",
				style.ErrNaming, name, r.prefix))
		}
		r.index[name] = host.Len() + i
	}
	for i := 0; i < host.Len(); i++ {
		if name, _ := host.NameAt(i); r.prefix != "" && strings.HasPrefix(name, r.prefix) {
			errs = multierr.Append(errs, fmt.Errorf("%w: host property %q uses dialect prefix %q",
				style.ErrNaming, name, r.prefix))
		}
	}
	if errs != nil {
		tracer().Errorf("cannot compose property registry: %v", errs)
		return nil, errs
	}
	return r, nil
}

// Prefix returns the dialect prefix, e.g. "-brl-".
func (r *Registry) Prefix() string {
	return r.prefix
}

// IsDialect checks if a name belongs to the dialect's name space.
func (r *Registry) IsDialect(name string) bool {
	return strings.HasPrefix(name, r.prefix)
}

// Definition returns the definition of a supported property.
func (r *Registry) Definition(name string) (*Definition, bool) {
	if r.IsDialect(name) {
		return r.dialect.Definition(name)
	}
	return r.host.Definition(name)
}

// IsSupported checks if a property name is known to the registry.
func (r *Registry) IsSupported(name string) bool {
	_, ok := r.Definition(name)
	return ok
}

// IsSupportedMedia checks if the host supports a media type.
func (r *Registry) IsSupportedMedia(media string) bool {
	return r.host.IsSupportedMedia(media)
}

// DefaultProperty returns the property constant of a property's default.
func (r *Registry) DefaultProperty(name string) (Property, bool) {
	def, ok := r.Definition(name)
	if !ok || def.IsShorthand() {
		return Property{}, false
	}
	return def.initial, true
}

// DefaultValue returns a fresh copy of the default term of a property, or
// nil for unknown properties and shorthands.
func (r *Registry) DefaultValue(name string) style.Term {
	def, ok := r.Definition(name)
	if !ok || def.IsShorthand() {
		return nil
	}
	return style.CloneTerm(def.initialTerm)
}

// IsInherited checks if a property is inherited by default.
func (r *Registry) IsInherited(name string) bool {
	def, ok := r.Definition(name)
	return ok && def.Inherited
}

// Group returns the property group of a property, or PGX.
func (r *Registry) Group(name string) string {
	def, _ := r.Definition(name)
	return groupOf(def)
}

// Len returns the total number of supported properties.
func (r *Registry) Len() int {
	return r.host.Len() + len(r.names)
}

// Ordinal returns the ordinal of a property name, or -1.
func (r *Registry) Ordinal(name string) int {
	if r.IsDialect(name) {
		if o, ok := r.index[name]; ok {
			return o
		}
		return -1
	}
	if o, ok := r.host.Ordinal(name); ok {
		return o
	}
	return -1
}

// NameAt returns the property name for an ordinal.
func (r *Registry) NameAt(ordinal int) (string, bool) {
	if ordinal < r.host.Len() {
		return r.host.NameAt(ordinal)
	}
	i := ordinal - r.host.Len()
	if i >= len(r.names) {
		return "", false
	}
	return r.names[i], true
}

// Names returns all supported property names in ordinal order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.Len())
	for i := 0; i < r.Len(); i++ {
		name, _ := r.NameAt(i)
		names = append(names, name)
	}
	return names
}

// ParseDeclaration parses a declaration into property constants and terms,
// keyed by property name. Shorthands produce an entry for every longhand.
// Terms written to values are copies, owned by the caller.
//
// If the declaration is not recognized, ParseDeclaration returns false and
// props and values are left untouched.
func (r *Registry) ParseDeclaration(d style.ValueList, props map[string]Property,
	values map[string]style.Term) bool {
	//
	out := NewAssignment()
	var ok bool
	if r.IsDialect(d.Property()) {
		ok = r.dialect.ParseDeclaration(d, out)
	} else {
		ok = r.host.ParseDeclaration(d, out, r)
	}
	if !ok || out.Len() == 0 {
		tracer().Debugf("declaration not recognized: %s: %d term(s)", d.Property(), d.Len())
		return false
	}
	for name, p := range out.Props {
		props[name] = p
		if t, ok := out.Values[name]; ok {
			values[name] = t
		} else {
			delete(values, name)
		}
	}
	return true
}

// ParseContentTerm offers a content item to the dialect. It returns false
// if the dialect does not parse content items or rejects the term.
func (r *Registry) ParseContentTerm(term style.Term, owner *style.List) bool {
	if cp, ok := r.dialect.(ContentTermParser); ok {
		return cp.ParseContentTerm(term, owner)
	}
	return false
}

var _ ContentTermParser = &Registry{}

// NewStandardRegistry composes the standard catalog with the braille
// dialect.
func NewStandardRegistry() (*Registry, error) {
	host, err := Standard()
	if err != nil {
		return nil, err
	}
	dialect, err := Braille()
	if err != nil {
		return nil, err
	}
	return NewRegistry(host, dialect)
}
