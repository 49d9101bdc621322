package props

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/npillmayer/inlinestyle/dom/style"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Host is the registry of standard properties. A Registry consults it for
// every name not carrying the dialect prefix.
//
// Catalog is the default implementation.
type Host interface {
	Definition(name string) (*Definition, bool)
	Ordinal(name string) (int, bool)
	NameAt(ordinal int) (string, bool)
	Len() int
	IsSupportedMedia(media string) bool
	ParseDeclaration(d style.ValueList, out Assignment, content ContentTermParser) bool
}

// Assignment receives the result of parsing a declaration: a property
// constant per name and, where needed, a term per name.
type Assignment struct {
	Props  map[string]Property
	Values map[string]style.Term
}

// NewAssignment creates an empty assignment.
func NewAssignment() Assignment {
	return Assignment{
		Props:  make(map[string]Property),
		Values: make(map[string]style.Term),
	}
}

// Set assigns a property and an optional term to a name. A nil term
// removes a previously set term.
func (a Assignment) Set(name string, p Property, t style.Term) {
	a.Props[name] = p
	if t == nil {
		delete(a.Values, name)
	} else {
		a.Values[name] = t
	}
}

// Len returns the number of assigned names.
func (a Assignment) Len() int {
	return len(a.Props)
}

// Catalog is a table of property definitions, loaded from YAML. Ordinals
// follow the order of definitions in the catalog source.
type Catalog struct {
	defs  []*Definition
	index map[string]int
	media map[string]bool
}

var _ Host = &Catalog{}

type catalogFile struct {
	Media      []string      `yaml:"media"`
	Properties []*Definition `yaml:"properties"`
}

// LoadCatalog reads a catalog from YAML. Every definition is validated and
// its default value is parsed with the definition's own syntax; all
// problems found are reported together.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: cannot decode property catalog: %v", style.ErrValidation, err)
	}
	return newCatalog(f.Media, f.Properties)
}

func newCatalog(media []string, defs []*Definition) (*Catalog, error) {
	c := &Catalog{
		defs:  defs,
		index: make(map[string]int, len(defs)),
		media: make(map[string]bool, len(media)),
	}
	for _, m := range media {
		c.media[m] = true
	}
	var errs error
	for i, def := range defs {
		if def == nil || def.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: definition #%d has no name", style.ErrValidation, i))
			continue
		}
		if _, dup := c.index[def.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("%w: duplicate definition of %q", style.ErrValidation, def.Name))
			continue
		}
		c.index[def.Name] = i
	}
	if errs != nil {
		return nil, errs
	}
	for _, def := range defs {
		errs = multierr.Append(errs, c.prepare(def))
	}
	if errs != nil {
		return nil, errs
	}
	tracer().Debugf("loaded property catalog with %d definitions", len(defs))
	return c, nil
}

// prepare checks a definition and derives its default value.
func (c *Catalog) prepare(def *Definition) error {
	if def.Syntax >= syntaxCount {
		return fmt.Errorf("%w: %s: illegal syntax %d", style.ErrValidation, def.Name, def.Syntax)
	}
	if def.Syntax == SyntaxFourSides {
		if len(def.Expands) != 4 {
			return fmt.Errorf("%w: shorthand %s must expand into 4 longhands", style.ErrValidation, def.Name)
		}
		var errs error
		for _, n := range def.Expands {
			if ld, ok := c.Definition(n); !ok || ld.IsShorthand() {
				errs = multierr.Append(errs, fmt.Errorf("%w: shorthand %s: %q is not a longhand",
					style.ErrValidation, def.Name, n))
			}
		}
		if def.Default != "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: shorthand %s must not have a default",
				style.ErrValidation, def.Name))
		}
		return errs
	}
	if def.IsShorthand() {
		return fmt.Errorf("%w: %s: syntax %s cannot expand", style.ErrValidation, def.Name, def.Syntax)
	}
	terms, err := style.ParseTerms(def.Default)
	if err != nil {
		return fmt.Errorf("default of %s: %w", def.Name, err)
	}
	src := style.SourceLocation{Origin: "default"}
	d := style.NewDeclaration(def.Name, false, src, terms...)
	out := NewAssignment()
	if d.Len() == 0 || !dispatch[def.Syntax](c, def, d, out, nil) {
		return fmt.Errorf("%w: %s: illegal default %q", style.ErrValidation, def.Name, def.Default)
	}
	def.initial, def.initialTerm = out.Props[def.Name], out.Values[def.Name]
	if def.initialTerm == nil {
		def.initialTerm = d.Term(0).Clone()
	}
	return nil
}

// Definition returns the definition for a property name.
func (c *Catalog) Definition(name string) (*Definition, bool) {
	if i, ok := c.index[name]; ok {
		return c.defs[i], true
	}
	return nil, false
}

// Ordinal returns the position of a name within the catalog.
func (c *Catalog) Ordinal(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// NameAt returns the name with a given ordinal.
func (c *Catalog) NameAt(ordinal int) (string, bool) {
	if ordinal < 0 || ordinal >= len(c.defs) {
		return "", false
	}
	return c.defs[ordinal].Name, true
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Names returns all property names in ordinal order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.defs))
	for i, def := range c.defs {
		names[i] = def.Name
	}
	return names
}

// IsSupportedMedia checks if a media type is listed in the catalog.
func (c *Catalog) IsSupportedMedia(media string) bool {
	return c.media[media]
}

// ParseDeclaration parses a declaration for a property of this catalog.
// 'inherit' and 'initial' are handled for every property; everything else
// is dispatched on the property's syntax. Terms put into out are copies.
// content may be nil.
//
// Returns false if the declaration is not recognized. out may then contain
// partial results and should be discarded.
func (c *Catalog) ParseDeclaration(d style.ValueList, out Assignment, content ContentTermParser) bool {
	def, ok := c.Definition(d.Property())
	if !ok || d.Len() == 0 {
		return false
	}
	if d.Len() == 1 {
		t := d.Term(0)
		if style.IsIdent(t, "inherit") {
			if def.IsShorthand() {
				for _, n := range def.Expands {
					out.Set(n, Inherit, nil)
				}
			} else {
				out.Set(def.Name, Inherit, t.Clone())
			}
			return true
		}
		if style.IsIdent(t, "initial") {
			if def.IsShorthand() {
				for _, n := range def.Expands {
					ld, _ := c.Definition(n)
					out.Set(n, ld.initial, expansionTerm(ld.initial, ld.initialTerm))
				}
			} else {
				p, t := def.Initial()
				out.Set(def.Name, p, t)
			}
			return true
		}
	}
	return dispatch[def.Syntax](c, def, d, out, content)
}

// --- Standard catalog -------------------------------------------------

//go:embed standard.yaml
var standardCatalogData []byte

var standardCatalog struct {
	once    sync.Once
	catalog *Catalog
	err     error
}

// Standard returns the catalog of standard braille CSS properties. It is
// loaded once and shared; catalogs are never modified after loading.
func Standard() (*Catalog, error) {
	standardCatalog.once.Do(func() {
		standardCatalog.catalog, standardCatalog.err = LoadCatalog(bytes.NewReader(standardCatalogData))
	})
	return standardCatalog.catalog, standardCatalog.err
}
