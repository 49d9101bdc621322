package props

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/npillmayer/inlinestyle/dom/style"
)

// Dialect contributes extension properties to a registry. All of its
// property names start with Prefix, which starts and ends with '-'.
//
// A dialect may in addition implement ContentTermParser to accept content
// items of its own in standard properties like 'content'.
type Dialect interface {
	Prefix() string
	Definition(name string) (*Definition, bool)
	Names() []string // in ordinal order
	ParseDeclaration(d style.ValueList, out Assignment) bool
}

// BrailleDialect is the dialect of braille specific properties, prefixed
// with "-brl-". It accepts the braille content functions
//
//     leader(pattern [, position [, alignment]])
//     flow(name)
//     target-counter(target, counter [, style])
//     target-string(target, name)
//     target-text(target)
//
// where target is a url() or an attr() function.
type BrailleDialect struct {
	catalog *Catalog
}

var _ Dialect = &BrailleDialect{}
var _ ContentTermParser = &BrailleDialect{}

//go:embed braille.yaml
var brailleCatalogData []byte

var brailleDialect struct {
	once    sync.Once
	dialect *BrailleDialect
	err     error
}

// Braille returns the braille dialect. It is loaded once and shared.
func Braille() (*BrailleDialect, error) {
	brailleDialect.once.Do(func() {
		var c *Catalog
		c, brailleDialect.err = LoadCatalog(bytes.NewReader(brailleCatalogData))
		if brailleDialect.err == nil {
			brailleDialect.dialect = &BrailleDialect{catalog: c}
		}
	})
	return brailleDialect.dialect, brailleDialect.err
}

// Prefix returns "-brl-".
func (b *BrailleDialect) Prefix() string {
	return "-brl-"
}

// Definition is part of interface Dialect.
func (b *BrailleDialect) Definition(name string) (*Definition, bool) {
	return b.catalog.Definition(name)
}

// Names is part of interface Dialect.
func (b *BrailleDialect) Names() []string {
	return b.catalog.Names()
}

// ParseDeclaration is part of interface Dialect. Content valued dialect
// properties accept the braille content functions.
func (b *BrailleDialect) ParseDeclaration(d style.ValueList, out Assignment) bool {
	return b.catalog.ParseDeclaration(d, out, b)
}

// ParseContentTerm is part of interface ContentTermParser.
func (b *BrailleDialect) ParseContentTerm(term style.Term, owner *style.List) bool {
	f, ok := term.(*style.Function)
	if !ok {
		return false
	}
	valid := false
	switch f.Name() {
	case "leader":
		_, pattern := f.Arg(0).(*style.Quoted)
		valid = pattern && f.Len() <= 3
	case "flow":
		_, name := f.Arg(0).(*style.Ident)
		valid = name && f.Len() == 1
	case "target-counter":
		_, counter := f.Arg(1).(*style.Ident)
		valid = isTarget(f.Arg(0)) && counter && f.Len() <= 3
	case "target-string":
		_, name := f.Arg(1).(*style.Ident)
		valid = isTarget(f.Arg(0)) && name && f.Len() == 2
	case "target-text":
		valid = isTarget(f.Arg(0)) && f.Len() == 1
	}
	if !valid {
		return false
	}
	owner.Append(f.Clone())
	return true
}

func isTarget(t style.Term) bool {
	switch v := t.(type) {
	case *style.URI:
		return true
	case *style.Function:
		return v.Name() == "attr" && v.Len() == 1
	}
	return false
}
