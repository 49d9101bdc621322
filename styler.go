package inlinestyle

import (
	"fmt"
	"sync"

	"github.com/npillmayer/inlinestyle/dom/style"
	"github.com/npillmayer/inlinestyle/dom/style/css"
	"github.com/npillmayer/inlinestyle/dom/style/cssom"
	"github.com/npillmayer/inlinestyle/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/inlinestyle/dom/style/props"
	"golang.org/x/net/html"
)

// Styler turns inline style text into style maps. A Styler holds no mutable
// state and may be used concurrently.
type Styler struct {
	registry *props.Registry
	parser   cssom.DeclarationParser
	origin   string
	media    string
}

// DefaultMedia is the media type a Styler targets unless configured
// otherwise.
const DefaultMedia = "embossed"

// Option configures a Styler.
type Option func(*Styler)

// WithRegistry sets the property registry. The default is the registry of
// standard and braille properties.
func WithRegistry(r *props.Registry) Option {
	return func(s *Styler) {
		s.registry = r
	}
}

// WithParser sets the declaration parser. The default is a parser based on
// douceur.
func WithParser(p cssom.DeclarationParser) Option {
	return func(s *Styler) {
		s.parser = p
	}
}

// WithOrigin sets the origin recorded for declarations. It has no effect
// if a parser is set with WithParser.
func WithOrigin(origin string) Option {
	return func(s *Styler) {
		s.origin = origin
	}
}

// WithMedia sets the media type to style for. New fails if the host
// catalog of the registry does not support it.
func WithMedia(media string) Option {
	return func(s *Styler) {
		s.media = media
	}
}

// New creates a Styler. It fails if the default registry is used and its
// property catalogs cannot be loaded, or if the media type is not supported
// by the registry.
func New(opts ...Option) (*Styler, error) {
	s := &Styler{}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		r, err := props.NewStandardRegistry()
		if err != nil {
			return nil, fmt.Errorf("cannot create property registry: %w", err)
		}
		s.registry = r
	}
	if s.media == "" {
		s.media = DefaultMedia
	}
	if !s.registry.IsSupportedMedia(s.media) {
		return nil, fmt.Errorf("%w: media type %q not supported", style.ErrValidation, s.media)
	}
	if s.parser == nil {
		s.parser = douceuradapter.NewParser(s.origin)
	}
	tracer().Debugf("styler for media %q", s.media)
	return s, nil
}

var defaultStyler struct {
	once   sync.Once
	styler *Styler
}

// Default returns a Styler with default settings. It panics if the embedded
// property catalogs are broken.
func Default() *Styler {
	defaultStyler.once.Do(func() {
		s, err := New()
		if err != nil {
			panic(err)
		}
		defaultStyler.styler = s
	})
	return defaultStyler.styler
}

// Registry returns the property registry of the styler.
func (s *Styler) Registry() *props.Registry {
	return s.registry
}

// Media returns the media type the styler targets.
func (s *Styler) Media() string {
	return s.media
}

// Style parses inline style text and creates a style map from it.
// If parent is nil, the style map is returned in state Built. Otherwise it
// inherits from parent and is returned concretized.
func (s *Styler) Style(text string, parent *css.StyleMap) (*css.StyleMap, error) {
	decls, err := s.parser.ParseInlineStyle(text)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("style %q has %d declaration(s)", text, len(decls))
	return s.StyleDeclarations(decls, parent), nil
}

// StyleDeclarations creates a style map from parsed declarations. See Style.
func (s *Styler) StyleDeclarations(decls []*style.Declaration, parent *css.StyleMap) *css.StyleMap {
	return css.NewStyleMap(s.registry, decls, parent)
}

// StyleElement creates a style map from the style attribute of an HTML
// element. Elements without a style attribute receive an empty style map,
// which may still inherit from parent.
func (s *Styler) StyleElement(n *html.Node, parent *css.StyleMap) (*css.StyleMap, error) {
	if n == nil || n.Type != html.ElementNode {
		return nil, fmt.Errorf("%w: can only style element nodes", style.ErrType)
	}
	text, _ := douceuradapter.StyleAttribute(n)
	return s.Style(text, parent)
}

// PropertyValue parses a single property value, e.g. ("text-indent", "2").
// Shorthand properties are rejected, as they resolve to more than one value.
func (s *Styler) PropertyValue(property, value string) (*css.PropertyValue, error) {
	d, err := s.parser.ParseDeclaration(property, value)
	if err != nil {
		return nil, err
	}
	return css.ParsePropertyValue(s.registry, d)
}

// Walk styles the element nodes of an HTML tree in document order, each
// element inheriting from its closest styled ancestor. fn is called with
// every element and its concretized style map; an error returned from fn
// stops the walk.
func (s *Styler) Walk(root *html.Node, fn func(*html.Node, *css.StyleMap) error) error {
	var walk func(n *html.Node, parent *css.StyleMap) error
	walk = func(n *html.Node, parent *css.StyleMap) error {
		if n.Type == html.ElementNode {
			styles, err := s.StyleElement(n, parent)
			if err != nil {
				return fmt.Errorf("element <%s>: %w", n.Data, err)
			}
			styles = styles.Concretize()
			if err = fn(n, styles); err != nil {
				return err
			}
			parent = styles
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := walk(c, parent); err != nil {
				return err
			}
		}
		return nil
	}
	if root == nil {
		return nil
	}
	return walk(root, nil)
}
