package css

import (
	"errors"
	"testing"

	"github.com/npillmayer/inlinestyle/dom/style"
	"github.com/npillmayer/inlinestyle/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/inlinestyle/dom/style/props"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registry(t *testing.T) *props.Registry {
	r, err := props.NewStandardRegistry()
	require.NoError(t, err)
	return r
}

func declarations(t *testing.T, text string) []*style.Declaration {
	decls, err := douceuradapter.NewParser("test").ParseInlineStyle(text)
	require.NoError(t, err)
	return decls
}

func build(t *testing.T, r *props.Registry, text string, parent *StyleMap) *StyleMap {
	return NewStyleMap(r, declarations(t, text), parent)
}

func value(t *testing.T, s *StyleMap, name string) string {
	v, ok := s.GetValue(name)
	require.True(t, ok, "expected a value for %s", name)
	return v.String()
}

func TestBuildStyleMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlinestyle.css")
	defer teardown()
	//
	r := registry(t)
	s := build(t, r, "display: flex; orphans: 2; orphans: 4; margin: 1 2", nil)
	assert.Equal(t, Built, s.State())
	assert.Equal(t, 5, s.Len(), "flex is dropped, margin expands into 4 longhands")
	assert.Equal(t, "4", value(t, s, "orphans"), "later declaration wins")
	_, ok := s.Get("display")
	assert.False(t, ok)
	_, ok = s.Get("margin")
	assert.False(t, ok, "shorthands are never keys of a style map")
}

func TestConcretizeIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlinestyle.css")
	defer teardown()
	//
	s := build(t, registry(t), "text-indent: inherit", nil)
	c := s.Concretize()
	assert.NotSame(t, s, c, "concretize must not modify its receiver")
	assert.Same(t, c, c.Concretize())
	assert.Equal(t, Concretized, c.State())
	assert.Equal(t, Built, s.State())
}

func TestInheritIsNotReentrant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlinestyle.css")
	defer teardown()
	//
	r := registry(t)
	parent := build(t, r, "color: red", nil).Concretize()
	s := build(t, r, "orphans: 3", nil)
	inh, err := s.InheritFrom(parent)
	require.NoError(t, err)
	assert.Equal(t, Inherited, inh.State())
	_, err = inh.InheritFrom(parent)
	assert.True(t, errors.Is(err, style.ErrState), "second inherit must fail, has err = %v", err)
	_, err = inh.Concretize().InheritFrom(parent)
	assert.True(t, errors.Is(err, style.ErrState))
}

type foreignStyles struct{}

func (foreignStyles) Get(string) (*PropertyValue, bool)    { return nil, false }
func (foreignStyles) GetValue(string) (style.Term, bool) { return nil, false }
func (foreignStyles) Names() []string                     { return nil }
func (foreignStyles) Len() int                            { return 0 }

func TestInheritFromForeignType(t *testing.T) {
	s := build(t, registry(t), "orphans: 3", nil)
	_, err := s.InheritFrom(foreignStyles{})
	assert.True(t, errors.Is(err, style.ErrType))
	_, err = s.InheritFrom(nil)
	assert.True(t, errors.Is(err, style.ErrType))
	var nilMap *StyleMap
	_, err = s.InheritFrom(nilMap)
	assert.True(t, errors.Is(err, style.ErrType))
}

func TestDefaultFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlinestyle.css")
	defer teardown()
	//
	s := NewStyleMap(registry(t), []*style.Declaration{}, nil).Concretize()
	assert.True(t, s.IsEmpty())
	_, ok := s.Get("orphans")
	assert.False(t, ok)
	assert.Equal(t, "2", value(t, s, "orphans"))
	p, ok := s.Property("display")
	assert.True(t, ok)
	assert.Equal(t, props.Keyword("inline"), p)
	_, ok = s.GetValue("no-such-property")
	assert.False(t, ok)
}

func TestInheritanceFiltering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlinestyle.css")
	defer teardown()
	//
	r := registry(t)
	parent := build(t, r, "color: red; margin-top: 2", nil)
	child := NewStyleMap(r, []*style.Declaration{}, parent)
	assert.Equal(t, Concretized, child.State())
	assert.Equal(t, "red", value(t, child, "color"))
	_, ok := child.Get("margin-top")
	assert.False(t, ok, "margin-top is not inherited")
	assert.Equal(t, 1, child.Len())
}

func TestInheritLiteralResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlinestyle.css")
	defer teardown()
	//
	r := registry(t)
	parent := build(t, r, "color: blue; margin-left: 3", nil)
	child := build(t, r, "color: inherit; margin-left: inherit; text-indent: inherit", parent)
	assert.Equal(t, "blue", value(t, child, "color"))
	assert.Equal(t, "3", value(t, child, "margin-left"), "explicit inherit works for non-inherited properties")
	assert.Equal(t, "0", value(t, child, "text-indent"), "without a parent value the default is used")
	pv, ok := child.Get("margin-left")
	require.True(t, ok)
	assert.Equal(t, props.Property{Kind: props.KindInteger}, pv.CSSProperty())
	assert.Equal(t, "margin-left: 3", pv.String())
}

func TestInheritFromUnconcretizedParent(t *testing.T) {
	r := registry(t)
	grandparent := build(t, r, "text-indent: 4", nil)
	parent, err := build(t, r, "text-indent: inherit", nil).InheritFrom(grandparent)
	require.NoError(t, err)
	child, err := build(t, r, "orphans: 3", nil).InheritFrom(parent)
	require.NoError(t, err)
	assert.Equal(t, "4", value(t, child.Concretize(), "text-indent"))
}

func TestEqualityIgnoresProvenance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlinestyle.css")
	defer teardown()
	//
	r := registry(t)
	a := build(t, r, "margin: 2 !important", nil)
	b := build(t, r, "margin-top: 2; margin-right: 2; margin-bottom: 2; margin-left: 2", nil)
	assert.True(t, a.Equals(b))
	assert.True(t, a.Concretize().Equals(b), "state is not part of equality")
	c := build(t, r, "margin: 2 3", nil)
	assert.False(t, a.Equals(c))
}

func TestDeterministicRendering(t *testing.T) {
	r := registry(t)
	a := build(t, r, "widows: 2; orphans: 1", nil)
	b := build(t, r, "orphans: 1; widows: 2", nil)
	assert.Equal(t, "orphans: 1; widows: 2", a.String())
	assert.Equal(t, a.String(), b.String())
	p := build(t, r, "padding: inherit", nil)
	assert.Equal(t, "padding-bottom: inherit; padding-left: inherit; padding-right: inherit; padding-top: inherit",
		p.String())
}

func TestCloneIsolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlinestyle.css")
	defer teardown()
	//
	s := build(t, registry(t), "text-indent: 2", nil)
	c := s.Clone()
	m, ok := c.entries["text-indent"].value.(style.Mutable)
	require.True(t, ok)
	require.NoError(t, m.SetValue("5"))
	assert.Equal(t, "5", value(t, c, "text-indent"))
	assert.Equal(t, "2", value(t, s, "text-indent"))
	//
	v, _ := s.GetValue("text-indent")
	require.NoError(t, v.(style.Mutable).SetValue("7"))
	assert.Equal(t, "2", value(t, s, "text-indent"), "values handed out must not alias map terms")
}

func TestRemoveProperty(t *testing.T) {
	r := registry(t)
	s := build(t, r, "orphans: 3; widows: 3", nil)
	require.NoError(t, s.RemoveProperty("orphans"))
	assert.Equal(t, 1, s.Len())
	c := s.Concretize()
	err := c.RemoveProperty("widows")
	assert.True(t, errors.Is(err, style.ErrImmutable))
	assert.Equal(t, 1, c.Len())
}

func TestValuesAndNames(t *testing.T) {
	s := build(t, registry(t), "orphans: 3; -brl-volume-break-before: always", nil)
	assert.Equal(t, []string{"-brl-volume-break-before", "orphans"}, s.Names())
	values := s.Values()
	require.Len(t, values, 2)
	for _, pv := range values {
		assert.Equal(t, 1, pv.Len())
		assert.Equal(t, "test", pv.Source().Origin)
	}
}

func TestDisplayModeOf(t *testing.T) {
	r := registry(t)
	mode, err := DisplayModeOf(build(t, r, "display: list-item", nil))
	require.NoError(t, err)
	assert.True(t, mode.IsBlockLevel())
	assert.True(t, mode.Contains(ListItemMode))
	mode, err = DisplayModeOf(build(t, r, "", nil).Concretize())
	require.NoError(t, err)
	assert.Equal(t, InlineMode|InnerInlineMode, mode, "default display is inline")
	assert.Equal(t, "InlineMode InnerInlineMode", mode.FullString())
}
