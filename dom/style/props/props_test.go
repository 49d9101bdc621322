package props

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/inlinestyle/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decl(t *testing.T, property, value string) *style.Declaration {
	terms, err := style.ParseTerms(value)
	require.NoError(t, err, "cannot tokenize %q", value)
	return style.NewDeclaration(property, false, style.SourceLocation{Origin: "test"}, terms...)
}

func registry(t *testing.T) *Registry {
	r, err := NewStandardRegistry()
	require.NoError(t, err)
	return r
}

func TestStandardCatalogLoads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlinestyle.props")
	defer teardown()
	//
	c, err := Standard()
	require.NoError(t, err)
	require.NotNil(t, c)
	def, ok := c.Definition("orphans")
	require.True(t, ok)
	p, term := def.Initial()
	assert.Equal(t, Property{Kind: KindInteger}, p)
	assert.Equal(t, "2", term.String())
	assert.True(t, c.IsSupportedMedia("embossed"))
	assert.False(t, c.IsSupportedMedia("screen"))
}

func TestRegistryLookups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlinestyle.props")
	defer teardown()
	//
	r := registry(t)
	assert.True(t, r.IsSupported("margin-top"))
	assert.True(t, r.IsSupported("-brl-volume-break-before"))
	assert.False(t, r.IsSupported("-brl-no-such-thing"))
	assert.False(t, r.IsSupported("float"))
	assert.True(t, r.IsInherited("text-indent"))
	assert.False(t, r.IsInherited("margin-left"))
	assert.Equal(t, "inline", r.DefaultValue("display").String())
	p, ok := r.DefaultProperty("display")
	assert.True(t, ok)
	assert.Equal(t, Keyword("inline"), p)
	assert.Nil(t, r.DefaultValue("margin"), "shorthands have no default")
	assert.Equal(t, PGMargins, r.Group("margin-left"))
	assert.Equal(t, PGBraille, r.Group("-brl-underline"))
}

func TestRegistryOrdinals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlinestyle.props")
	defer teardown()
	//
	r := registry(t)
	host, _ := Standard()
	names := r.Names()
	require.Len(t, names, r.Len())
	for i, name := range names {
		if o := r.Ordinal(name); o != i {
			t.Errorf("expected ordinal of %s to be %d, is %d", name, i, o)
		}
	}
	first, ok := r.NameAt(host.Len())
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(first, "-brl-"), "dialect ordinals follow host ordinals")
	assert.Equal(t, -1, r.Ordinal("no-such-property"))
	_, ok = r.NameAt(r.Len())
	assert.False(t, ok)
}

type badDialect struct {
	*BrailleDialect
	prefix string
	names  []string
}

func (d badDialect) Prefix() string  { return d.prefix }
func (d badDialect) Names() []string { return d.names }

func TestRegistryNaming(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlinestyle.props")
	defer teardown()
	//
	host, _ := Standard()
	brl, _ := Braille()
	_, err := NewRegistry(host, badDialect{brl, "brl-", []string{"brl-x", "volume"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, style.ErrNaming))
	if n := len(strings.Split(err.Error(), ";")); n != 2 {
		t.Logf("error = %v", err)
		t.Errorf("expected naming errors for prefix and for 'volume', have %d", n)
	}
}
