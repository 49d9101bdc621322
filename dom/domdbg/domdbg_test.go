package domdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/inlinestyle/dom/style/css"
	"github.com/npillmayer/inlinestyle/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/inlinestyle/dom/style/props"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styles(t *testing.T, text string, parent *css.StyleMap) *css.StyleMap {
	r, err := props.NewStandardRegistry()
	require.NoError(t, err)
	decls, err := douceuradapter.NewParser("").ParseInlineStyle(text)
	require.NoError(t, err)
	return css.NewStyleMap(r, decls, parent)
}

func TestTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlinestyle.style")
	defer teardown()
	//
	s := styles(t, "margin-left: 2; text-indent: 1; orphans: 3 !important", nil)
	out := Tree(s).String()
	t.Logf("\n%s", out)
	assert.Contains(t, out, "built ►", "default display is inline")
	assert.Contains(t, out, "Margins")
	assert.Contains(t, out, "margin-left: 2")
	assert.Contains(t, out, "[!]")
	assert.Contains(t, out, "orphans: 3")
	assert.Less(t, strings.Index(out, "Margins"), strings.Index(out, "Text"), "groups are sorted")
	//
	out = Tree(s, props.PGText).String()
	assert.NotContains(t, out, "margin-left")
	assert.Contains(t, out, "text-indent: 1")
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlinestyle.style")
	defer teardown()
	//
	parent := styles(t, "text-indent: 4; margin: 1; color: #f80; display: toc", nil).Concretize()
	child := styles(t, "display: block", parent)
	var b strings.Builder
	require.NoError(t, ToGraphViz([]*css.StyleMap{parent, child}, &b, nil))
	out := b.String()
	t.Logf("\n%s", out)
	assert.True(t, strings.HasPrefix(out, "digraph g {"))
	assert.Contains(t, out, "s0 -> s1;")
	assert.Contains(t, out, `text-indent: 4\l`)
	assert.Contains(t, out, "Display: display: block")
	assert.Contains(t, out, `s0 [color="#ff8800" label="{concretized ☰|`)
	assert.Contains(t, out, `s1 [color="#ff8800" label="{concretized ▩|`, "color is inherited")
}
