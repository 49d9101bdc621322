package css

import (
	"errors"
	"testing"

	"github.com/npillmayer/inlinestyle/dom/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayKeywordsOfCatalog(t *testing.T) {
	def, ok := registry(t).Definition("display")
	require.True(t, ok)
	for _, kw := range def.Keywords {
		mode, err := ParseDisplay(kw)
		if assert.NoError(t, err, "display: %s", kw) {
			assert.NotEqual(t, "?", mode.Symbol(), "display: %s", kw)
		}
	}
	_, err := ParseDisplay("flex")
	assert.True(t, errors.Is(err, style.ErrValidation))
}

func TestDisplayModeSymbols(t *testing.T) {
	r := registry(t)
	for text, symbol := range map[string]string{
		"display: toc":        "☰",
		"display: table-cell": "▥",
		"display: list-item":  "▣",
		"display: none":       "∅",
		"display: block":      "▩",
		"":                    "►",
	} {
		mode, err := DisplayModeOf(build(t, r, text, nil))
		require.NoError(t, err)
		assert.Equal(t, symbol, mode.Symbol(), "symbol for %q", text)
	}
	mode, _ := ParseDisplay("table-row")
	assert.True(t, mode.IsBlockLevel())
	assert.Equal(t, "BlockMode TableRowMode", mode.FullString())
	assert.Equal(t, "–", NoMode.Symbol())
}
