package css

import (
	"fmt"
	"strings"

	"github.com/npillmayer/inlinestyle/dom/style"
)

// DisplayMode is a type for CSS property "display".
//
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	ListItemMode    DisplayMode = 0x0010 // CSS list-item display
	TableMode       DisplayMode = 0x0020 // CSS table display property
	TableRowMode    DisplayMode = 0x0040 // row of a table
	TableCellMode   DisplayMode = 0x0080 // cell of a table row
	TocMode         DisplayMode = 0x0100 // braille table of contents
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, ListItemMode, TableMode, TableRowMode,
	TableCellMode, TocMode, InnerBlockMode, InnerInlineMode,
}

var displayModeNames = map[DisplayMode]string{
	NoMode:          "NoMode",
	DisplayNone:     "DisplayNone",
	BlockMode:       "BlockMode",
	InlineMode:      "InlineMode",
	ListItemMode:    "ListItemMode",
	TableMode:       "TableMode",
	TableRowMode:    "TableRowMode",
	TableCellMode:   "TableCellMode",
	TocMode:         "TocMode",
	InnerBlockMode:  "InnerBlockMode",
	InnerInlineMode: "InnerInlineMode",
}

// displayKeywords maps the keywords of property display to mode flags.
var displayKeywords = map[string]DisplayMode{
	"none":         DisplayNone,
	"block":        BlockMode | InnerBlockMode,
	"inline":       InlineMode | InnerInlineMode,
	"inline-block": InlineMode | InnerBlockMode,
	"list-item":    BlockMode | ListItemMode,
	"table":        BlockMode | TableMode,
	"table-row":    BlockMode | TableRowMode,
	"table-cell":   BlockMode | TableCellMode,
	"toc":          BlockMode | TocMode,
}

func (disp DisplayMode) String() string {
	if name, ok := displayModeNames[disp]; ok {
		return name
	}
	return fmt.Sprintf("DisplayMode(%#04x)", uint16(disp))
}

// IsBlockLevel return true if it has outer display level of BlockMode.
//
// A block-level element is defined as (from CSS 2.1):
// Block-level elements are those elements of the source document that are formatted visually
// as blocks (e.g., paragraphs). The following values of the 'display' property make an element
// block-level: 'block', 'list-item', and 'table'.
//
// Braille adds 'toc' and the table parts, which are laid out as blocks.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp&0x000f == BlockMode
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var modes []string
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			modes = append(modes, m.String())
		}
	}
	return strings.Join(modes, " ")
}

// Symbol returns a Unicode symbol for a mode. The most specific mode wins.
func (disp DisplayMode) Symbol() string {
	switch {
	case disp == NoMode:
		return "–"
	case disp.Contains(DisplayNone):
		return "∅"
	case disp.Contains(TocMode):
		return "☰"
	case disp.Contains(ListItemMode):
		return "▣"
	case disp.Contains(TableMode), disp.Contains(TableRowMode), disp.Contains(TableCellMode):
		return "▥"
	case disp.Contains(BlockMode):
		return "▩"
	case disp.Contains(InlineMode):
		return "►"
	}
	return "?"
}

// ParseDisplay returns mode flags from a display keyword (outer and inner).
func ParseDisplay(display string) (DisplayMode, error) {
	if display == "" {
		return NoMode, nil
	}
	if mode, ok := displayKeywords[display]; ok {
		return mode, nil
	}
	return NoMode, fmt.Errorf("%w: unknown display mode: %s", style.ErrValidation, display)
}

// DisplayModeOf returns the display mode flags of a style. Styles without
// a display value yield the mode of the registry default.
func DisplayModeOf(styles ComputedStyles) (DisplayMode, error) {
	v, ok := styles.GetValue("display")
	if !ok {
		return NoMode, nil
	}
	return ParseDisplay(v.String())
}
