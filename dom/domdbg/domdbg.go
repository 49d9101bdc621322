/*
Package domdbg implements helpers to debug resolved styles.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/npillmayer/inlinestyle/dom/style"
	"github.com/npillmayer/inlinestyle/dom/style/css"
	"github.com/npillmayer/inlinestyle/dom/style/props"
	tp "github.com/xlab/treeprint"
)

// Tree returns a tree of the properties of a style map, branching on
// property groups. The top node names the state and the display mode of
// the style map. Clients may provide a list of property groups; only
// properties of these groups are included. If no group is given, all
// groups are included.
//
// Example output:
//
//     .
//     └── concretized ►
//         ├── Margins
//         │   └── margin-left: 2
//         └── Text
//             └── text-indent: 0
//
func Tree(s *css.StyleMap, styleGroups ...string) tp.Tree {
	root := tp.New()
	top := root.AddBranch(s.State().String() + " " + displaySymbol(s))
	byGroup := make(map[string][]string)
	for _, name := range s.Names() {
		g := s.Registry().Group(name)
		if len(styleGroups) > 0 && !contains(styleGroups, g) {
			continue
		}
		byGroup[g] = append(byGroup[g], name)
	}
	groups := make([]string, 0, len(byGroup))
	for g := range byGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	for _, g := range groups {
		branch := top.AddBranch(g)
		for _, name := range byGroup[g] {
			pv, _ := s.Get(name)
			if pv.IsImportant() {
				branch.AddMetaNode("!", pv.String())
			} else {
				branch.AddNode(pv.String())
			}
		}
	}
	return root
}

// displaySymbol returns the symbol for the display mode of a style map,
// or "?" for an unknown display mode.
func displaySymbol(s *css.StyleMap) string {
	mode, err := css.DisplayModeOf(s)
	if err != nil {
		return "?"
	}
	return mode.Symbol()
}

func contains(groups []string, g string) bool {
	for _, x := range groups {
		if x == g {
			return true
		}
	}
	return false
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	Nodes    []styleNode
	Edges    []styleEdge
}

// Edges point from a parent style to its child.
type styleEdge struct {
	From, To int
}

type styleNode struct {
	ID      int
	State   string
	Display string
	Color   string
	Groups  []groupRecord
}

type groupRecord struct {
	Name  string
	Props []string
}

var defaultGroups = []string{
	props.PGMargins,
	props.PGPadding,
	props.PGDisplay,
	props.PGText,
}

// ToGraphViz outputs a diagram for a chain of style maps, from outermost
// parent to innermost child. The diagram is in GraphViz (DOT) format.
// Clients have to provide a Writer, and an optional list of style
// parameter groups. The diagram will include all styles belonging to one
// of the parameter groups. Nodes are drawn in the color of the style and
// are labeled with the symbol of its display mode.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Margins
//     - Padding
//     - Display
//     - Text
//
func ToGraphViz(chain []*css.StyleMap, w io.Writer, styleGroups []string) error {
	if styleGroups == nil {
		styleGroups = defaultGroups
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	for i, s := range chain {
		n := styleNode{
			ID:      i,
			State:   s.State().String(),
			Display: displaySymbol(s),
			Color:   "black",
		}
		if c, ok := s.GetValue("color"); ok {
			if rgb := style.ColorOf(c); rgb != nil {
				n.Color = style.ColorString(rgb)
			}
		}
		for _, g := range styleGroups {
			rec := groupRecord{Name: g}
			for _, name := range s.Names() {
				if s.Registry().Group(name) == g {
					pv, _ := s.Get(name)
					rec.Props = append(rec.Props, escapeRecord(pv.String()))
				}
			}
			if len(rec.Props) > 0 {
				n.Groups = append(n.Groups, rec)
			}
		}
		gparams.Nodes = append(gparams.Nodes, n)
		if i > 0 {
			gparams.Edges = append(gparams.Edges, styleEdge{From: i - 1, To: i})
		}
	}
	tmpl := template.Must(template.New("styles").Parse(graphTmpl))
	if err := tmpl.Execute(w, gparams); err != nil {
		return fmt.Errorf("cannot write style diagram: %w", err)
	}
	return nil
}

func escapeRecord(s string) string {
	r := strings.NewReplacer(`"`, `\"`, "{", `\{`, "}", `\}`, "|", `\|`, "<", `\<`, ">", `\>`)
	return r.Replace(s)
}

const graphTmpl = `digraph g {
  graph [fontsize=10 fontname="{{ .Fontname }}" labelloc=t];
  node [shape=record fontsize=10 fontname="{{ .Fontname }}"];
{{ range .Nodes }}  s{{ .ID }} [color="{{ .Color }}" label="{{ "{" }}{{ .State }} {{ .Display }}{{ range .Groups }}|{{ .Name }}: {{ range .Props }}{{ . }}\l{{ end }}{{ end }}{{ "}" }}"];
{{ end }}{{ range .Edges }}  s{{ .From }} -> s{{ .To }};
{{ end }}}
`
