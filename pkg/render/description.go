package render

import (
	"fmt"
	"strings"

	"github.com/pacetools/paceviz/pkg/graph"
)

// Description serializes g into the graph-description mini-language
// consumed by the drawing renderer:
//
//	graph[<graph styles>]{
//	<id>[<styles>];        vertex without display label
//	<id>/<label>;          vertex with display label
//	<u>--[<styles>]<v>;    edge
//	};
//
// Style lists are comma-joined in application order. Vertices are emitted
// shorter-identifier-first, then lexicographically; edges lexicographically
// by stored source, then target. The two orderings differ on purpose - the
// renderer's layout determinism depends on the exact textual shape, so the
// output is byte-for-byte reproducible for a fixed graph state.
func Description(g *graph.Graph) string {
	var b strings.Builder

	b.WriteString("graph[")
	b.WriteString(strings.Join(g.Styles(), ","))
	b.WriteString("]{\n")

	for _, v := range g.Vertices() {
		if v.Label != "" {
			fmt.Fprintf(&b, "%s/%s;\n", v.ID, v.Label)
		} else {
			fmt.Fprintf(&b, "%s[%s];\n", v.ID, strings.Join(v.Styles, ","))
		}
	}

	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "%s--[%s]%s;\n", e.From, strings.Join(e.Styles, ","), e.To)
	}

	b.WriteString("};")
	return b.String()
}
