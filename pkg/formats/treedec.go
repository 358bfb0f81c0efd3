package formats

import (
	"strings"

	"github.com/pacetools/paceviz/pkg/graph"
)

// TreeDecompositionParser reads tree decompositions (.td).
//
// A "b id x1 x2 ..." line declares bag id and sets its display label to a
// brace-delimited list of the contained original-graph vertices ("{}" for
// an empty bag). Every remaining non-comment line "u v" is a tree edge.
type TreeDecompositionParser struct{}

// Format returns FormatTreeDecomposition.
func (p *TreeDecompositionParser) Format() Format { return FormatTreeDecomposition }

// Parse streams the file at path into g.
func (p *TreeDecompositionParser) Parse(path string, g *graph.Graph, opts Options) error {
	g.AddStyle("pace/treedecomposition")

	return eachLine(path, func(n int, raw string, fields []string) error {
		switch fields[0] {
		case "c", "s":
			// comment / solution header
		case "b":
			if len(fields) < 2 {
				return malformed(path, n, raw, "bag line needs a bag id")
			}
			v := g.EnsureVertex(fields[1])
			v.Label = "{" + strings.Join(fields[2:], ",") + "}"
		default:
			if len(fields) < 2 {
				return malformed(path, n, raw, "tree edge needs two endpoints")
			}
			g.EnsureEdge(fields[0], fields[1])
		}
		return nil
	})
}
