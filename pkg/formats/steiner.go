package formats

import (
	"strconv"

	"github.com/pacetools/paceviz/pkg/graph"
)

// SteinerTreeParser reads Steiner tree instances (.stp, .gr with SECTION
// header).
//
// "Nodes N" pre-creates vertices 1..N, "E u v [w]" declares an edge, and
// "T v" tags a terminal vertex. When opts.EdgeWeights is set, the edge
// weight is attached to the edge's style sequence as a quoted label for
// the renderer. All other lines (SECTION/END blocks, comments, the file
// magic) carry no graph structure and are skipped.
type SteinerTreeParser struct{}

// Format returns FormatSteinerTree.
func (p *SteinerTreeParser) Format() Format { return FormatSteinerTree }

// Parse streams the file at path into g.
func (p *SteinerTreeParser) Parse(path string, g *graph.Graph, opts Options) error {
	g.AddStyle("pace/stp")

	return eachLine(path, func(n int, raw string, fields []string) error {
		switch fields[0] {
		case "Nodes":
			if len(fields) < 2 {
				return malformed(path, n, raw, "Nodes line needs a vertex count")
			}
			count, err := strconv.Atoi(fields[1])
			if err != nil || count < 0 {
				return malformed(path, n, raw, "vertex count must be a non-negative integer")
			}
			for i := 1; i <= count; i++ {
				g.EnsureVertex(strconv.Itoa(i))
			}
		case "E":
			if len(fields) < 3 {
				return malformed(path, n, raw, "E line needs two endpoints")
			}
			e := g.EnsureEdge(fields[1], fields[2])
			if opts.EdgeWeights && len(fields) >= 4 {
				e.Styles = append(e.Styles, `"`+fields[3]+`"`)
			}
		case "T":
			if len(fields) < 2 {
				return malformed(path, n, raw, "T line needs a vertex")
			}
			v := g.EnsureVertex(fields[1])
			v.Styles = append(v.Styles, "terminal")
		}
		return nil
	})
}
