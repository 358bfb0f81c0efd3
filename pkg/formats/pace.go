package formats

import (
	"strconv"

	"github.com/pacetools/paceviz/pkg/graph"
)

// pace-graph metadata/comment directives that carry no graph structure.
var paceSkip = map[string]bool{
	"c": true, // comment
	"n": true, // node weight
	"d": true, // dimension
	"v": true, // value
	"x": true, // parameter
	"b": true, // bound
	"l": true, // label
}

// PACEGraphParser reads DIMACS-style graphs (.dgf, .gr without SECTION).
//
// A "p" line declares the vertex count and pre-creates vertices 1..N, so
// isolated vertices survive into the model. "e" lines and bare "u v" lines
// both declare edges; extra fields on edge lines are ignored.
type PACEGraphParser struct{}

// Format returns FormatPACEGraph.
func (p *PACEGraphParser) Format() Format { return FormatPACEGraph }

// Parse streams the file at path into g.
func (p *PACEGraphParser) Parse(path string, g *graph.Graph, opts Options) error {
	g.AddStyle("pace/dimacs")

	return eachLine(path, func(n int, raw string, fields []string) error {
		switch {
		case fields[0] == "p":
			// p FORMAT N [M]
			if len(fields) < 3 {
				return malformed(path, n, raw, "problem line needs a vertex count")
			}
			count, err := strconv.Atoi(fields[2])
			if err != nil || count < 0 {
				return malformed(path, n, raw, "vertex count must be a non-negative integer")
			}
			for i := 1; i <= count; i++ {
				g.EnsureVertex(strconv.Itoa(i))
			}
		case paceSkip[fields[0]]:
			// metadata, no structure
		case fields[0] == "e":
			if len(fields) < 3 {
				return malformed(path, n, raw, "edge line needs two endpoints")
			}
			g.EnsureEdge(fields[1], fields[2])
		default:
			// Bare edge-list convention: "u v" without a directive.
			if len(fields) < 2 {
				return malformed(path, n, raw, "edge line needs two endpoints")
			}
			g.EnsureEdge(fields[0], fields[1])
		}
		return nil
	})
}
