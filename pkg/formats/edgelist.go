package formats

import (
	"strings"

	"github.com/pacetools/paceviz/pkg/graph"
)

// EdgeListParser reads plain edge lists (.graph): one "u v" pair per line,
// "#" lines are comments.
type EdgeListParser struct{}

// Format returns FormatEdgeList.
func (p *EdgeListParser) Format() Format { return FormatEdgeList }

// Parse streams the file at path into g.
func (p *EdgeListParser) Parse(path string, g *graph.Graph, opts Options) error {
	g.AddStyle("pace/edgelist")

	return eachLine(path, func(n int, raw string, fields []string) error {
		if strings.HasPrefix(fields[0], "#") {
			return nil
		}
		if len(fields) < 2 {
			return malformed(path, n, raw, "edge line needs two endpoints")
		}
		g.EnsureEdge(fields[0], fields[1])
		return nil
	})
}
