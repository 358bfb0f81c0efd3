package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pacetools/paceviz/pkg/errors"
	"github.com/pacetools/paceviz/pkg/graph"
)

// annotations collects the visual styling a caller wants applied on top of
// the parsed model: whole-graph tags, per-vertex tags, per-edge tags, and
// the edge-weight display toggle. Flags and the TOML config feed the same
// structure; config entries apply first, flags after.
type annotations struct {
	edgeWeights  bool
	graphStyles  []string
	vertexStyles []vertexStyleSpec
	edgeStyles   []edgeStyleSpec
}

type vertexStyleSpec struct {
	Style    string
	Vertices []string
}

type edgeStyleSpec struct {
	Style string
	Edges [][2]string
}

// apply attaches all collected annotations to g, creating missing vertices
// and edges as needed.
func (a *annotations) apply(g *graph.Graph) {
	for _, s := range a.graphStyles {
		g.AddStyle(s)
	}
	for _, vs := range a.vertexStyles {
		g.StyleVertices(vs.Style, vs.Vertices...)
	}
	for _, es := range a.edgeStyles {
		g.StyleEdges(es.Style, es.Edges...)
	}
}

// buildAnnotations merges the config file (if any) and the command-line
// style flags into one annotation set.
func buildAnnotations(opts *renderOpts) (*annotations, error) {
	ann := &annotations{}
	if opts.configPath != "" {
		if err := ann.loadConfig(opts.configPath); err != nil {
			return nil, err
		}
	}

	ann.edgeWeights = ann.edgeWeights || opts.edgeWeights
	ann.graphStyles = append(ann.graphStyles, opts.graphStyles...)

	for _, s := range opts.vertexStyles {
		spec, err := parseVertexStyle(s)
		if err != nil {
			return nil, err
		}
		ann.vertexStyles = append(ann.vertexStyles, spec)
	}
	for _, s := range opts.edgeStyles {
		spec, err := parseEdgeStyle(s)
		if err != nil {
			return nil, err
		}
		ann.edgeStyles = append(ann.edgeStyles, spec)
	}
	return ann, nil
}

// parseVertexStyle parses a --vertex-style flag value of the form
// "style=v1,v2,...".
func parseVertexStyle(s string) (vertexStyleSpec, error) {
	style, rest, ok := strings.Cut(s, "=")
	if !ok || style == "" || rest == "" {
		return vertexStyleSpec{}, errors.New(errors.ErrCodeInvalidStyle,
			"invalid vertex style %q (expected \"style=v1,v2\")", s)
	}
	return vertexStyleSpec{Style: style, Vertices: strings.Split(rest, ",")}, nil
}

// parseEdgeStyle parses an --edge-style flag value of the form
// "style=u-v,u-w,...".
func parseEdgeStyle(s string) (edgeStyleSpec, error) {
	style, rest, ok := strings.Cut(s, "=")
	if !ok || style == "" || rest == "" {
		return edgeStyleSpec{}, errors.New(errors.ErrCodeInvalidStyle,
			"invalid edge style %q (expected \"style=u-v,u-w\")", s)
	}
	spec := edgeStyleSpec{Style: style}
	for _, pair := range strings.Split(rest, ",") {
		u, v, ok := strings.Cut(pair, "-")
		if !ok || u == "" || v == "" {
			return edgeStyleSpec{}, errors.New(errors.ErrCodeInvalidStyle,
				"invalid edge %q in %q (expected \"u-v\")", pair, s)
		}
		spec.Edges = append(spec.Edges, [2]string{u, v})
	}
	return spec, nil
}

// configFile is the TOML schema for --config files:
//
//	edge_weights = true
//	graph_styles = ["thick"]
//
//	[[vertex_style]]
//	style = "terminal"
//	vertices = ["1", "4"]
//
//	[[edge_style]]
//	style = "dashed"
//	edges = [["1", "2"], ["2", "3"]]
type configFile struct {
	EdgeWeights  bool     `toml:"edge_weights"`
	GraphStyles  []string `toml:"graph_styles"`
	VertexStyles []struct {
		Style    string   `toml:"style"`
		Vertices []string `toml:"vertices"`
	} `toml:"vertex_style"`
	EdgeStyles []struct {
		Style string     `toml:"style"`
		Edges [][]string `toml:"edges"`
	} `toml:"edge_style"`
}

// loadConfig reads a TOML annotation config into the annotation set.
func (a *annotations) loadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}
	var cfg configFile
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	a.edgeWeights = a.edgeWeights || cfg.EdgeWeights
	a.graphStyles = append(a.graphStyles, cfg.GraphStyles...)
	for _, vs := range cfg.VertexStyles {
		if vs.Style == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "%s: vertex_style entry without a style", path)
		}
		a.vertexStyles = append(a.vertexStyles, vertexStyleSpec{Style: vs.Style, Vertices: vs.Vertices})
	}
	for _, es := range cfg.EdgeStyles {
		if es.Style == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "%s: edge_style entry without a style", path)
		}
		spec := edgeStyleSpec{Style: es.Style}
		for _, pair := range es.Edges {
			if len(pair) != 2 {
				return errors.New(errors.ErrCodeInvalidConfig,
					"%s: edge %v must have exactly two endpoints", path, pair)
			}
			spec.Edges = append(spec.Edges, [2]string{pair[0], pair[1]})
		}
		a.edgeStyles = append(a.edgeStyles, spec)
	}
	return nil
}
