package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/pacetools/paceviz/pkg/graph"
)

// ToDOT converts the graph to Graphviz DOT format for the preview sink.
// The resulting DOT string can be rendered with [RenderSVG].
//
// Vertices with a display label (tree-decomposition bags) show the label;
// terminal-tagged vertices get a doubled outline. The emission order
// matches the deterministic serializer so previews are reproducible too.
func ToDOT(g *graph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q [%s];\n", v.ID, strings.Join(vertexAttrs(v), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func vertexAttrs(v *graph.Vertex) []string {
	label := v.ID
	attrs := []string{}
	if v.Label != "" {
		label = v.Label
		attrs = append(attrs, "shape=box")
	}
	attrs = append([]string{fmt.Sprintf("label=%q", label)}, attrs...)
	for _, s := range v.Styles {
		if s == "terminal" {
			attrs = append(attrs, "shape=doublecircle")
			break
		}
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
