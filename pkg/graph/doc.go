// Package graph provides the canonical in-memory graph model shared by the
// format parsers, the annotation API, and the serializers.
//
// The model is deliberately small: string-identified vertices, undirected
// normalized edges (no multi-edges), and append-only style tag sequences on
// vertices, edges, and the graph itself. Style tags are opaque strings
// passed through verbatim to the downstream graph-drawing renderer.
//
// # Lifecycle
//
// A Graph lives for one parse → annotate → serialize cycle:
//
//	g := graph.New()
//	if err := formats.ParseFile(path, g, opts); err != nil {
//	    return err
//	}
//	g.StyleVertices("terminal", "1", "4")
//	out := render.Description(g)
//	g.Clear()
//
// Clear fully resets the instance so nothing leaks into the next cycle.
package graph
