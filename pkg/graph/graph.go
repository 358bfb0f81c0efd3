package graph

import (
	"slices"
	"strings"
)

// Vertex represents a single vertex of the graph. The identifier is an
// opaque string: inputs use numeric labels but nothing in the model relies
// on that. Styles is an append-only sequence - repeated application of the
// same style is intentional and preserved, so it is a slice, not a set.
type Vertex struct {
	ID     string   // Opaque identifier, unique within the graph
	Label  string   // Display override; replaces ID in output when non-empty
	Styles []string // Style tags, insertion order, duplicates allowed
}

// Edge represents an undirected edge between two vertices. Only one
// orientation is stored: the first EnsureEdge call fixes From and To, and
// later insertions in either orientation resolve to the same edge.
type Edge struct {
	From   string   // Stored source vertex ID
	To     string   // Stored target vertex ID
	Styles []string // Style tags, insertion order, duplicates allowed
}

// Graph is the canonical in-memory model built by the format parsers and
// read by the serializer. Vertices are indexed by ID; the adjacency map
// holds both orientations of every edge pointing at a single shared Edge,
// so lookups never depend on insertion order.
//
// The zero value is not usable - use New. Graph is not safe for concurrent
// use; one parse/annotate/serialize cycle owns it at a time.
type Graph struct {
	vertices map[string]*Vertex
	adj      map[string]map[string]*Edge
	edges    []*Edge  // stored orientations, insertion order
	styles   []string // whole-graph style tags
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		vertices: make(map[string]*Vertex),
		adj:      make(map[string]map[string]*Edge),
	}
}

// Clear resets the graph to the empty state so the same instance can be
// reused for an independent parse/render cycle. Nothing survives: vertices,
// edges, and whole-graph styles are all dropped.
func (g *Graph) Clear() {
	g.vertices = make(map[string]*Vertex)
	g.adj = make(map[string]map[string]*Edge)
	g.edges = nil
	g.styles = nil
}

// EnsureVertex returns the vertex with the given ID, creating it if absent.
// Creation is idempotent: an existing vertex is returned unchanged.
func (g *Graph) EnsureVertex(id string) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &Vertex{ID: id}
	g.vertices[id] = v
	return v
}

// EnsureEdge returns the edge between u and v, creating it if absent.
// Both endpoints are created as vertices if needed, so an edge never
// references a missing vertex. The edge is undirected: EnsureEdge(u, v)
// and EnsureEdge(v, u) return the same edge, stored under whichever
// orientation was inserted first. Multi-edges cannot be created.
func (g *Graph) EnsureEdge(u, v string) *Edge {
	g.EnsureVertex(u)
	g.EnsureVertex(v)
	if e, ok := g.adj[u][v]; ok {
		return e
	}
	e := &Edge{From: u, To: v}
	if g.adj[u] == nil {
		g.adj[u] = make(map[string]*Edge)
	}
	if g.adj[v] == nil {
		g.adj[v] = make(map[string]*Edge)
	}
	g.adj[u][v] = e
	g.adj[v][u] = e
	g.edges = append(g.edges, e)
	return e
}

// Vertex returns the vertex with the given ID and true, or nil and false
// if the vertex does not exist.
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// Edge returns the edge between u and v (in either orientation) and true,
// or nil and false if no such edge exists.
func (g *Graph) Edge(u, v string) (*Edge, bool) {
	e, ok := g.adj[u][v]
	return e, ok
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddStyle appends a style tag to the whole-graph style sequence.
// Parsers use this for the source-format marker; callers use it for
// graph-level styling. Tags are opaque text owned by the rendering
// collaborator's styling vocabulary.
func (g *Graph) AddStyle(tag string) {
	g.styles = append(g.styles, tag)
}

// Styles returns the whole-graph style sequence in application order.
// The returned slice is the graph's own; callers must not modify it.
func (g *Graph) Styles() []string { return g.styles }

// StyleVertices appends a style tag to each listed vertex, creating
// missing vertices as needed.
func (g *Graph) StyleVertices(tag string, ids ...string) {
	for _, id := range ids {
		v := g.EnsureVertex(id)
		v.Styles = append(v.Styles, tag)
	}
}

// StyleEdges appends a style tag to each listed edge, creating missing
// edges (and their endpoints) as needed.
func (g *Graph) StyleEdges(tag string, pairs ...[2]string) {
	for _, p := range pairs {
		e := g.EnsureEdge(p[0], p[1])
		e.Styles = append(e.Styles, tag)
	}
}

// Vertices returns all vertices sorted shorter-identifier-first, then
// lexicographically among identifiers of equal length. Numeric-looking
// identifiers of different magnitude ("2" vs "10") therefore sort by
// natural magnitude intuition. This order is the serialization order and
// must stay stable.
func (g *Graph) Vertices() []*Vertex {
	vertices := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		vertices = append(vertices, v)
	}
	slices.SortFunc(vertices, func(a, b *Vertex) int {
		if c := len(a.ID) - len(b.ID); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return vertices
}

// Edges returns all edges sorted lexicographically by stored source, then
// by stored target. Unlike vertex ordering there is no shorter-first rule;
// the asymmetry is part of the output contract.
func (g *Graph) Edges() []*Edge {
	edges := slices.Clone(g.edges)
	slices.SortFunc(edges, func(a, b *Edge) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}
		return strings.Compare(a.To, b.To)
	})
	return edges
}

// Neighbors returns the IDs of all vertices adjacent to id, in unspecified
// order. Returns nil if the vertex has no edges or does not exist.
func (g *Graph) Neighbors(id string) []string {
	if len(g.adj[id]) == 0 {
		return nil
	}
	out := make([]string, 0, len(g.adj[id]))
	for n := range g.adj[id] {
		out = append(out, n)
	}
	return out
}
