package graph

import (
	"testing"
)

func TestEnsureVertex(t *testing.T) {
	g := New()

	v := g.EnsureVertex("a")
	if v == nil || v.ID != "a" {
		t.Fatalf("EnsureVertex returned %v, want vertex a", v)
	}
	if g.VertexCount() != 1 {
		t.Errorf("VertexCount = %d, want 1", g.VertexCount())
	}

	// Idempotent: same instance back, count unchanged.
	v.Styles = append(v.Styles, "terminal")
	again := g.EnsureVertex("a")
	if again != v {
		t.Error("EnsureVertex created a second instance for the same ID")
	}
	if len(again.Styles) != 1 {
		t.Errorf("Styles = %v, want [terminal]", again.Styles)
	}
}

func TestEnsureEdgeCreatesEndpoints(t *testing.T) {
	g := New()
	g.EnsureEdge("1", "2")

	if g.VertexCount() != 2 {
		t.Errorf("VertexCount = %d, want 2", g.VertexCount())
	}
	if _, ok := g.Vertex("1"); !ok {
		t.Error("endpoint 1 missing from vertex map")
	}
	if _, ok := g.Vertex("2"); !ok {
		t.Error("endpoint 2 missing from vertex map")
	}
}

func TestEnsureEdgeIdempotent(t *testing.T) {
	g := New()

	e1 := g.EnsureEdge("a", "b")
	e2 := g.EnsureEdge("a", "b")
	e3 := g.EnsureEdge("b", "a") // reverse orientation is the same edge

	if e1 != e2 || e1 != e3 {
		t.Error("EnsureEdge returned distinct edges for the same pair")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	if e1.From != "a" || e1.To != "b" {
		t.Errorf("stored orientation = (%s,%s), want (a,b)", e1.From, e1.To)
	}

	// Style appends on an existing edge still accumulate.
	g.StyleEdges("dashed", [2]string{"a", "b"})
	g.StyleEdges("dashed", [2]string{"b", "a"})
	if len(e1.Styles) != 2 {
		t.Errorf("Styles = %v, want two entries", e1.Styles)
	}
}

func TestEdgeLookupBothOrientations(t *testing.T) {
	g := New()
	g.EnsureEdge("u", "v")

	if _, ok := g.Edge("u", "v"); !ok {
		t.Error("Edge(u,v) not found")
	}
	if _, ok := g.Edge("v", "u"); !ok {
		t.Error("Edge(v,u) not found")
	}
	if _, ok := g.Edge("u", "w"); ok {
		t.Error("Edge(u,w) found, want absent")
	}
}

func TestStyleVerticesCreatesMissing(t *testing.T) {
	g := New()
	g.StyleVertices("terminal", "3", "5")

	if g.VertexCount() != 2 {
		t.Errorf("VertexCount = %d, want 2", g.VertexCount())
	}
	v, _ := g.Vertex("3")
	if len(v.Styles) != 1 || v.Styles[0] != "terminal" {
		t.Errorf("Styles = %v, want [terminal]", v.Styles)
	}
}

func TestStyleDuplicatesPreserved(t *testing.T) {
	g := New()
	g.AddStyle("thick")
	g.AddStyle("thick")

	if got := g.Styles(); len(got) != 2 {
		t.Errorf("Styles = %v, want duplicate preserved", got)
	}
}

func TestVertexOrdering(t *testing.T) {
	g := New()
	for _, id := range []string{"2", "10", "1"} {
		g.EnsureVertex(id)
	}

	want := []string{"1", "2", "10"}
	got := g.Vertices()
	if len(got) != len(want) {
		t.Fatalf("Vertices len = %d, want %d", len(got), len(want))
	}
	for i, v := range got {
		if v.ID != want[i] {
			t.Errorf("Vertices[%d] = %s, want %s", i, v.ID, want[i])
		}
	}
}

func TestEdgeOrdering(t *testing.T) {
	g := New()
	g.EnsureEdge("b", "a")
	g.EnsureEdge("a", "c")

	got := g.Edges()
	if len(got) != 2 {
		t.Fatalf("Edges len = %d, want 2", len(got))
	}
	// Pure lexicographic by stored source then target: (a,c) before (b,a).
	if got[0].From != "a" || got[0].To != "c" {
		t.Errorf("Edges[0] = (%s,%s), want (a,c)", got[0].From, got[0].To)
	}
	if got[1].From != "b" || got[1].To != "a" {
		t.Errorf("Edges[1] = (%s,%s), want (b,a)", got[1].From, got[1].To)
	}
}

func TestClear(t *testing.T) {
	g := New()
	g.AddStyle("pace/dimacs")
	g.EnsureEdge("1", "2")
	g.StyleVertices("terminal", "1")

	g.Clear()

	if g.VertexCount() != 0 || g.EdgeCount() != 0 || len(g.Styles()) != 0 {
		t.Errorf("after Clear: %d vertices, %d edges, %d styles; want all zero",
			g.VertexCount(), g.EdgeCount(), len(g.Styles()))
	}
	if _, ok := g.Edge("1", "2"); ok {
		t.Error("edge survived Clear")
	}

	// The instance is reusable after Clear.
	g.EnsureEdge("x", "y")
	if g.VertexCount() != 2 || g.EdgeCount() != 1 {
		t.Error("graph not reusable after Clear")
	}
}

func TestNeighbors(t *testing.T) {
	g := New()
	g.EnsureEdge("a", "b")
	g.EnsureEdge("c", "a")

	n := g.Neighbors("a")
	if len(n) != 2 {
		t.Errorf("Neighbors(a) = %v, want 2 entries", n)
	}
	if g.Neighbors("missing") != nil {
		t.Error("Neighbors(missing) != nil")
	}
}
