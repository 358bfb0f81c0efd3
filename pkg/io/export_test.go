package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pacetools/paceviz/pkg/graph"
)

func sampleGraph() *graph.Graph {
	g := graph.New()
	g.AddStyle("pace/stp")
	g.EnsureEdge("2", "1")
	g.StyleVertices("terminal", "1")
	bag := g.EnsureVertex("10")
	bag.Label = "{2,3}"
	return g
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleGraph(), &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var doc struct {
		Styles   []string `json:"styles"`
		Vertices []struct {
			ID     string   `json:"id"`
			Label  string   `json:"label"`
			Styles []string `json:"styles"`
		} `json:"vertices"`
		Edges []struct {
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"edges"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(doc.Styles) != 1 || doc.Styles[0] != "pace/stp" {
		t.Errorf("styles = %v, want [pace/stp]", doc.Styles)
	}
	if len(doc.Vertices) != 3 {
		t.Fatalf("vertices = %d, want 3", len(doc.Vertices))
	}
	// Deterministic order: shorter ids first, then lexicographic.
	if doc.Vertices[0].ID != "1" || doc.Vertices[1].ID != "2" || doc.Vertices[2].ID != "10" {
		t.Errorf("vertex order = %v, want 1, 2, 10", doc.Vertices)
	}
	if doc.Vertices[0].Styles[0] != "terminal" {
		t.Errorf("vertex 1 styles = %v, want [terminal]", doc.Vertices[0].Styles)
	}
	if doc.Vertices[2].Label != "{2,3}" {
		t.Errorf("vertex 10 label = %q, want {2,3}", doc.Vertices[2].Label)
	}
	if len(doc.Edges) != 1 || doc.Edges[0].From != "2" || doc.Edges[0].To != "1" {
		t.Errorf("edges = %v, want stored orientation (2,1)", doc.Edges)
	}
}

func TestWriteJSONStable(t *testing.T) {
	g := sampleGraph()

	var a, b bytes.Buffer
	if err := WriteJSON(g, &a); err != nil {
		t.Fatal(err)
	}
	if err := WriteJSON(g, &b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("repeated export differs")
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportJSON(sampleGraph(), path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !json.Valid(data) {
		t.Error("exported file is not valid JSON")
	}
}
