// Package io provides machine-readable export of the graph model.
//
// The JSON document mirrors the model directly: whole-graph styles,
// vertices (with display labels and style sequences), and edges in their
// stored orientation. Entries follow the same deterministic order as the
// textual serializer, so exports are reproducible.
package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pacetools/paceviz/pkg/graph"
)

type document struct {
	Styles   []string `json:"styles,omitempty"`
	Vertices []vertex `json:"vertices"`
	Edges    []edge   `json:"edges"`
}

type vertex struct {
	ID     string   `json:"id"`
	Label  string   `json:"label,omitempty"`
	Styles []string `json:"styles,omitempty"`
}

type edge struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Styles []string `json:"styles,omitempty"`
}

// WriteJSON encodes the graph as JSON and writes it to w.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	vertices := g.Vertices()
	edges := g.Edges()

	out := document{
		Styles:   g.Styles(),
		Vertices: make([]vertex, len(vertices)),
		Edges:    make([]edge, len(edges)),
	}
	for i, v := range vertices {
		out.Vertices[i] = vertex{ID: v.ID, Label: v.Label, Styles: v.Styles}
	}
	for i, e := range edges {
		out.Edges[i] = edge{From: e.From, To: e.To, Styles: e.Styles}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
