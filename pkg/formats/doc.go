// Package formats detects and parses the line-oriented graph file formats
// used by the PACE benchmark suite.
//
// Four formats are supported, each with its own parser:
//   - pace-graph: DIMACS-style graphs (.gr, .dgf)
//   - steiner-tree: Steiner tree instances (.stp, .gr with SECTION header)
//   - tree-decomposition: decomposition trees with bags (.td)
//   - edge-list: plain whitespace-separated edge lists (.graph)
//
// Detection is extension-based; the ambiguous .gr extension is resolved by
// peeking at the first content line. All parsers stream the file forward
// once, split lines on whitespace, and dispatch on the first field. They
// populate a graph.Graph through its ensure-vertex/ensure-edge primitives
// and tag it with a source-format marker before reading any line.
//
// Malformed directives fail fast with a MALFORMED_LINE error carrying the
// line number and raw text; on failure the target graph is cleared so no
// partial model escapes.
package formats
