// Package render turns the canonical graph model into output artifacts.
//
// The primary artifact is the textual graph-description emitted by
// [Description]: the exact wire format consumed by the downstream
// graph-drawing renderer, reproduced byte-for-byte for a fixed graph state.
// [ToDOT] and [RenderSVG] provide a Graphviz-backed preview sink for quick
// visual inspection; layout there happens entirely inside the Graphviz
// engine.
package render
