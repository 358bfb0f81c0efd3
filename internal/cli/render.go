package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pacetools/paceviz/pkg/errors"
	"github.com/pacetools/paceviz/pkg/formats"
	"github.com/pacetools/paceviz/pkg/graph"
	pvio "github.com/pacetools/paceviz/pkg/io"
	"github.com/pacetools/paceviz/pkg/render"
)

// Output formats for the render command.
const (
	formatTikZ = "tikz" // the graph-description text (default)
	formatDOT  = "dot"  // Graphviz DOT preview source
	formatSVG  = "svg"  // rasterized preview via Graphviz
	formatJSON = "json" // machine-readable model export
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output       string   // output file path ("" = stdout for text formats)
	format       string   // output format: tikz, dot, svg, json
	edgeWeights  bool     // attach quoted edge-weight labels (steiner-tree)
	graphStyles  []string // whole-graph style tags
	vertexStyles []string // "style=v1,v2" specs
	edgeStyles   []string // "style=u-v,u-w" specs
	configPath   string   // TOML annotation config
}

// renderCommand creates the render command: parse one benchmark file, apply
// annotations, and emit the requested artifact. With no input argument an
// interactive picker lists recognizable files in the working directory.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatTikZ}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a benchmark graph file to a drawing description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			} else {
				picked, err := pickInputFile(".")
				if err != nil {
					return err
				}
				input = picked
			}
			return c.runRender(input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout, or <input>.svg for svg)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: tikz (default), dot, svg, json")
	cmd.Flags().BoolVar(&opts.edgeWeights, "edge-weights", false, "show edge weights as quoted labels (steiner-tree)")
	cmd.Flags().StringArrayVar(&opts.graphStyles, "graph-style", nil, "style tag for the whole graph (repeatable)")
	cmd.Flags().StringArrayVar(&opts.vertexStyles, "vertex-style", nil, `vertex style spec "style=v1,v2" (repeatable)`)
	cmd.Flags().StringArrayVar(&opts.edgeStyles, "edge-style", nil, `edge style spec "style=u-v,u-w" (repeatable)`)
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML annotation config file")

	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatTikZ: true, formatDOT: true, formatSVG: true, formatJSON: true}

// validateFormat checks that the requested format is supported.
func validateFormat(f string) error {
	if !validFormats[f] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'tikz', 'dot', 'svg', or 'json')", f)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output has a
// known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender executes one full parse → annotate → serialize cycle.
func (c *CLI) runRender(input string, opts *renderOpts) error {
	ann, err := buildAnnotations(opts)
	if err != nil {
		return err
	}

	format, err := formats.Detect(input)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Detected format: %s", format)

	p := newProgress(c.Logger)
	g := graph.New()
	if err := formats.ParseFile(input, g, formats.Options{
		EdgeWeights: ann.edgeWeights,
		Logger:      c.Logger.Debugf,
	}); err != nil {
		return err
	}
	ann.apply(g)
	p.done(fmt.Sprintf("Parsed %s: %d vertices, %d edges", input, g.VertexCount(), g.EdgeCount()))

	return c.writeArtifact(g, input, opts)
}

// writeArtifact serializes g in the requested format and writes it to the
// output target. Text formats default to stdout; svg derives a file path
// from the input name when --output is absent.
func (c *CLI) writeArtifact(g *graph.Graph, input string, opts *renderOpts) error {
	switch opts.format {
	case formatTikZ:
		return c.writeText([]byte(render.Description(g)+"\n"), opts.output)
	case formatDOT:
		return c.writeText([]byte(render.ToDOT(g)), opts.output)
	case formatJSON:
		if opts.output == "" {
			return pvio.WriteJSON(g, os.Stdout)
		}
		if err := pvio.ExportJSON(g, opts.output); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write %s", opts.output)
		}
		printFile(opts.output)
		return nil
	case formatSVG:
		data, err := render.RenderSVG(render.ToDOT(g))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		path := opts.output
		if path == "" {
			path = basePath("", input) + ".svg"
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
		}
		printFile(path)
		return nil
	default:
		return errors.New(errors.ErrCodeInternal, "unreachable format %q", opts.format)
	}
}

// writeText sends a text artifact to stdout or to the given file.
func (c *CLI) writeText(data []byte, output string) error {
	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", output)
	}
	printFile(output)
	return nil
}
