package formats

import (
	"bufio"
	"os"
	"strings"

	"github.com/pacetools/paceviz/pkg/errors"
	"github.com/pacetools/paceviz/pkg/graph"
)

// Options configures parsing behavior.
type Options struct {
	// EdgeWeights enables edge-weight display for formats that carry
	// weights (steiner-tree): the weight is attached to the edge's style
	// sequence as a quoted label.
	EdgeWeights bool
	// Logger receives progress/debug messages (optional).
	Logger func(string, ...any)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Parser reads one input format into a graph.
type Parser interface {
	// Format returns the format this parser handles.
	Format() Format
	// Parse streams the file at path into g. On error g may hold partial
	// state; ParseFile wraps Parse and clears g on failure.
	Parse(path string, g *graph.Graph, opts Options) error
}

// ParserFor returns the parser for the given format.
// FormatUnknown (or any unlisted format) yields UNSUPPORTED_FORMAT.
func ParserFor(f Format) (Parser, error) {
	switch f {
	case FormatPACEGraph:
		return &PACEGraphParser{}, nil
	case FormatSteinerTree:
		return &SteinerTreeParser{}, nil
	case FormatTreeDecomposition:
		return &TreeDecompositionParser{}, nil
	case FormatEdgeList:
		return &EdgeListParser{}, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupportedFormat, "no parser for format %q", f)
	}
}

// ParseFile detects the format of path and parses it into g.
// On any error g is cleared, so the caller never observes a partially
// populated model. Annotations applied to g before the call survive only
// a successful parse.
func ParseFile(path string, g *graph.Graph, opts Options) error {
	format, err := Detect(path)
	if err != nil {
		return err
	}
	p, err := ParserFor(format)
	if err != nil {
		return err
	}
	o := opts.WithDefaults()
	if err := p.Parse(path, g, o); err != nil {
		g.Clear()
		return err
	}
	o.Logger("parsed %s as %s: %d vertices, %d edges", path, format, g.VertexCount(), g.EdgeCount())
	return nil
}

// Load allocates a fresh graph and parses path into it.
func Load(path string, opts Options) (*graph.Graph, error) {
	g := graph.New()
	if err := ParseFile(path, g, opts); err != nil {
		return nil, err
	}
	return g, nil
}

// lineFunc handles one non-empty input line. n is the 1-based line number,
// raw the unmodified line, fields its whitespace-delimited tokens (never
// empty).
type lineFunc func(n int, raw string, fields []string) error

// eachLine streams the file at path line by line, splitting each line into
// whitespace-delimited fields and skipping blank lines. This is the shared
// tokenizer underneath all four parsers: forward-only, one pass, nothing
// held in memory beyond the current line.
func eachLine(path string, fn lineFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		raw := sc.Text()
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		if err := fn(n, raw, fields); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	return nil
}

// malformed builds the error for a line that does not match its
// directive's expected shape.
func malformed(path string, n int, raw, reason string) error {
	return errors.Wrap(errors.ErrCodeMalformedLine,
		&errors.LineError{Line: n, Text: raw, Reason: reason},
		"parse %s", path)
}
