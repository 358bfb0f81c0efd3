package formats

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pacetools/paceviz/pkg/errors"
)

// Format identifies one of the supported input file formats.
type Format string

const (
	// FormatPACEGraph is the DIMACS-style graph format (.dgf, most .gr files).
	FormatPACEGraph Format = "pace-graph"
	// FormatSteinerTree is the Steiner tree instance format (.stp, .gr files
	// with a SECTION header).
	FormatSteinerTree Format = "steiner-tree"
	// FormatTreeDecomposition is the tree-decomposition format (.td).
	FormatTreeDecomposition Format = "tree-decomposition"
	// FormatEdgeList is the plain edge-list format (.graph).
	FormatEdgeList Format = "edge-list"
	// FormatUnknown is returned for extensions no parser handles.
	FormatUnknown Format = "unknown"
)

// Detect classifies path by its final dot-delimited extension.
//
// A missing extension yields MALFORMED_FILENAME; an unrecognized one yields
// FormatUnknown together with UNSUPPORTED_FORMAT, so callers fail instead
// of guessing. The .gr extension is shared by pace-graph and steiner-tree
// inputs and is resolved by peeking at the first line of content: a line
// containing SECTION marks a Steiner instance.
func Detect(path string) (Format, error) {
	ext := filepath.Ext(filepath.Base(path))
	if ext == "" || ext == "." {
		return FormatUnknown, errors.New(errors.ErrCodeMalformedFilename,
			"cannot detect format of %q: filename has no extension", path)
	}

	switch strings.TrimPrefix(ext, ".") {
	case "td":
		return FormatTreeDecomposition, nil
	case "dgf":
		return FormatPACEGraph, nil
	case "stp":
		return FormatSteinerTree, nil
	case "graph":
		return FormatEdgeList, nil
	case "gr":
		return sniffGR(path)
	default:
		return FormatUnknown, errors.New(errors.ErrCodeUnsupportedFormat,
			"unsupported extension %q in %q", ext, path)
	}
}

// sniffGR disambiguates the .gr extension by reading the first line.
// Steiner instances open with a SECTION block; everything else is treated
// as a pace-graph.
func sniffGR(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, errors.Wrap(errors.ErrCodeIO, err, "peek at %s", path)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if sc.Scan() && strings.Contains(sc.Text(), "SECTION") {
		return FormatSteinerTree, nil
	}
	if err := sc.Err(); err != nil {
		return FormatUnknown, errors.Wrap(errors.ErrCodeIO, err, "peek at %s", path)
	}
	return FormatPACEGraph, nil
}
