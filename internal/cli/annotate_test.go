package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pacetools/paceviz/pkg/errors"
	"github.com/pacetools/paceviz/pkg/graph"
)

func TestParseVertexStyle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    vertexStyleSpec
		wantErr bool
	}{
		{
			name:  "Single",
			input: "terminal=1",
			want:  vertexStyleSpec{Style: "terminal", Vertices: []string{"1"}},
		},
		{
			name:  "Multiple",
			input: "red=1,2,10",
			want:  vertexStyleSpec{Style: "red", Vertices: []string{"1", "2", "10"}},
		},
		{name: "NoSeparator", input: "terminal", wantErr: true},
		{name: "EmptyStyle", input: "=1,2", wantErr: true},
		{name: "EmptyVertices", input: "terminal=", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVertexStyle(tt.input)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidStyle) {
					t.Errorf("error code = %v, want INVALID_STYLE", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("parseVertexStyle() error = %v", err)
			}
			if got.Style != tt.want.Style || len(got.Vertices) != len(tt.want.Vertices) {
				t.Errorf("parseVertexStyle() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseEdgeStyle(t *testing.T) {
	spec, err := parseEdgeStyle("dashed=1-2,2-10")
	if err != nil {
		t.Fatalf("parseEdgeStyle() error = %v", err)
	}
	if spec.Style != "dashed" {
		t.Errorf("Style = %v, want dashed", spec.Style)
	}
	want := [][2]string{{"1", "2"}, {"2", "10"}}
	if len(spec.Edges) != len(want) {
		t.Fatalf("Edges = %v, want %v", spec.Edges, want)
	}
	for i, e := range spec.Edges {
		if e != want[i] {
			t.Errorf("Edges[%d] = %v, want %v", i, e, want[i])
		}
	}

	for _, bad := range []string{"dashed", "dashed=", "dashed=1", "dashed=1-", "dashed=-2"} {
		if _, err := parseEdgeStyle(bad); !errors.Is(err, errors.ErrCodeInvalidStyle) {
			t.Errorf("parseEdgeStyle(%q) code = %v, want INVALID_STYLE", bad, errors.GetCode(err))
		}
	}
}

func TestAnnotationsApply(t *testing.T) {
	ann := &annotations{
		graphStyles:  []string{"thick"},
		vertexStyles: []vertexStyleSpec{{Style: "terminal", Vertices: []string{"1", "4"}}},
		edgeStyles:   []edgeStyleSpec{{Style: "dashed", Edges: [][2]string{{"1", "2"}}}},
	}

	g := graph.New()
	ann.apply(g)

	if styles := g.Styles(); len(styles) != 1 || styles[0] != "thick" {
		t.Errorf("graph styles = %v, want [thick]", styles)
	}
	v, ok := g.Vertex("4")
	if !ok || len(v.Styles) != 1 || v.Styles[0] != "terminal" {
		t.Errorf("vertex 4 = %+v, want terminal-tagged", v)
	}
	e, ok := g.Edge("1", "2")
	if !ok || len(e.Styles) != 1 || e.Styles[0] != "dashed" {
		t.Errorf("edge (1,2) = %+v, want dashed-tagged", e)
	}
}

func TestLoadConfig(t *testing.T) {
	content := `
edge_weights = true
graph_styles = ["thick", "blue"]

[[vertex_style]]
style = "terminal"
vertices = ["1", "4"]

[[edge_style]]
style = "dashed"
edges = [["1", "2"], ["2", "3"]]
`
	path := filepath.Join(t.TempDir(), "styles.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ann := &annotations{}
	if err := ann.loadConfig(path); err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if !ann.edgeWeights {
		t.Error("edgeWeights = false, want true")
	}
	if len(ann.graphStyles) != 2 {
		t.Errorf("graphStyles = %v, want 2 entries", ann.graphStyles)
	}
	if len(ann.vertexStyles) != 1 || ann.vertexStyles[0].Style != "terminal" {
		t.Errorf("vertexStyles = %+v", ann.vertexStyles)
	}
	if len(ann.edgeStyles) != 1 || len(ann.edgeStyles[0].Edges) != 2 {
		t.Errorf("edgeStyles = %+v", ann.edgeStyles)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"BadTOML", "edge_weights = [", errors.ErrCodeInvalidConfig},
		{"MissingStyle", "[[vertex_style]]\nvertices = [\"1\"]\n", errors.ErrCodeInvalidConfig},
		{"ShortEdgePair", "[[edge_style]]\nstyle = \"x\"\nedges = [[\"1\"]]\n", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			ann := &annotations{}
			if err := ann.loadConfig(path); !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}

	ann := &annotations{}
	if err := ann.loadConfig(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("missing config code = %v, want IO_ERROR", errors.GetCode(err))
	}
}

func TestBuildAnnotationsMergesConfigAndFlags(t *testing.T) {
	content := "graph_styles = [\"from-config\"]\n"
	path := filepath.Join(t.TempDir(), "styles.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &renderOpts{
		configPath:   path,
		graphStyles:  []string{"from-flag"},
		vertexStyles: []string{"terminal=1"},
		edgeWeights:  true,
	}
	ann, err := buildAnnotations(opts)
	if err != nil {
		t.Fatalf("buildAnnotations() error = %v", err)
	}

	// Config entries first, flags after.
	if len(ann.graphStyles) != 2 || ann.graphStyles[0] != "from-config" || ann.graphStyles[1] != "from-flag" {
		t.Errorf("graphStyles = %v, want [from-config from-flag]", ann.graphStyles)
	}
	if !ann.edgeWeights {
		t.Error("edgeWeights = false, want true")
	}
	if len(ann.vertexStyles) != 1 {
		t.Errorf("vertexStyles = %+v, want one entry", ann.vertexStyles)
	}
}
