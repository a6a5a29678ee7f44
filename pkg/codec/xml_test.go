package codec

import (
	"strings"
	"testing"

	"github.com/mhersch/graphio/pkg/graph"
)

func TestWriteXMLBasic(t *testing.T) {
	g := graph.NewMemory()
	g.AddNodes("A", "B")
	g.AddArrow("A", "B", 2)

	out, err := Write(g, FormatXML)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	for _, want := range []string{
		"<graph>",
		`<node id="A">`,
		`<arrow to="B" wt="2">`,
		`<node id="B">`,
		"</graph>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Write() output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteXMLEmitsBothDirections(t *testing.T) {
	// The markup carries arrows, not edges: a true edge shows up as two
	// separate arrow elements.
	g := graph.NewMemory()
	g.AddWeightedEdge("A", "B", 3)

	out, err := Write(g, FormatXML)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if got := strings.Count(out, "<arrow"); got != 2 {
		t.Errorf("arrow element count = %d, want 2:\n%s", got, out)
	}
}

func TestWriteXMLEmptyGraph(t *testing.T) {
	out, err := Write(graph.NewMemory(), FormatXML)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if strings.Contains(out, "<node") || strings.Contains(out, "<arrow") {
		t.Errorf("empty graph should have no node or arrow elements:\n%s", out)
	}

	// Still a parseable document.
	if err := Read(graph.NewMemory(), []byte(out), FormatXML); err != nil {
		t.Errorf("Read() of empty document failed: %v", err)
	}
}

func TestReadXML(t *testing.T) {
	input := `<graph>
  <node id="A">
    <arrow to="B" wt="2.5"></arrow>
  </node>
  <node id="B"></node>
</graph>`

	g := graph.NewMemory()
	if err := Read(g, []byte(input), FormatXML); err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if got := g.NodeCount(); got != 2 {
		t.Errorf("NodeCount() = %d, want 2", got)
	}
	if !g.HasArrow("A", "B") {
		t.Error("arrow A→B not reconstructed")
	}
	if got := g.Weight("A", "B"); got != 2.5 {
		t.Errorf("Weight(A, B) = %v, want 2.5", got)
	}
}

func TestReadXMLSelfClosedArrows(t *testing.T) {
	// Writers in other languages emit self-closed elements.
	input := `<graph><node id="A"><arrow to="B" wt="1"/></node><node id="B"/></graph>`

	g := graph.NewMemory()
	if err := Read(g, []byte(input), FormatXML); err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !g.HasArrow("A", "B") {
		t.Error("arrow A→B not reconstructed")
	}
}

func TestReadXMLIntoPopulatedGraph(t *testing.T) {
	// Reading must tolerate nodes that are already present.
	g := graph.NewMemory()
	g.AddNodes("A")
	g.AddArrow("A", "X", 9)

	input := `<graph><node id="A"><arrow to="B" wt="1"/></node><node id="B"/></graph>`
	if err := Read(g, []byte(input), FormatXML); err != nil {
		t.Fatalf("Read() into populated graph failed: %v", err)
	}

	if got := g.NodeCount(); got != 3 {
		t.Errorf("NodeCount() = %d, want 3 (A, X, B and no duplicate A)", got)
	}
	if !g.HasArrow("A", "X") || !g.HasArrow("A", "B") {
		t.Error("existing and parsed arrows should coexist")
	}
}

func TestReadXMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"MalformedDocument", `<graph><node id="A">`},
		{"NonNumericWeight", `<graph><node id="A"><arrow to="B" wt="heavy"/></node></graph>`},
		{"MissingWeight", `<graph><node id="A"><arrow to="B"/></node></graph>`},
		{"MissingNodeID", `<graph><node><arrow to="B" wt="1"/></node></graph>`},
		{"MissingArrowTarget", `<graph><node id="A"><arrow wt="1"/></node></graph>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Read(graph.NewMemory(), []byte(tt.input), FormatXML); err == nil {
				t.Error("Read() should fail for malformed input")
			}
		})
	}
}

func TestReadXMLNoRollback(t *testing.T) {
	// Mutations applied before the failing arrow remain in the graph.
	input := `<graph>
  <node id="A"><arrow to="B" wt="1"/></node>
  <node id="C"><arrow to="D" wt="bad"/></node>
</graph>`

	g := graph.NewMemory()
	if err := Read(g, []byte(input), FormatXML); err == nil {
		t.Fatal("Read() should fail on the malformed weight")
	}
	if !g.HasArrow("A", "B") {
		t.Error("arrow applied before the failure should remain")
	}
	if !g.Has("C") {
		t.Error("node registered before the failure should remain")
	}
	if g.HasArrow("C", "D") {
		t.Error("failing arrow should not be applied")
	}
}

func TestXMLRoundTrip(t *testing.T) {
	src := graph.NewMemory()
	src.AddNodes("A", "B", "C")
	src.AddWeightedEdge("A", "B", 2)
	src.AddArrow("B", "C", 1)
	src.AddArrow("C", "A", 0.25)

	out, err := Write(src, FormatXML)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	dst := graph.NewMemory()
	if err := Read(dst, []byte(out), FormatXML); err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if got, want := dst.NodeCount(), src.NodeCount(); got != want {
		t.Errorf("NodeCount() = %d, want %d", got, want)
	}
	if got, want := dst.ArrowCount(), src.ArrowCount(); got != want {
		t.Errorf("ArrowCount() = %d, want %d", got, want)
	}
	for _, from := range src.Nodes() {
		for _, to := range src.Neighbors(from) {
			if !dst.HasArrow(from, to) {
				t.Errorf("arrow %s→%s lost in round trip", from, to)
			}
			if got, want := dst.Weight(from, to), src.Weight(from, to); got != want {
				t.Errorf("Weight(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}
