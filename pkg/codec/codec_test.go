package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/mhersch/graphio/pkg/graph"
)

func TestWriteDefaultFormat(t *testing.T) {
	g := graph.NewMemory()
	g.AddNodes("a")

	out, err := Write(g, "")
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !strings.Contains(out, "<graph>") {
		t.Errorf("empty format should resolve to XML:\n%s", out)
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	_, err := Write(graph.NewMemory(), "yaml")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Write() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestReadUnsupportedFormat(t *testing.T) {
	// DOT is write-only by design.
	for _, f := range []Format{FormatDOT, FormatDOTWeighted, FormatDOTHypergraph, "yaml"} {
		if err := Read(graph.NewMemory(), []byte("graph G {}"), f); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Read(%q) error = %v, want ErrUnsupportedFormat", f, err)
		}
	}
}

func TestWriteHypergraphRequiresHyperSource(t *testing.T) {
	// A Source without hyperedges cannot be rendered as a hypergraph.
	_, err := Write(plainSource{}, FormatDOTHypergraph)
	if !errors.Is(err, ErrNotHypergraph) {
		t.Errorf("Write() error = %v, want ErrNotHypergraph", err)
	}
}

// plainSource is a Source that deliberately does not implement HyperSource.
type plainSource struct{}

func (plainSource) Nodes() []string            { return nil }
func (plainSource) Neighbors(string) []string  { return nil }
func (plainSource) HasEdge(_, _ string) bool   { return false }
func (plainSource) Weight(_, _ string) float64 { return graph.DefaultWeight }

func TestFormatPredicates(t *testing.T) {
	tests := []struct {
		format   Format
		writable bool
		readable bool
	}{
		{"", true, true},
		{FormatXML, true, true},
		{FormatDOT, true, false},
		{FormatDOTWeighted, true, false},
		{FormatDOTHypergraph, true, false},
		{"yaml", false, false},
	}

	for _, tt := range tests {
		if got := tt.format.Writable(); got != tt.writable {
			t.Errorf("Format(%q).Writable() = %v, want %v", tt.format, got, tt.writable)
		}
		if got := tt.format.Readable(); got != tt.readable {
			t.Errorf("Format(%q).Readable() = %v, want %v", tt.format, got, tt.readable)
		}
	}
}

func TestFormatsListsEverySupportedFormat(t *testing.T) {
	for _, f := range Formats() {
		if !f.Writable() {
			t.Errorf("Formats() contains %q which is not writable", f)
		}
	}
	for _, f := range ReadFormats() {
		if !f.Readable() {
			t.Errorf("ReadFormats() contains %q which is not readable", f)
		}
	}
}
