package codec

import (
	"errors"
	"fmt"

	"github.com/mhersch/graphio/pkg/graph"
)

var (
	// ErrUnsupportedFormat is returned by [Write] and [Read] when the
	// format value is outside the supported set, or when a write-only
	// format is passed to Read.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrNotHypergraph is returned by [Write] when [FormatDOTHypergraph]
	// is requested but the source does not implement [graph.HyperSource].
	ErrNotHypergraph = errors.New("graph does not expose hyperedges")
)

// Format identifies a textual graph representation.
type Format string

const (
	// FormatXML is the structured markup format. It is the default and the
	// only format supported for reading.
	FormatXML Format = "xml"

	// FormatDOT is the Graphviz DOT language without weight labels.
	FormatDOT Format = "dot"

	// FormatDOTWeighted is DOT with a weight label on every connector.
	FormatDOTWeighted Format = "dotwt"

	// FormatDOTHypergraph is DOT rendering hyperedges as point markers
	// linked to their member nodes.
	FormatDOTHypergraph Format = "dothyper"
)

// Formats returns all supported formats in display order.
func Formats() []Format {
	return []Format{FormatXML, FormatDOT, FormatDOTWeighted, FormatDOTHypergraph}
}

// ReadFormats returns the formats supported by [Read].
func ReadFormats() []Format {
	return []Format{FormatXML}
}

// Writable reports whether f is accepted by [Write].
func (f Format) Writable() bool {
	switch f {
	case "", FormatXML, FormatDOT, FormatDOTWeighted, FormatDOTHypergraph:
		return true
	}
	return false
}

// Readable reports whether f is accepted by [Read].
func (f Format) Readable() bool {
	return f == "" || f == FormatXML
}

// Write serializes g into the requested format and returns the text.
// An empty format resolves to [FormatXML]. Write does not mutate g.
//
// [FormatDOTHypergraph] additionally requires g to implement
// [graph.HyperSource] and returns [ErrNotHypergraph] otherwise.
func Write(g graph.Source, f Format) (string, error) {
	switch f {
	case "", FormatXML:
		return writeXML(g)
	case FormatDOT:
		return writeDOT(g, false), nil
	case FormatDOTWeighted:
		return writeDOT(g, true), nil
	case FormatDOTHypergraph:
		h, ok := g.(graph.HyperSource)
		if !ok {
			return "", fmt.Errorf("write %s: %w", f, ErrNotHypergraph)
		}
		return writeDOTHypergraph(h), nil
	default:
		return "", fmt.Errorf("write: %w: %q", ErrUnsupportedFormat, f)
	}
}

// Read parses data in the given format and applies the nodes and arrows it
// describes to g in place. An empty format resolves to [FormatXML]; every
// other format is write-only and returns [ErrUnsupportedFormat].
//
// On a parse failure the error is returned and mutations already applied
// to g remain - there is no rollback.
func Read(g graph.Builder, data []byte, f Format) error {
	switch f {
	case "", FormatXML:
		return readXML(g, data)
	default:
		return fmt.Errorf("read: %w: %q", ErrUnsupportedFormat, f)
	}
}
