package codec

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/mhersch/graphio/pkg/graph"
)

// Document shape of the XML markup format:
//
//	<graph>
//	  <node id="A">
//	    <arrow to="B" wt="2"></arrow>
//	  </node>
//	</graph>
//
// Weights are carried as attribute text so that parse failures surface as
// read errors instead of silently becoming zero values.
type xmlGraph struct {
	XMLName xml.Name  `xml:"graph"`
	Nodes   []xmlNode `xml:"node"`
}

type xmlNode struct {
	ID     string     `xml:"id,attr"`
	Arrows []xmlArrow `xml:"arrow"`
}

type xmlArrow struct {
	To string `xml:"to,attr"`
	Wt string `xml:"wt,attr"`
}

// writeXML serializes g as a pretty-printed XML document. Node and arrow
// order follows the order g enumerates them. Both arrows of a symmetric
// edge are emitted separately: the markup carries arrows, not edges, and
// the reader reconstructs exactly what was written.
func writeXML(g graph.Source) (string, error) {
	doc := xmlGraph{}
	for _, node := range g.Nodes() {
		n := xmlNode{ID: node}
		for _, target := range g.Neighbors(node) {
			n.Arrows = append(n.Arrows, xmlArrow{
				To: target,
				Wt: formatWeight(g.Weight(node, target)),
			})
		}
		doc.Nodes = append(doc.Nodes, n)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal graph: %w", err)
	}
	return string(out) + "\n", nil
}

// readXML parses an XML document and applies its nodes and arrows to g in
// document order. Each node element is registered before its arrows, so an
// arrow's source always exists by the time it is added.
func readXML(g graph.Builder, data []byte) error {
	var doc xmlGraph
	if err := xml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse markup: %w", err)
	}

	for _, node := range doc.Nodes {
		if node.ID == "" {
			return fmt.Errorf("parse markup: node element missing id attribute")
		}
		g.AddNodes(node.ID)
		for _, arrow := range node.Arrows {
			if arrow.To == "" {
				return fmt.Errorf("parse markup: arrow under node %q missing to attribute", node.ID)
			}
			wt, err := strconv.ParseFloat(arrow.Wt, 64)
			if err != nil {
				return fmt.Errorf("parse markup: arrow %s→%s: invalid weight %q: %w",
					node.ID, arrow.To, arrow.Wt, err)
			}
			g.AddArrow(node.ID, arrow.To, wt)
		}
	}
	return nil
}

// formatWeight renders a weight as the shortest decimal text that parses
// back to the same float64.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
