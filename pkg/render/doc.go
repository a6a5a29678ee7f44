// Package render rasterizes DOT visualization descriptions with Graphviz.
//
// The codec layer produces DOT text; this package turns it into SVG or PNG
// bytes using the embedded Graphviz engine (goccy/go-graphviz, no system
// Graphviz installation required). Rendering is one-way: DOT is never
// parsed back into a graph.
package render
