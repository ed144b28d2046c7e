// SPDX-License-Identifier: MIT

package drawing

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/segimage/rag"
	"github.com/katalvlaran/segimage/raster"
	"github.com/katalvlaran/segimage/segerr"
)

// Sentinel errors for drawing operations.
var (
	// ErrNilGraph indicates MarshalDOT was called without a graph.
	ErrNilGraph = segerr.Wrap(segerr.ErrInput, "drawing: graph is nil")
	// ErrColorCount indicates a color slice without one entry per vertex.
	ErrColorCount = segerr.Wrap(segerr.ErrData, "drawing: color count does not match vertex count")
)

// Defaults for MarshalDOT.
const (
	DefaultLayout     = "fdp"
	DefaultVertexSize = 20 // points
	DefaultEdgeWidth  = 0.5
	DefaultEdgeColor  = "gray"
	DefaultName       = "segments"
)

// pointsPerInch converts vertex sizes to Graphviz inches.
const pointsPerInch = 72.0

// Option configures MarshalDOT.
type Option func(*options)

type options struct {
	name       string
	layout     string
	vertexSize float64
}

// WithLayout sets the Graphviz layout engine hint. Panics on "".
func WithLayout(layout string) Option {
	if layout == "" {
		panic("drawing: WithLayout(\"\")")
	}
	return func(o *options) { o.layout = layout }
}

// WithVertexSize sets the vertex diameter in points. Panics if size <= 0.
func WithVertexSize(size float64) Option {
	if size <= 0 {
		panic("drawing: WithVertexSize(size <= 0)")
	}
	return func(o *options) { o.vertexSize = size }
}

// WithName sets the DOT graph name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// vertexNode is a graph node that carries its fill color.
type vertexNode struct {
	id   int64
	fill string
}

func (n vertexNode) ID() int64 { return n.id }

func (n vertexNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "fillcolor", Value: n.fill}}
}

// dotGraph adds top-level DOT attributes to a gonum graph.
type dotGraph struct {
	*simple.UndirectedGraph
	graphAttrs, nodeAttrs, edgeAttrs encoding.Attributes
}

func (d *dotGraph) DOTAttributers() (g, n, e encoding.Attributer) {
	return &d.graphAttrs, &d.nodeAttrs, &d.edgeAttrs
}

// MarshalDOT encodes g as DOT with vertex v filled in colors[v].
//
// Returns ErrNilGraph or ErrColorCount.
// Complexity: O(N log N + E log E), dominated by the encoder's ID sort.
func MarshalDOT(g *rag.Graph, colors []raster.Pixel, opts ...Option) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(colors) != g.Order() {
		return nil, segerr.Errorf("MarshalDOT", ErrColorCount, "%d colors for %d vertices", len(colors), g.Order())
	}
	o := options{name: DefaultName, layout: DefaultLayout, vertexSize: DefaultVertexSize}
	for _, opt := range opts {
		opt(&o)
	}

	d := &dotGraph{
		UndirectedGraph: simple.NewUndirectedGraph(),
		graphAttrs: encoding.Attributes{
			{Key: "layout", Value: o.layout},
			{Key: "overlap", Value: "false"},
		},
		nodeAttrs: encoding.Attributes{
			{Key: "shape", Value: "circle"},
			{Key: "style", Value: "filled"},
			{Key: "label", Value: ""},
			{Key: "fixedsize", Value: "true"},
			{Key: "width", Value: fmt.Sprintf("%.4f", o.vertexSize/pointsPerInch)},
		},
		edgeAttrs: encoding.Attributes{
			{Key: "color", Value: DefaultEdgeColor},
			{Key: "penwidth", Value: fmt.Sprintf("%g", DefaultEdgeWidth)},
		},
	}
	nodes := make([]vertexNode, g.Order())
	for v, px := range colors {
		c, _ := colorful.MakeColor(color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xff})
		nodes[v] = vertexNode{id: int64(v), fill: c.Hex()}
		d.AddNode(nodes[v])
	}
	for _, e := range g.Edges() {
		d.SetEdge(simple.Edge{F: nodes[e.U], T: nodes[e.V]})
	}

	return dot.Marshal(d, o.name, "", "\t")
}
