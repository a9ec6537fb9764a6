// Package aspectgraph renders a chart's aspect list as a node-link
// diagram: bodies are nodes and detected aspects are labeled edges.
// The graph is emitted as Graphviz DOT and can be rasterized to SVG or
// PNG with the embedded Graphviz engine.
package aspectgraph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/rsharan/jyotish/pkg/aspect"
	"github.com/rsharan/jyotish/pkg/zodiac"
)

// Options configures aspect graph rendering.
type Options struct {
	// Detailed includes the signed orb deviation in edge labels.
	// When false, only the aspect type is shown.
	Detailed bool
}

// edgeStyles distinguishes the harmonious aspects from the hard ones.
var edgeStyles = map[aspect.Type]string{
	aspect.Conjunction: "color=\"#444444\", penwidth=2",
	aspect.Opposition:  "color=\"#b03030\", style=bold",
	aspect.Square:      "color=\"#b03030\"",
	aspect.Trine:       "color=\"#2a7f3f\"",
	aspect.Sextile:     "color=\"#2a7f3f\", style=dashed",
}

// ToDOT converts an aspect list to Graphviz DOT format. Aspects are
// undirected relationships, so the output is a plain graph rather than
// a digraph. The ascendant node is highlighted because every reading
// anchors on it.
func ToDOT(records []aspect.Record, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph aspects {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14, fixedsize=true, width=1.1];\n")
	buf.WriteString("\n")

	for _, b := range participants(records) {
		attrs := ""
		if b == zodiac.Ascendant {
			attrs = " [fillcolor=\"#ffe9b3\", penwidth=2]"
		}
		fmt.Fprintf(&buf, "  %q%s;\n", b.String(), attrs)
	}

	buf.WriteString("\n")
	for _, r := range records {
		fmt.Fprintf(&buf, "  %q -- %q [label=%q, %s];\n",
			r.BodyA.String(), r.BodyB.String(), edgeLabel(r, opts.Detailed), edgeStyles[r.Type])
	}

	buf.WriteString("}\n")
	return buf.String()
}

// participants collects the bodies appearing in the records, in
// canonical body order so the DOT output is reproducible.
func participants(records []aspect.Record) []zodiac.Body {
	seen := make(map[zodiac.Body]bool)
	for _, r := range records {
		seen[r.BodyA] = true
		seen[r.BodyB] = true
	}
	var bodies []zodiac.Body
	for _, b := range zodiac.Bodies {
		if seen[b] {
			bodies = append(bodies, b)
		}
	}
	return bodies
}

func edgeLabel(r aspect.Record, detailed bool) string {
	if !detailed {
		return r.Type.String()
	}
	return fmt.Sprintf("%s %+.2f°", r.Type, r.Delta)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
