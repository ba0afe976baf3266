// Package viz renders a selection's node hierarchy as a Graphviz diagram.
//
// The diagram is structural: one box per node, parent→child edges, with
// invisible nodes drawn dashed and grey so hidden layers stay distinguishable
// from rendered ones.
package viz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/describe"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/figma"
)

// Options configures hierarchy rendering.
type Options struct {
	// Detailed includes geometry in node labels.
	// When false, only the kind and name are shown.
	Detailed bool
}

// ToDOT converts a selection tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
func ToDOT(nodes []*figma.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	w := &dotWriter{buf: &buf, opts: opts}
	for _, n := range nodes {
		w.writeNode(n, "")
	}

	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	buf  *bytes.Buffer
	opts Options
	seq  int
}

// writeNode emits the node and its subtree, returning nothing; edges to
// children are emitted right after each child's declaration so the DOT output
// reads top-down like the tree.
func (w *dotWriter) writeNode(n *figma.Node, parentID string) {
	if n == nil {
		return
	}
	id := fmt.Sprintf("n%d", w.seq)
	w.seq++

	attrs := []string{fmt.Sprintf("label=%q", w.label(n))}
	if !n.Visible {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	fmt.Fprintf(w.buf, "  %s [%s];\n", id, strings.Join(attrs, ", "))

	if parentID != "" {
		fmt.Fprintf(w.buf, "  %s -> %s;\n", parentID, id)
	}

	for _, c := range n.Children {
		w.writeNode(c, id)
	}
}

func (w *dotWriter) label(n *figma.Node) string {
	head := string(n.Kind)
	if n.Name != "" {
		head += "\n" + n.Name
	}
	if !w.opts.Detailed {
		return head
	}
	return head + fmt.Sprintf("\n%sx%s @ (%s, %s)",
		describe.FormatNumber(n.Width), describe.FormatNumber(n.Height),
		describe.FormatNumber(n.X), describe.FormatNumber(n.Y))
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
