package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/darasoba/iconset-builder/pkg/scene"
)

// DOTOptions configures structure diagram output.
type DOTOptions struct {
	// Detailed includes size, position, and lock state in node labels.
	// When false, only name and type are shown.
	Detailed bool
}

// ToDOT converts a scene subtree to Graphviz DOT format. The diagram shows
// the tree structure, with one box per node and parent-to-child edges.
// The resulting DOT string can be rendered with [RenderDOTSVG] or [RenderDOTPNG].
func ToDOT(n scene.Node, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph scene {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	writeDOTNode(&buf, n, opts)
	buf.WriteString("}\n")
	return buf.String()
}

func writeDOTNode(buf *bytes.Buffer, n scene.Node, opts DOTOptions) {
	attrs := []string{fmt.Sprintf("label=%q", dotLabel(n, opts.Detailed))}
	if _, ok := n.(scene.Container); ok {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	fmt.Fprintf(buf, "  %q [%s];\n", n.ID(), strings.Join(attrs, ", "))

	c, ok := n.(scene.Container)
	if !ok {
		return
	}
	for _, child := range c.Children() {
		writeDOTNode(buf, child, opts)
		fmt.Fprintf(buf, "  %q -> %q;\n", n.ID(), child.ID())
	}
}

func dotLabel(n scene.Node, detailed bool) string {
	label := fmt.Sprintf("%s\n(%s)", n.Name(), n.Type())
	if !detailed {
		return label
	}

	pos := n.Position()
	w, h := n.Size()
	parts := []string{
		fmt.Sprintf("at: %s,%s", num(pos.X), num(pos.Y)),
		fmt.Sprintf("size: %s x %s", num(w), num(h)),
	}
	if n.AspectLocked() {
		parts = append(parts, "locked")
	}
	if n.Constraint() != scene.ConstraintFixed {
		parts = append(parts, fmt.Sprintf("constraint: %s", n.Constraint()))
	}
	return label + "\n" + strings.Join(parts, "\n")
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.SVG)
}

// RenderDOTPNG renders a DOT graph to PNG using Graphviz.
func RenderDOTPNG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.PNG)
}

func renderDOT(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
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
