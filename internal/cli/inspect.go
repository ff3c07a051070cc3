package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/darasoba/iconset-builder/pkg/errors"
	"github.com/darasoba/iconset-builder/pkg/render"
	"github.com/darasoba/iconset-builder/pkg/scene"
)

// inspectCommand creates the inspect command for examining documents.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		nodeID   string
		asDOT    bool
		detailed bool
		format   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "inspect [document.json]",
		Short: "Print scene graph structure and statistics",
		Long: `Print scene graph structure and statistics.

By default inspect prints an indented tree of the document with per-type
node counts. With --dot the tree is emitted as Graphviz DOT instead, and
--format svg or png renders the DOT graph to a file via graphviz.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocumentFile(args[0])
			if err != nil {
				return err
			}

			root, err := inspectRoot(doc, nodeID)
			if err != nil {
				return err
			}

			if !asDOT {
				printTree(doc, root, detailed)
				return nil
			}

			dot := render.ToDOT(root, render.DOTOptions{Detailed: detailed})
			switch format {
			case "":
				fmt.Print(dot)
				return nil
			case "svg", "png":
				return writeDOTRender(dot, format, output, args[0])
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want svg or png)", format)
			}
		},
	}

	cmd.Flags().StringVar(&nodeID, "node", "", "inspect a single node instead of the whole document")
	cmd.Flags().BoolVar(&asDOT, "dot", false, "emit Graphviz DOT instead of a tree")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include position, size, and lock state")
	cmd.Flags().StringVarP(&format, "format", "f", "", "render DOT to svg or png (requires --dot)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for rendered DOT")

	return cmd
}

// inspectRoot resolves the node to inspect. Without --node the document's
// top-level children are wrapped in a synthetic frame so a single graph
// covers the whole canvas.
func inspectRoot(doc *scene.Document, nodeID string) (scene.Node, error) {
	if nodeID != "" {
		n, ok := doc.FindByID(nodeID)
		if !ok {
			return nil, errors.New(errors.ErrCodeNodeNotFound, "node %q not found", nodeID)
		}
		return n, nil
	}
	name := doc.Name
	if name == "" {
		name = "document"
	}
	root := scene.NewFrame(name, 0, 0)
	for _, child := range doc.Children() {
		root.AppendChild(child)
	}
	return root, nil
}

// printTree prints an indented node tree followed by per-type counts.
func printTree(doc *scene.Document, root scene.Node, detailed bool) {
	counts := map[scene.Type]int{}
	total := 0

	var walk func(n scene.Node, depth int)
	walk = func(n scene.Node, depth int) {
		if depth > 0 {
			counts[n.Type()]++
			total++
		}
		line := strings.Repeat("  ", depth) + n.Name() + " " + StyleDim.Render("("+string(n.Type())+")")
		if detailed && depth > 0 {
			pos := n.Position()
			w, h := n.Size()
			line += " " + StyleDim.Render(fmt.Sprintf("at (%.0f, %.0f) %gx%g", pos.X, pos.Y, w, h))
		}
		fmt.Println(line)
		if p, ok := n.(scene.Container); ok {
			for _, child := range p.Children() {
				walk(child, depth+1)
			}
		}
	}
	walk(root, 0)

	fmt.Println()
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		printKeyValue(t, fmt.Sprintf("%d", counts[scene.Type(t)]))
	}
	printKeyValue("total", fmt.Sprintf("%d", total))
	if len(doc.Selection) > 0 {
		printKeyValue("selected", fmt.Sprintf("%d", len(doc.Selection)))
	}
}

// writeDOTRender renders DOT to svg or png and writes the result.
func writeDOTRender(dot, format, output, input string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "svg":
		data, err = render.RenderDOTSVG(dot)
	case "png":
		data, err = render.RenderDOTPNG(dot)
	}
	if err != nil {
		return err
	}

	if output == "" {
		output = strings.TrimSuffix(input, ".json") + "." + format
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
	}
	printSuccess("Rendered scene graph")
	printFile(output)
	return nil
}
