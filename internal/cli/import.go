package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/darasoba/iconset-builder/pkg/errors"
	"github.com/darasoba/iconset-builder/pkg/render"
	"github.com/darasoba/iconset-builder/pkg/scene"
)

// importCommand creates the import command for converting SVG files.
func (c *CLI) importCommand() *cobra.Command {
	var (
		output string
		name   string
		merge  string
	)

	cmd := &cobra.Command{
		Use:   "import [icon.svg]",
		Short: "Convert an SVG file into an icon document",
		Long: `Convert an SVG file into an icon document.

The SVG's paths, rectangles, circles, and lines become scene nodes inside
a frame sized from the viewBox. The frame is selected in the resulting
document so a following 'generate' run picks it up directly.

With --into the frame is appended to an existing document instead of
creating a new one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
			}

			f, err := os.Open(input)
			if err != nil {
				return errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", input)
			}
			frame, err := render.ImportSVG(f, name)
			f.Close()
			if err != nil {
				return err
			}

			var doc *scene.Document
			if merge != "" {
				doc, err = readDocumentFile(merge)
				if err != nil {
					return err
				}
				placeAfterLast(doc, frame)
			} else {
				doc = scene.NewDocument(name)
			}
			doc.AppendChild(frame)
			doc.Select(frame.ID())

			if output == "" {
				if merge != "" {
					output = merge
				} else {
					output = strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
				}
			}
			if err := writeDocumentFile(doc, output); err != nil {
				return err
			}

			w, h := frame.Size()
			printSuccess("Imported %s (%gx%g, %d nodes)", name, w, h, countNodes(frame))
			if output != "-" {
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output document (default: <icon>.json)")
	cmd.Flags().StringVar(&name, "name", "", "icon name (default: file basename)")
	cmd.Flags().StringVar(&merge, "into", "", "append to an existing document instead of creating one")

	return cmd
}

// placeAfterLast positions a new frame to the right of the document's
// existing content so imports never overlap.
func placeAfterLast(doc *scene.Document, frame *scene.Frame) {
	maxX := 0.0
	for _, n := range doc.Children() {
		pos := n.Position()
		w, _ := n.Size()
		if right := pos.X + w; right > maxX {
			maxX = right
		}
	}
	if len(doc.Children()) > 0 {
		frame.SetPosition(maxX+40, 0)
	}
}

// countNodes counts the nodes in a subtree, excluding the root.
func countNodes(root scene.Node) int {
	n := -1
	for range scene.Walk(root) {
		n++
	}
	return n
}
