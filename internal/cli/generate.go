package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/darasoba/iconset-builder/pkg/pipeline"
	"github.com/darasoba/iconset-builder/pkg/scene"
	"github.com/darasoba/iconset-builder/pkg/variant"
)

// generateCommand creates the generate command for building component sets.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output       string
		sizesStr     string
		stroke       float64
		customStroke bool
		selectStr    []string
		interactive  bool
		noCache      bool
		configPath   string
	)

	cmd := &cobra.Command{
		Use:   "generate [document.json]",
		Short: "Build component sets of size variants from selected icons",
		Long: `Build component sets of size variants from selected icons.

The generate command reads an icon document, clones every selected icon at
each requested pixel size, normalizes stroke weights, flattens the clones
into locked outline vectors, and groups them into one component set per
icon. The sets are placed next to the original icons and the updated
document is written back.

Pass "-" as the document to read from stdin and write to stdout. Without
--sizes, sizes come from the config file's [[variant]] rows, or fall back
to the built-in ramp (16, 24, 32, 48 px).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			rows, err := parseSizes(sizesStr, defaultStroke(stroke))
			if err != nil {
				return err
			}
			if rows == nil {
				rows = cfg.Rows()
			}
			if interactive {
				sizes, err := pickSizes()
				if err != nil {
					return err
				}
				if sizes == nil {
					printInfo("No sizes selected")
					return nil
				}
				rows = sizesFromInts(sizes, defaultStroke(stroke))
			}

			opts := pipeline.Options{
				Variants:     rows,
				CustomStroke: customStroke || cmd.Flags().Changed("stroke"),
				Logger:       c.Logger,
			}
			return c.runGenerate(cmd.Context(), args[0], opts, cfg, output, selectStr, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output document (default: overwrite input)")
	cmd.Flags().StringVar(&sizesStr, "sizes", "", "comma-separated pixel sizes (e.g. 16,24,32)")
	cmd.Flags().Float64Var(&stroke, "stroke", variant.DefaultStrokeWeight, "stroke weight applied to every size")
	cmd.Flags().BoolVar(&customStroke, "custom-stroke", false, "keep per-row stroke weights from the config file")
	cmd.Flags().StringSliceVar(&selectStr, "select", nil, "node IDs to select (default: document selection)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick sizes interactively")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ~/.config/iconset/iconset.toml)")

	return cmd
}

// runGenerate loads the document, executes the pipeline, and writes the
// updated document back.
func (c *CLI) runGenerate(ctx context.Context, input string, opts pipeline.Options, cfg *Config, output string, selection []string, noCache bool) error {
	doc, err := readDocumentFile(input)
	if err != nil {
		return err
	}
	if len(selection) > 0 {
		doc.Select(selection...)
	}
	if len(doc.Selection) == 0 {
		// Convenience for documents saved without a selection.
		doc.Select(topLevelIconIDs(doc)...)
	}

	runner, err := c.newRunner(ctx, cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	ctx = withLogger(ctx, c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating variants for %d icon(s)...", len(doc.Selection)))
	spinner.Start()

	result, err := runner.Execute(ctx, doc, opts)
	if err != nil && (result == nil || !result.Cancelled) {
		spinner.StopWithError("Generation failed")
		return err
	}
	if result.Cancelled {
		spinner.StopWithError("Generation cancelled")
	} else {
		spinner.StopWithSuccess(result.Summary)
	}
	printRunStats(result.Stats)
	if result.Stats.Degraded > 0 {
		printWarning("%d variant(s) kept editable clones after outline failure", result.Stats.Degraded)
	}

	if output == "" {
		output = input
	}
	if err := writeDocumentFile(doc, output); err != nil {
		return err
	}
	if output != "-" {
		printFile(output)
	}
	return nil
}

// topLevelIconIDs returns the IDs of the document's top-level frames and
// components, used when no selection is present.
func topLevelIconIDs(doc *scene.Document) []string {
	var ids []string
	for _, n := range doc.Children() {
		switch n.Type() {
		case scene.TypeFrame, scene.TypeComponent, scene.TypeInstance:
			ids = append(ids, n.ID())
		}
	}
	return ids
}
