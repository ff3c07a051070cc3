package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/darasoba/iconset-builder/pkg/errors"
	"github.com/darasoba/iconset-builder/pkg/pipeline"
	"github.com/darasoba/iconset-builder/pkg/render"
)

// previewCommand creates the preview command for rendering single nodes.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output     string
		format     string
		scale      float64
		thumbnail  int
		noCache    bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "preview [document.json] [node-id]",
		Short: "Render a single node to SVG or PNG",
		Long: `Render a single node to SVG or PNG.

PNG renders are cached locally so repeated previews of an unchanged node
are fast. Use --scale for higher-resolution rasters and --thumbnail to
downscale the result to fit a bounding box.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			doc, err := readDocumentFile(args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}

			ctx := withLogger(cmd.Context(), c.Logger)
			data, err := runner.Preview(ctx, doc, args[1], pipeline.PreviewOptions{
				Format: format,
				Scale:  scale,
			})
			if err != nil {
				return err
			}

			if thumbnail > 0 {
				if format != pipeline.FormatPNG {
					return errors.New(errors.ErrCodeInvalidFormat, "--thumbnail requires --format png")
				}
				data, err = render.Thumbnail(data, thumbnail)
				if err != nil {
					return err
				}
			}

			if output == "" {
				output = strings.TrimSuffix(args[0], ".json") + "-" + args[1] + "." + format
			}
			if output == "-" {
				_, err := os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
			}

			printSuccess("Rendered preview (%d bytes)", len(data))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <document>-<node-id>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatSVG, "output format: svg or png")
	cmd.Flags().Float64Var(&scale, "scale", 1.0, "raster scale factor (png only)")
	cmd.Flags().IntVar(&thumbnail, "thumbnail", 0, "downscale png to fit this bounding box")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ~/.config/iconset/iconset.toml)")

	return cmd
}
