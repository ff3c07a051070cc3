package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/darasoba/iconset-builder/pkg/cache"
	"github.com/darasoba/iconset-builder/pkg/errors"
	"github.com/darasoba/iconset-builder/pkg/geom"
	"github.com/darasoba/iconset-builder/pkg/iconset"
	"github.com/darasoba/iconset-builder/pkg/observability"
	"github.com/darasoba/iconset-builder/pkg/render"
	"github.com/darasoba/iconset-builder/pkg/scene"
	"github.com/darasoba/iconset-builder/pkg/variant"
)

// previewTTL bounds how long rasterized previews stay cached.
const previewTTL = 24 * time.Hour

// Runner encapsulates pipeline execution with preview caching.
// Both CLI and bridge can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store run results. Multiple goroutines can safely use the same Runner
// with different documents.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs a complete generation over the document's current selection.
//
// The run mutates doc: created sets are appended next to the first source
// icon, the selection moves to the new sets, and the viewport is fitted
// over them. When ctx is cancelled the run stops between icons, keeps the
// sets created so far, and returns the partial result together with the
// context error.
func (r *Runner) Execute(ctx context.Context, doc *scene.Document, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	selection := doc.SelectedNodes()
	if len(selection) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSelection, "select at least one icon")
	}
	if len(selection) > MaxSelection {
		return nil, errors.New(errors.ErrCodeSelectionTooLarge,
			"selection has %d nodes, limit is %d", len(selection), MaxSelection)
	}

	// A nil variant list means the caller asked for the default ramp. A
	// supplied list must survive sanitization; an empty result is a
	// user-facing error, even when the list was empty to begin with.
	variants := variant.Defaults()
	if opts.Variants != nil {
		variants = variant.Sanitize(opts.Variants, opts.CustomStroke)
		if len(variants) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidVariants, "no usable variant rows")
		}
	}

	icons := iconset.Filter(selection)
	if len(icons) == 0 {
		return nil, errors.New(errors.ErrCodeNoEligibleIcons,
			"selection contains no square container with drawable content")
	}

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, len(icons), len(variants))
	start := time.Now()

	result := &Result{
		Stats: Stats{IconCount: len(icons), VariantCount: len(variants)},
	}

	for _, icon := range icons {
		if ctx.Err() != nil {
			result.Cancelled = true
			break
		}

		buildStart := time.Now()
		hooks.OnBuildStart(ctx, icon.Name())

		comps := make([]*scene.Component, 0, len(variants))
		degraded := 0
		for _, v := range variants {
			comp, rep := iconset.Build(icon, v, opts.CustomStroke)
			comps = append(comps, comp)
			result.Stats.StrokeWrites += rep.StrokeWrites
			result.Stats.StrokeSkips += rep.StrokeSkips
			if rep.FlattenErr != nil {
				degraded++
			}
		}
		result.Stats.Degraded += degraded

		set := iconset.Assemble(icon.Name(), comps, variants)
		doc.AppendChild(set)
		result.Sets = append(result.Sets, set)

		hooks.OnBuildComplete(ctx, icon.Name(), degraded, time.Since(buildStart))
		opts.Logger.Debug("built variant set",
			"icon", icon.Name(),
			"variants", len(variants),
			"degraded", degraded)
	}

	if len(result.Sets) > 0 {
		iconset.PlaceSets(icons[0], result.Sets)

		ids := make([]string, len(result.Sets))
		var vb geom.Rect
		for i, s := range result.Sets {
			ids[i] = s.ID()
			vb = vb.Union(scene.Bounds(s))
		}
		doc.Select(ids...)
		doc.FitViewport(vb)
	}

	result.Stats.SetCount = len(result.Sets)
	result.Stats.BuildTime = time.Since(start)
	result.Summary = fmt.Sprintf("Created %d component set(s) with %d size variant(s) each.",
		len(result.Sets), len(variants))

	hooks.OnGenerateComplete(ctx, len(result.Sets), result.Stats.BuildTime, ctx.Err())
	opts.Logger.Info("generated variants",
		"icons", len(icons),
		"sets", len(result.Sets),
		"duration", result.Stats.BuildTime)

	if result.Cancelled {
		return result, ctx.Err()
	}
	return result, nil
}

// =============================================================================
// Previews
// =============================================================================

// PreviewOptions configures preview rendering.
type PreviewOptions struct {
	Format string  `json:"format,omitempty"` // "svg" or "png", defaults to svg
	Scale  float64 `json:"scale,omitempty"`  // raster scale, defaults to 1
}

// Preview renders one document node for display. PNG previews are cached;
// SVG previews are cheap enough to render every time.
func (r *Runner) Preview(ctx context.Context, doc *scene.Document, nodeID string, opts PreviewOptions) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = FormatSVG
	}
	if !ValidFormats[opts.Format] {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q (must be one of: svg, png)", opts.Format)
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	n, ok := doc.FindByID(nodeID)
	if !ok {
		return nil, errors.New(errors.ErrCodeNodeNotFound, "node %s not in document", nodeID)
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Format)
	renderStart := time.Now()

	svg := render.RenderSVG(n)
	if opts.Format == FormatSVG {
		hooks.OnRenderComplete(ctx, opts.Format, len(svg), time.Since(renderStart), nil)
		return svg, nil
	}

	// The key is derived from the rendered SVG, so any change to the node
	// or its subtree invalidates the cached raster.
	key := r.Keyer.PreviewKey(cache.Hash(svg), nodeID, cache.PreviewKeyOpts{
		Format: opts.Format,
		Scale:  opts.Scale,
	})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "preview")
		hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(renderStart), nil)
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, "preview")

	png, err := render.ToPNG(svg, opts.Scale)
	if err != nil {
		hooks.OnRenderComplete(ctx, opts.Format, 0, time.Since(renderStart), err)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rasterize preview")
	}

	if err := r.Cache.Set(ctx, key, png, previewTTL); err != nil {
		r.Logger.Warn("preview cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "preview", len(png))
	}

	hooks.OnRenderComplete(ctx, opts.Format, len(png), time.Since(renderStart), nil)
	return png, nil
}
