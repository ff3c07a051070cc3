// Package cli implements the iconset command-line interface.
package cli

import (
	"context"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/darasoba/iconset-builder/pkg/buildinfo"
	"github.com/darasoba/iconset-builder/pkg/cache"
	"github.com/darasoba/iconset-builder/pkg/errors"
	"github.com/darasoba/iconset-builder/pkg/pipeline"
	"github.com/darasoba/iconset-builder/pkg/variant"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "iconset"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "iconset",
		Short:        "Iconset generates size variants of icons as component sets",
		Long:         `Iconset is a CLI tool for icon libraries: it clones selected icons at multiple pixel sizes, normalizes their stroke weights, flattens them into locked outlines, and assembles the results into component sets.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// --verbose re-levels the shared logger before any subcommand runs,
	// so its placement on the command line does not matter.
	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
	}

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The cache backend is
// chosen from the config file, unless noCache forces the null cache.
func (c *CLI) newRunner(ctx context.Context, cfg *Config, noCache bool) (*pipeline.Runner, error) {
	store, err := newCacheBackend(ctx, cfg.Cache, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func newCacheBackend(ctx context.Context, cfg CacheConfig, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Backend {
	case "", BackendFile:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case BackendMongo:
		return cache.NewMongoCache(ctx, cache.MongoOptions{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", cfg.Backend)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/iconset/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/iconset/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Flag Helpers
// =============================================================================

// parseSizes parses a comma-separated size list ("16,24,32") into variant
// rows carrying the given stroke weight. Whitespace around entries is
// ignored. An unparsable entry is an error; row-level validity (positive,
// finite) is left to the pipeline's sanitizer.
func parseSizes(s string, stroke float64) ([]variant.Raw, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	rows := make([]variant.Raw, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		size, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidVariants, "invalid size %q", p)
		}
		rows = append(rows, variant.Raw{SizePx: size, StrokeWeight: stroke})
	}
	return rows, nil
}

// sizesFromInts converts picker selections to variant rows.
func sizesFromInts(sizes []int, stroke float64) []variant.Raw {
	rows := make([]variant.Raw, 0, len(sizes))
	for _, s := range sizes {
		rows = append(rows, variant.Raw{SizePx: float64(s), StrokeWeight: stroke})
	}
	return rows
}

// defaultStroke returns the stroke weight to carry on parsed rows when the
// user did not pass --stroke. Non-finite input falls back to the default.
func defaultStroke(w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return variant.DefaultStrokeWeight
	}
	return w
}
