// Package pipeline provides the core variant generation pipeline.
//
// This package implements the complete validate → build → assemble → place
// flow that can be used by CLI and bridge components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// A generation run consists of four stages:
//
//  1. Validate: check the selection and sanitize the variant rows
//  2. Build: produce one component per eligible icon and variant
//  3. Assemble: group each icon's components into a styled component set
//  4. Place: lay the sets out next to the first source icon and update
//     the document selection and viewport
//
// The build stage is best-effort per icon: a stroke that cannot be applied
// or a flatten that fails degrades that variant but never aborts the run.
// Cancelling the context stops the run between icons; sets already created
// stay in the document.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Variants: []variant.Raw{{SizePx: 16}, {SizePx: 24}},
//	}
//	result, err := runner.Execute(ctx, doc, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/darasoba/iconset-builder/pkg/scene"
	"github.com/darasoba/iconset-builder/pkg/variant"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Bridge
// =============================================================================

// MaxSelection is the largest selection a run will accept. Each selected
// icon produces one component set, so this bounds the work of a single run.
const MaxSelection = 100

// Preview format constants.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported preview formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a generation run.
// This struct supports JSON serialization for bridge requests.
type Options struct {
	// Variants are the requested size rows. Nil means the default size
	// ramp (16, 24, 32, 48 px); a non-nil list must contain at least one
	// usable row or the run is rejected.
	Variants []variant.Raw `json:"variants,omitempty"`

	// CustomStroke applies each row's stroke weight instead of the default.
	CustomStroke bool `json:"custom_stroke,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults applies defaults for a generation run.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once. Variant rows are checked during Execute, since
// row-level rejection depends on the sanitizer.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a generation run.
type Result struct {
	// Sets are the component sets created by the run, in icon order.
	Sets []*scene.ComponentSet

	// Summary is the user-facing completion message.
	Summary string

	// Cancelled reports that the run stopped early. Sets created before
	// the stop are kept.
	Cancelled bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains execution statistics for a run.
type Stats struct {
	IconCount    int
	VariantCount int
	SetCount     int
	Degraded     int
	StrokeWrites int
	StrokeSkips  int
	BuildTime    time.Duration
}
