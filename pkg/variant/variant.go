// Package variant defines size/stroke variant rows and their sanitization.
//
// A variant row is one user-specified (size, stroke weight) pair. Rows come
// from UI collaborators or config files and are untrusted: sizes may be
// fractional, zero, negative, or NaN. Sanitize turns a raw list into a
// clean one, dropping rows that cannot produce a variant.
package variant

import (
	"fmt"
	"math"
)

// DefaultStrokeWeight is applied when the user has not opted into custom
// stroke weights.
const DefaultStrokeWeight = 1.0

// Config is one sanitized variant row. Immutable once produced by
// Sanitize.
type Config struct {
	// SizePx is the variant's pixel size; the output component is exactly
	// SizePx × SizePx.
	SizePx int `json:"size" toml:"size"`

	// StrokeWeight is applied to every stroke-bearing node in the variant
	// when custom strokes are enabled.
	StrokeWeight float64 `json:"stroke_weight" toml:"stroke"`
}

// Name returns the variant's component name, which doubles as its value
// on the "Size" axis.
func (c Config) Name() string { return fmt.Sprintf("Size=%dpx", c.SizePx) }

// AxisValue returns the variant's value on the "Size" axis.
func (c Config) AxisValue() string { return fmt.Sprintf("%dpx", c.SizePx) }

// Raw is an unsanitized variant row.
type Raw struct {
	SizePx       float64 `json:"size"`
	StrokeWeight float64 `json:"stroke_weight"`
}

// Sanitize cleans raw variant rows, preserving order:
//
//   - SizePx is rounded to the nearest integer and must be finite and
//     positive, otherwise the row is dropped.
//   - With customStroke, StrokeWeight must be finite and positive,
//     otherwise the row is dropped.
//   - Without customStroke, StrokeWeight is forced to
//     DefaultStrokeWeight regardless of input.
//
// An empty result is not an error here; callers decide whether that is
// fatal.
func Sanitize(rows []Raw, customStroke bool) []Config {
	out := make([]Config, 0, len(rows))
	for _, r := range rows {
		size := math.Round(r.SizePx)
		if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
			continue
		}
		weight := DefaultStrokeWeight
		if customStroke {
			if math.IsNaN(r.StrokeWeight) || math.IsInf(r.StrokeWeight, 0) || r.StrokeWeight <= 0 {
				continue
			}
			weight = r.StrokeWeight
		}
		out = append(out, Config{SizePx: int(size), StrokeWeight: weight})
	}
	return out
}

// Defaults is the default variant table offered when the user supplies no
// rows. Mirrors the common icon grid sizes.
func Defaults() []Config {
	return []Config{
		{SizePx: 16, StrokeWeight: DefaultStrokeWeight},
		{SizePx: 24, StrokeWeight: DefaultStrokeWeight},
		{SizePx: 32, StrokeWeight: DefaultStrokeWeight},
		{SizePx: 48, StrokeWeight: DefaultStrokeWeight},
	}
}
