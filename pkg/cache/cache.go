// Package cache provides pluggable byte caches and cache key derivation for
// documents and rendered previews.
//
// # Architecture
//
// The package separates two concerns:
//   - Cache: where bytes live (file directory, Redis, MongoDB, or nowhere)
//   - Keyer: how keys are derived from document content and render options
//
// Keys are content-addressed. A document key is derived from the serialized
// document, so re-rendering an unchanged document hits the cache while any
// edit produces a fresh key. All backends share the same semantics: Get
// returns (data, hit, error) where a miss is not an error.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache stores opaque byte values under string keys with optional expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. A missing or expired key returns hit=false
	// with a nil error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// PreviewKeyOpts captures the render options that affect preview bytes.
type PreviewKeyOpts struct {
	Format string // "svg" or "png"
	Scale  float64
}

// Keyer derives cache keys for the artifact types the tool caches.
type Keyer interface {
	// DocumentKey derives a key for a serialized document.
	DocumentKey(docHash string) string

	// PreviewKey derives a key for a rendered preview of one node.
	PreviewKey(docHash, nodeID string, opts PreviewKeyOpts) string
}

// DefaultKeyer is the standard content-addressed key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DocumentKey returns "document:<hash>".
func (k *DefaultKeyer) DocumentKey(docHash string) string {
	return "document:" + docHash
}

// PreviewKey hashes the node identity together with the render options so
// that rescaled or re-formatted previews never collide.
func (k *DefaultKeyer) PreviewKey(docHash, nodeID string, opts PreviewKeyOpts) string {
	return hashKey("preview", docHash, nodeID, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)

// =============================================================================
// Content Hashing
// =============================================================================

// Hash returns the full sha256 of data as 64 hex chars. Callers hash the
// rendered SVG of a node to build its docHash, so any edit anywhere in
// the subtree changes the preview key without dirty tracking.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey derives a "<kind>:<sha256>" key from the given parts. The parts
// (content hash, node ID, render options) are serialized as JSON before
// hashing so structurally different inputs can never collide on
// concatenation.
func hashKey(kind string, parts ...any) string {
	blob, _ := json.Marshal(parts)
	return kind + ":" + Hash(blob)
}
