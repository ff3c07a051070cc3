package cache

// ScopedKeyer wraps a Keyer with a prefix so that separate workspaces can
// share one backend without key collisions.
//
// Example usage:
//
//	// Workspace-specific keys when several documents share a Redis instance
//	wsKeyer := NewScopedKeyer(NewDefaultKeyer(), "ws:design-system:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DocumentKey generates a prefixed key for document caching.
func (k *ScopedKeyer) DocumentKey(docHash string) string {
	return k.prefix + k.inner.DocumentKey(docHash)
}

// PreviewKey generates a prefixed key for preview caching.
func (k *ScopedKeyer) PreviewKey(docHash, nodeID string, opts PreviewKeyOpts) string {
	return k.prefix + k.inner.PreviewKey(docHash, nodeID, opts)
}
