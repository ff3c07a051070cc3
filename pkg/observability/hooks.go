// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about variant generation, cache operations, and bridge
// requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnGenerateStart(ctx, iconCount, variantCount)
//	// ... build variants ...
//	observability.Pipeline().OnGenerateComplete(ctx, setCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the variant generation pipeline.
type PipelineHooks interface {
	// Generation events cover a full run over the current selection.
	OnGenerateStart(ctx context.Context, iconCount, variantCount int)
	OnGenerateComplete(ctx context.Context, setCount int, duration time.Duration, err error)

	// Build events cover a single icon's variants.
	OnBuildStart(ctx context.Context, icon string)
	OnBuildComplete(ctx context.Context, icon string, degraded int, duration time.Duration)

	// Render events cover SVG and raster exports.
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Bridge Hooks
// =============================================================================

// BridgeHooks receives events from the local bridge server.
type BridgeHooks interface {
	// OnRequest records an incoming bridge request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a bridge response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)

	// OnError records a bridge failure (rejected message, cancelled run).
	OnError(ctx context.Context, method, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnGenerateStart(context.Context, int, int)                       {}
func (NoopPipelineHooks) OnGenerateComplete(context.Context, int, time.Duration, error)   {}
func (NoopPipelineHooks) OnBuildStart(context.Context, string)                            {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, string, int, time.Duration)     {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                           {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopBridgeHooks is a no-op implementation of BridgeHooks.
type NoopBridgeHooks struct{}

func (NoopBridgeHooks) OnRequest(context.Context, string, string)                      {}
func (NoopBridgeHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopBridgeHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	bridgeHooks   BridgeHooks   = NoopBridgeHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetBridgeHooks registers custom bridge hooks.
// This should be called once at application startup before the bridge starts.
func SetBridgeHooks(h BridgeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		bridgeHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Bridge returns the registered bridge hooks.
func Bridge() BridgeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return bridgeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	bridgeHooks = NoopBridgeHooks{}
}
