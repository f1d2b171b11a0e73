// Package observability provides hooks for logging and instrumentation.
//
// Libraries in this module never import a logging or metrics backend for
// progress events. They call the registered hooks instead, and the CLI
// registers implementations backed by its logger at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSourceHooks(&mySourceHooks{})
//	    observability.SetMatrixHooks(&myMatrixHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Source().OnListStart(ctx, "clone", url)
//	// ... clone and list ...
//	observability.Source().OnListComplete(ctx, "clone", url, len(tags), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Source Hooks
// =============================================================================

// SourceHooks receives events from tag sources.
type SourceHooks interface {
	OnListStart(ctx context.Context, kind, url string)
	OnListComplete(ctx context.Context, kind, url string, tagCount int, duration time.Duration, err error)
}

// =============================================================================
// Matrix Hooks
// =============================================================================

// MatrixHooks receives events from the matrix builder.
type MatrixHooks interface {
	// OnTagRejected records a tag that did not qualify, with the reason.
	OnTagRejected(ctx context.Context, tag, reason string)

	// OnVersionAccepted records the first tag contributing a version.
	OnVersionAccepted(ctx context.Context, tag, version string)

	// OnBuildComplete records the final matrix size.
	OnBuildComplete(ctx context.Context, tagCount, versionCount int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout, bad certificate).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSourceHooks is a no-op implementation of SourceHooks.
type NoopSourceHooks struct{}

func (NoopSourceHooks) OnListStart(context.Context, string, string) {}
func (NoopSourceHooks) OnListComplete(context.Context, string, string, int, time.Duration, error) {
}

// NoopMatrixHooks is a no-op implementation of MatrixHooks.
type NoopMatrixHooks struct{}

func (NoopMatrixHooks) OnTagRejected(context.Context, string, string)     {}
func (NoopMatrixHooks) OnVersionAccepted(context.Context, string, string) {}
func (NoopMatrixHooks) OnBuildComplete(context.Context, int, int)         {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sourceHooks SourceHooks = NoopSourceHooks{}
	matrixHooks MatrixHooks = NoopMatrixHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetSourceHooks registers custom source hooks.
// This should be called once at application startup before any tags are listed.
func SetSourceHooks(h SourceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sourceHooks = h
	}
}

// SetMatrixHooks registers custom matrix hooks.
func SetMatrixHooks(h MatrixHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		matrixHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Source returns the registered source hooks.
func Source() SourceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sourceHooks
}

// Matrix returns the registered matrix hooks.
func Matrix() MatrixHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return matrixHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sourceHooks = NoopSourceHooks{}
	matrixHooks = NoopMatrixHooks{}
	httpHooks = NoopHTTPHooks{}
}
