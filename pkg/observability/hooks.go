// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about manifest loading, ordering runs and
// HTTP requests served.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetOrderHooks(&myOrderHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Order().OnOrderStart(ctx, len(items))
//	// ... sort ...
//	observability.Order().OnOrderComplete(ctx, len(items), cycles, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Order Hooks
// =============================================================================

// OrderHooks receives events from ordering runs.
type OrderHooks interface {
	OnOrderStart(ctx context.Context, items int)

	// OnOrderComplete is called once per run. cycles is the number of
	// distinct cycles found; err is set only for failures other than cycles.
	OnOrderComplete(ctx context.Context, items, cycles int, duration time.Duration, err error)
}

// =============================================================================
// Load Hooks
// =============================================================================

// LoadHooks receives events from manifest loading.
type LoadHooks interface {
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, items int, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response written for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopOrderHooks is a no-op implementation of OrderHooks.
type NoopOrderHooks struct{}

func (NoopOrderHooks) OnOrderStart(context.Context, int)                              {}
func (NoopOrderHooks) OnOrderComplete(context.Context, int, int, time.Duration, error) {}

// NoopLoadHooks is a no-op implementation of LoadHooks.
type NoopLoadHooks struct{}

func (NoopLoadHooks) OnLoadStart(context.Context, string)                                {}
func (NoopLoadHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                       {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	orderHooks OrderHooks = NoopOrderHooks{}
	loadHooks  LoadHooks  = NoopLoadHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetOrderHooks registers custom order hooks.
// This should be called once at application startup before any ordering runs.
func SetOrderHooks(h OrderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		orderHooks = h
	}
}

// SetLoadHooks registers custom load hooks.
func SetLoadHooks(h LoadHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		loadHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Order returns the registered order hooks.
func Order() OrderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return orderHooks
}

// Load returns the registered load hooks.
func Load() LoadHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return loadHooks
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
	orderHooks = NoopOrderHooks{}
	loadHooks = NoopLoadHooks{}
	httpHooks = NoopHTTPHooks{}
}
