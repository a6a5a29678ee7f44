// Package observability provides hooks for metrics and tracing.
//
// The codec, render, and cache layers emit events through hook interfaces
// with no-op defaults, so the library carries no hard dependency on any
// observability backend. An application registers implementations once at
// startup:
//
//	func main() {
//	    observability.SetCodecHooks(&myCodecHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Emitting an event is a single call:
//
//	observability.Codec().OnWriteComplete(ctx, string(format), len(out), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// CodecHooks receives events from graph serialization and deserialization.
type CodecHooks interface {
	// OnWriteComplete records a finished write: target format, output
	// size in bytes, elapsed time, and the error if the write failed.
	OnWriteComplete(ctx context.Context, format string, size int, duration time.Duration, err error)

	// OnReadComplete records a finished read: source format, input size
	// in bytes, elapsed time, and the error if the read failed.
	OnReadComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// RenderHooks receives events from Graphviz rasterization.
type RenderHooks interface {
	// OnRenderComplete records a finished rasterization.
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnHit records a cache hit for the given key namespace.
	OnHit(ctx context.Context, keyType string)

	// OnMiss records a cache miss for the given key namespace.
	OnMiss(ctx context.Context, keyType string)

	// OnSet records a cache write and its payload size.
	OnSet(ctx context.Context, keyType string, size int)
}

// NoopCodecHooks is a no-op implementation of CodecHooks.
type NoopCodecHooks struct{}

func (NoopCodecHooks) OnWriteComplete(context.Context, string, int, time.Duration, error) {}
func (NoopCodecHooks) OnReadComplete(context.Context, string, int, time.Duration, error)  {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnHit(context.Context, string)      {}
func (NoopCacheHooks) OnMiss(context.Context, string)     {}
func (NoopCacheHooks) OnSet(context.Context, string, int) {}

var (
	codecHooks  CodecHooks  = NoopCodecHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetCodecHooks registers custom codec hooks.
// Call once at application startup before any codec operations.
func SetCodecHooks(h CodecHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		codecHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// Call once at application startup before any render operations.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// Call once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Codec returns the registered codec hooks.
func Codec() CodecHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return codecHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// Primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	codecHooks = NoopCodecHooks{}
	renderHooks = NoopRenderHooks{}
	cacheHooks = NoopCacheHooks{}
}
