// Package observability provides hooks for instrumenting placement runs.
//
// The placement engine emits an event for every component it places or fails
// to find and for every border segment it creates. Rather than scraping log
// output, consumers register hooks at startup and receive those events
// directly. Hooks default to no-ops, so the engine stays dependency-free
// from any particular backend.
//
// Register hooks once at application startup:
//
//	observability.SetPlacementHooks(&myHooks{})
//
// The engine calls:
//
//	observability.Placement().OnFootprintPlaced(ctx, "SW7", 84.0, 100.5)
package observability

import (
	"context"
	"sync"
	"time"
)

// PlacementHooks receives events from the placement engine.
type PlacementHooks interface {
	// OnFootprintPlaced records a component placed at a board-space
	// position (mm).
	OnFootprintPlaced(ctx context.Context, ref string, x, y float64)

	// OnFootprintOriented records a rotation applied to a component.
	// Only circularly placed components receive orientations.
	OnFootprintOriented(ctx context.Context, ref string, angleDeg float64)

	// OnFootprintMissing records a reference that was not found on the
	// board. The run continues without it.
	OnFootprintMissing(ctx context.Context, ref string)

	// OnBorderCleared records removal of previously generated border
	// segments.
	OnBorderCleared(ctx context.Context, removed int)

	// OnBorderSegment records one created border edge in board space (mm).
	OnBorderSegment(ctx context.Context, index int, x1, y1, x2, y2 float64)

	// OnRunComplete records the outcome of a full orchestrator run.
	OnRunComplete(ctx context.Context, placed, missing int, duration time.Duration, err error)
}

// CacheHooks receives events from artifact cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopPlacementHooks is a no-op implementation of PlacementHooks.
type NoopPlacementHooks struct{}

func (NoopPlacementHooks) OnFootprintPlaced(context.Context, string, float64, float64) {}
func (NoopPlacementHooks) OnFootprintOriented(context.Context, string, float64)        {}
func (NoopPlacementHooks) OnFootprintMissing(context.Context, string)                  {}
func (NoopPlacementHooks) OnBorderCleared(context.Context, int)                        {}
func (NoopPlacementHooks) OnBorderSegment(context.Context, int, float64, float64, float64, float64) {
}
func (NoopPlacementHooks) OnRunComplete(context.Context, int, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	placementHooks PlacementHooks = NoopPlacementHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	hooksMu        sync.RWMutex
)

// SetPlacementHooks registers custom placement hooks.
// Call once at application startup before running the engine.
func SetPlacementHooks(h PlacementHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		placementHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Placement returns the registered placement hooks.
func Placement() PlacementHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return placementHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	placementHooks = NoopPlacementHooks{}
	cacheHooks = NoopCacheHooks{}
}
