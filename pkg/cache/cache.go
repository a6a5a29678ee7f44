// Package cache provides byte-blob caching with TTL for rendered artifacts
// and converted documents.
//
// Three backends implement the [Cache] interface:
//
//   - [FileCache]: entries stored as files, for CLI usage
//   - [RedisCache]: Redis-backed storage for the HTTP service
//   - [NullCache]: a no-op backend used when caching is disabled
//
// Keys are produced by a [Keyer] so that cache namespaces stay consistent
// between the CLI and the service. All keys are content-addressed: the
// graph or DOT text is hashed, so a changed input can never collide with a
// stale entry.
package cache

import (
	"context"
	"time"
)

// Cache stores byte blobs under string keys with optional expiry.
// Implementations must treat expired entries as absent.
type Cache interface {
	// Get retrieves the value for key. The second return value reports
	// whether the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry for key. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer produces namespaced cache keys.
type Keyer interface {
	// DocKey keys a converted document by target format and source graph
	// content.
	DocKey(format, graphHash string) string

	// ArtifactKey keys a rendered artifact by DOT content and raster
	// format.
	ArtifactKey(dotHash, format string) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// DocKey returns "doc:<format>:<hash>".
func (DefaultKeyer) DocKey(format, graphHash string) string {
	return "doc:" + format + ":" + graphHash
}

// ArtifactKey returns "artifact:<format>:<hash>".
func (DefaultKeyer) ArtifactKey(dotHash, format string) string {
	return "artifact:" + format + ":" + dotHash
}
