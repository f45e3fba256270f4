// Package cache stores serialized analyses keyed by input content.
//
// Three backends implement [Cache]:
//   - [FileCache]: one JSON file per entry under the user cache directory
//   - [RedisCache]: a shared Redis instance for the HTTP server
//   - [NullCache]: caching disabled
//
// Keys are produced by a [Keyer] from the SHA-256 of the input document and
// the analysis options, so identical inputs analysed the same way share an
// entry regardless of file name.
package cache

import (
	"context"
	"time"
)

// TTLReport is how long an analysis stays cached by default.
const TTLReport = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}
