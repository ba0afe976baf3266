// Package cache provides TTL-based caching for pipeline stages.
//
// The pipeline caches two artifacts: the rendered layout text (keyed on the
// selection content hash) and the assembled prompt (keyed on the layout hash
// plus the request parameters). Backends:
//
//   - [FileCache]: filesystem cache for CLI usage (XDG cache dir)
//   - [MemoryCache]: in-process cache for tests and single-shot servers
//   - [RedisCache]: shared cache for the HTTP API
//   - [NullCache]: disables caching
//
// Keys are generated by a [Keyer] so CLI and API agree on the key scheme;
// [ScopedKeyer] prefixes keys for namespace isolation.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per artifact kind. Selections change constantly while a design
// is edited, so both artifacts expire within a day.
const (
	// TTLLayout is how long rendered layout text stays cached.
	TTLLayout = 24 * time.Hour

	// TTLPrompt is how long assembled prompts stay cached.
	TTLPrompt = 24 * time.Hour
)

// Cache stores byte values under string keys with a TTL.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the cached value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// PromptKeyOpts are the request parameters that participate in prompt cache
// keys. Two requests with the same selection but different parameters must
// never share a prompt.
type PromptKeyOpts struct {
	Framework   string `json:"framework"`
	Schema      string `json:"schema"`
	Description string `json:"description"`
}

// Keyer generates cache keys for pipeline artifacts.
type Keyer interface {
	// LayoutKey generates a key for rendered layout text.
	LayoutKey(selectionHash string) string

	// PromptKey generates a key for an assembled prompt.
	PromptKey(layoutHash string, opts PromptKeyOpts) string
}

// DefaultKeyer is the standard key scheme shared by CLI and API.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for rendered layout text.
func (k *DefaultKeyer) LayoutKey(selectionHash string) string {
	return hashKey("layout", selectionHash)
}

// PromptKey generates a key for an assembled prompt.
func (k *DefaultKeyer) PromptKey(layoutHash string, opts PromptKeyOpts) string {
	return hashKey("prompt", layoutHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, e.g. one
// namespace per API tenant.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// LayoutKey generates a prefixed layout key.
func (k *ScopedKeyer) LayoutKey(selectionHash string) string {
	return k.prefix + k.inner.LayoutKey(selectionHash)
}

// PromptKey generates a prefixed prompt key.
func (k *ScopedKeyer) PromptKey(layoutHash string, opts PromptKeyOpts) string {
	return k.prefix + k.inner.PromptKey(layoutHash, opts)
}
