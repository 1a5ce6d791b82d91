package batch

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/orizon-lang/ecmaparse/internal/config"
	"github.com/orizon-lang/ecmaparse/internal/parser"
)

// Cache memoizes parse results by filename, source content and
// configuration. Results are shared between callers and must be treated as
// read-only.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	sf      singleflight.Group

	hits   atomic.Int64
	parses atomic.Int64
}

type cacheEntry struct {
	res *parser.Result
	err error
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Key returns the cache key for source read from filename and parsed under
// cfg: the filename, the SHA-256 of the content and the config fingerprint.
// Spans in a result carry the filename, so identical content under two
// names gets two entries.
func Key(filename, source string, cfg config.Config) string {
	sum := sha256.Sum256([]byte(source))
	return filename + "|" + hex.EncodeToString(sum[:]) + "|" + cfg.Fingerprint()
}

// Parse returns the cached result for source read from filename, parsing it
// on a miss. Concurrent misses for the same key run a single parse. Fatal
// parse errors are cached like results.
func (c *Cache) Parse(filename, source string, cfg config.Config, opts ...parser.Option) (*parser.Result, error) {
	key := Key(filename, source, cfg)

	if e, ok := c.lookup(key); ok {
		c.hits.Add(1)
		return e.res, e.err
	}

	v, _, _ := c.sf.Do(key, func() (interface{}, error) {
		// another call may have stored the entry since the first lookup
		if e, ok := c.lookup(key); ok {
			c.hits.Add(1)
			return e, nil
		}

		opts = append([]parser.Option{parser.WithFilename(filename)}, opts...)
		res, err := parser.Parse(source, cfg, opts...)
		e := cacheEntry{res: res, err: err}
		c.parses.Add(1)

		c.mu.Lock()
		c.entries[key] = e
		c.mu.Unlock()

		return e, nil
	})

	e := v.(cacheEntry)
	return e.res, e.err
}

func (c *Cache) lookup(key string) (cacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	return e, ok
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Stats returns the number of cache hits and of parses actually run.
func (c *Cache) Stats() (hits, parses int64) {
	return c.hits.Load(), c.parses.Load()
}

// Forget drops the entry for source read from filename under cfg.
func (c *Cache) Forget(filename, source string, cfg config.Config) {
	c.mu.Lock()
	delete(c.entries, Key(filename, source, cfg))
	c.mu.Unlock()
}
