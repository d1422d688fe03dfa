package rest

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
)

const defaultCacheSize = 128

type cachedBody struct {
	body      []byte
	fetchedAt time.Time
}

// responseCache keeps raw response bodies keyed by request URL. Entries older
// than ttl are treated as missing.
type responseCache struct {
	entries *lru.Cache
	ttl     time.Duration
	now     func() time.Time
}

func newResponseCache(size int, ttl time.Duration, now func() time.Time) (*responseCache, error) {
	if ttl <= 0 {
		return nil, nil
	}
	if size <= 0 {
		size = defaultCacheSize
	}

	entries, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &responseCache{entries: entries, ttl: ttl, now: now}, nil
}

func (c *responseCache) get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	raw, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}

	cached := raw.(cachedBody)
	if c.now().Sub(cached.fetchedAt) > c.ttl {
		c.entries.Remove(key)
		return nil, false
	}

	return cached.body, true
}

func (c *responseCache) put(key string, body []byte) {
	if c == nil {
		return
	}

	c.entries.Add(key, cachedBody{body: body, fetchedAt: c.now()})
}
