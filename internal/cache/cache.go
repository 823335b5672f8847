package cache

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// QueryCache keeps the last response of every keyed read. A key is the domain
// tag plus the exact filter/pagination params of the request, so two filter
// sets never share an entry, and switching a filter back serves the old entry
// until something invalidates its tag.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
}

type entry struct {
	tag       string
	value     any
	fetchedAt time.Time
}

func New(ttl time.Duration) *QueryCache {
	return &QueryCache{
		entries: make(map[string]*entry),
		ttl:     ttl,
	}
}

// BuildKey canonicalizes params so the same filter set always produces the
// same key regardless of map iteration order.
func BuildKey(tag string, params map[string]string) string {
	if len(params) == 0 {
		return tag
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(tag)
	sb.WriteByte('?')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(params[k])
	}
	return sb.String()
}

// Result is what a screen renders: the data, whether it is a stale copy kept
// visible because the refresh failed, and the refresh error itself.
type Result[T any] struct {
	Data  T
	Stale bool
	Err   error
}

// Fetch returns the cached value when it is fresh, otherwise runs fn. When fn
// fails and an older value exists, the older value stays visible and the
// error rides along (stale-while-error). force skips the freshness check but
// never the error fallback.
func Fetch[T any](ctx context.Context, c *QueryCache, tag string, params map[string]string, force bool, fn func(ctx context.Context) (T, error)) Result[T] {
	key := BuildKey(tag, params)

	if !force {
		if v, ok := c.lookup(key); ok {
			return Result[T]{Data: v.(T)}
		}
	}

	value, err := fn(ctx)
	if err != nil {
		if v, ok := c.lookupAny(key); ok {
			return Result[T]{Data: v.(T), Stale: true, Err: err}
		}
		var zero T
		return Result[T]{Data: zero, Err: err}
	}

	c.put(key, tag, value)
	return Result[T]{Data: value}
}

// Invalidate drops every entry whose domain tag matches, regardless of the
// filter params it was stored under.
func (c *QueryCache) Invalidate(tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		for _, tag := range tags {
			if e.tag == tag {
				delete(c.entries, key)
				break
			}
		}
	}
}

// InvalidateMutation applies the static mutation table. Unknown mutation
// names invalidate nothing and are logged, so a missing table row shows up
// in the logs instead of as silently stale screens.
func (c *QueryCache) InvalidateMutation(name string) {
	tags, ok := MutationTags[name]
	if !ok {
		log.Error("No invalidation entry for mutation: ", name)
		return
	}
	c.Invalidate(tags...)
}

func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// lookup returns the value only while fresh.
func (c *QueryCache) lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(e.fetchedAt) > c.ttl {
		return nil, false
	}
	return e.value, true
}

// lookupAny returns the value even when expired, for the stale-while-error
// path. Invalidated entries are gone for good.
func (c *QueryCache) lookupAny(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

func (c *QueryCache) put(key, tag string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{
		tag:       tag,
		value:     value,
		fetchedAt: time.Now(),
	}
}
