package userlookup

import (
	"iter"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedFile is the shared core behind the passwd, group and shadow
// readers: the parsed snapshot of one colon-delimited file plus the
// timestamp of the last successful refresh.
//
// Staleness is checked on every access with a strict
// now < lastRefresh+ttl comparison, so a zero ttl re-reads the file on
// every call even when two calls land on the same clock tick. A refresh
// replaces the snapshot wholesale and only then advances lastRefresh;
// on a read error both are left untouched, so stale data stays available
// and the next call retries. Concurrent refreshes collapse into one via
// singleflight, and the snapshot swap happens under the write lock, so
// no caller ever observes a half-replaced snapshot.
type cachedFile[T any] struct {
	path  string
	ttl   time.Duration
	parse func(string) (T, bool)

	mu          sync.RWMutex
	sf          singleflight.Group
	entries     []T
	lastRefresh time.Time
}

func newCachedFile[T any](path string, ttl time.Duration, parse func(string) (T, bool)) *cachedFile[T] {
	return &cachedFile[T]{
		path:  path,
		ttl:   ttl,
		parse: parse,
		// Backdated so the first access always refreshes.
		lastRefresh: time.Now().Add(-ttl),
	}
}

func (c *cachedFile[T]) isFresh() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Now().Before(c.lastRefresh.Add(c.ttl))
}

func (c *cachedFile[T]) ensureFresh() error {
	if c.isFresh() {
		return nil
	}
	_, err, _ := c.sf.Do("refresh", func() (any, error) {
		// Re-check: another caller may have refreshed while we waited.
		if c.isFresh() {
			return nil, nil
		}
		b, err := os.ReadFile(c.path)
		if err != nil {
			return nil, err
		}
		lines := splitLines(string(b))
		entries := make([]T, 0, len(lines))
		for _, line := range lines {
			if e, ok := c.parse(line); ok {
				entries = append(entries, e)
			}
		}
		c.mu.Lock()
		c.entries = entries
		c.lastRefresh = time.Now()
		c.mu.Unlock()
		return nil, nil
	})
	return err
}

// snapshot returns the current entries after refreshing if stale. The
// slice is the internal one; a refresh replaces it rather than mutating
// it, so iterating a captured header stays safe, but callers must copy
// before handing entries out.
func (c *cachedFile[T]) snapshot() ([]T, error) {
	if err := c.ensureFresh(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries, nil
}

// list returns an owned copy of the current entries in file order.
func (c *cachedFile[T]) list() ([]T, error) {
	snap, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	out := make([]T, len(snap))
	copy(out, snap)
	return out, nil
}

// find returns a copy of the first entry matching match, or nil.
func (c *cachedFile[T]) find(match func(*T) bool) (*T, error) {
	snap, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	for i := range snap {
		if match(&snap[i]) {
			e := snap[i]
			return &e, nil
		}
	}
	return nil, nil
}

// all returns a one-shot traversal over the snapshot current at the
// time of the call. Later refreshes do not affect an obtained traversal.
func (c *cachedFile[T]) all() (iter.Seq[T], error) {
	snap, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for _, e := range snap {
			if !yield(e) {
				return
			}
		}
	}, nil
}
