package userlookup

import "time"

// DefaultShadowPath is the canonical system shadow database. Reading it
// normally requires root or membership in the shadow group.
const DefaultShadowPath = "/etc/shadow"

// ShadowReader serves lookups against a shadow-format file through a
// time-cached snapshot. Safe for concurrent use.
type ShadowReader struct {
	c *cachedFile[ShadowEntry]
}

// NewShadowReader reads /etc/shadow with the given cache TTL. A TTL of
// zero disables caching.
func NewShadowReader(ttl time.Duration) *ShadowReader {
	return NewShadowReaderAt(DefaultShadowPath, ttl)
}

// NewShadowReaderAt reads a shadow-format file at an alternative path.
func NewShadowReaderAt(path string, ttl time.Duration) *ShadowReader {
	return &ShadowReader{c: newCachedFile(path, ttl, ParseShadowEntry)}
}

// Entries returns a copy of all entries in file order.
func (r *ShadowReader) Entries() ([]ShadowEntry, error) {
	return r.c.list()
}

// Find returns the first entry with the given username, or nil.
func (r *ShadowReader) Find(username string) (*ShadowEntry, error) {
	return r.c.find(func(e *ShadowEntry) bool { return e.Name == username })
}
