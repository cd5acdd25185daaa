package userlookup

import (
	"iter"
	"time"
)

// DefaultGroupPath is the canonical system group database.
const DefaultGroupPath = "/etc/group"

// GroupReader serves lookups against a group-format file through a
// time-cached snapshot. Safe for concurrent use. Point lookups return
// copies; a nil result means no entry matched.
type GroupReader struct {
	c *cachedFile[GroupEntry]
}

// NewGroupReader reads /etc/group with the given cache TTL. A TTL of
// zero disables caching.
func NewGroupReader(ttl time.Duration) *GroupReader {
	return NewGroupReaderAt(DefaultGroupPath, ttl)
}

// NewGroupReaderAt reads a group-format file at an alternative path.
func NewGroupReaderAt(path string, ttl time.Duration) *GroupReader {
	return &GroupReader{c: newCachedFile(path, ttl, ParseGroupEntry)}
}

// Entries returns a copy of all entries in file order.
func (r *GroupReader) Entries() ([]GroupEntry, error) {
	return r.c.list()
}

// All returns a one-shot traversal of the entries in file order,
// covering the snapshot current at the time of the call.
func (r *GroupReader) All() (iter.Seq[GroupEntry], error) {
	return r.c.all()
}

// Find returns the first entry with the given group name, or nil.
func (r *GroupReader) Find(name string) (*GroupEntry, error) {
	return r.c.find(func(e *GroupEntry) bool { return e.Name == name })
}

// FindByGID returns the first entry with the given gid, or nil.
func (r *GroupReader) FindByGID(gid uint32) (*GroupEntry, error) {
	return r.c.find(func(e *GroupEntry) bool { return e.GID == gid })
}

// NameByGID returns the name of the first entry with the given gid;
// ok is false when no entry matches.
func (r *GroupReader) NameByGID(gid uint32) (string, bool, error) {
	e, err := r.FindByGID(gid)
	if err != nil || e == nil {
		return "", false, err
	}
	return e.Name, true, nil
}

// GIDByName returns the gid of the first entry with the given name;
// ok is false when no entry matches.
func (r *GroupReader) GIDByName(name string) (uint32, bool, error) {
	e, err := r.Find(name)
	if err != nil || e == nil {
		return 0, false, err
	}
	return e.GID, true, nil
}
