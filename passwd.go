package userlookup

import (
	"iter"
	"time"
)

// DefaultPasswdPath is the canonical system passwd database.
const DefaultPasswdPath = "/etc/passwd"

// PasswdReader serves lookups against a passwd-format file through a
// time-cached snapshot. Safe for concurrent use. Point lookups return
// copies, so results stay valid across later refreshes; a nil result
// means no entry matched.
type PasswdReader struct {
	c *cachedFile[PasswdEntry]
}

// NewPasswdReader reads /etc/passwd with the given cache TTL. A TTL of
// zero disables caching.
func NewPasswdReader(ttl time.Duration) *PasswdReader {
	return NewPasswdReaderAt(DefaultPasswdPath, ttl)
}

// NewPasswdReaderAt reads a passwd-format file at an alternative path.
func NewPasswdReaderAt(path string, ttl time.Duration) *PasswdReader {
	return &PasswdReader{c: newCachedFile(path, ttl, ParsePasswdEntry)}
}

// Entries returns a copy of all entries in file order.
func (r *PasswdReader) Entries() ([]PasswdEntry, error) {
	return r.c.list()
}

// All returns a one-shot traversal of the entries in file order,
// covering the snapshot current at the time of the call.
func (r *PasswdReader) All() (iter.Seq[PasswdEntry], error) {
	return r.c.all()
}

// Find returns the first entry with the given username, or nil.
func (r *PasswdReader) Find(username string) (*PasswdEntry, error) {
	return r.c.find(func(e *PasswdEntry) bool { return e.Name == username })
}

// FindByUID returns the first entry with the given uid, or nil.
func (r *PasswdReader) FindByUID(uid uint32) (*PasswdEntry, error) {
	return r.c.find(func(e *PasswdEntry) bool { return e.UID == uid })
}

// UsernameByUID returns the username of the first entry with the given
// uid; ok is false when no entry matches.
func (r *PasswdReader) UsernameByUID(uid uint32) (string, bool, error) {
	e, err := r.FindByUID(uid)
	if err != nil || e == nil {
		return "", false, err
	}
	return e.Name, true, nil
}

// UIDByUsername returns the uid of the first entry with the given
// username; ok is false when no entry matches.
func (r *PasswdReader) UIDByUsername(username string) (uint32, bool, error) {
	e, err := r.Find(username)
	if err != nil || e == nil {
		return 0, false, err
	}
	return e.UID, true, nil
}
