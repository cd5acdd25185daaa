package userlookup

import "strings"

// PasswdEntry is one row of a passwd-format file.
type PasswdEntry struct {
	Name   string
	Passwd string
	UID    uint32
	GID    uint32
	Gecos  string
	Home   string
	Shell  string
}

// ParsePasswdEntry parses a single passwd line. The line is split on at
// most 7 colons, so a shell field containing colons stays intact. A line
// with fewer than 7 fields or a non-numeric uid/gid yields ok == false;
// field contents are otherwise taken verbatim, no trimming.
func ParsePasswdEntry(line string) (PasswdEntry, bool) {
	parts := strings.SplitN(line, ":", passwdFields)
	if len(parts) < passwdFields {
		return PasswdEntry{}, false
	}
	uid, err := parseID(parts[2])
	if err != nil {
		return PasswdEntry{}, false
	}
	gid, err := parseID(parts[3])
	if err != nil {
		return PasswdEntry{}, false
	}
	return PasswdEntry{
		Name:   parts[0],
		Passwd: parts[1],
		UID:    uid,
		GID:    gid,
		Gecos:  parts[4],
		Home:   parts[5],
		Shell:  parts[6],
	}, true
}

// GroupEntry is one row of a group-format file.
//
// Members is the comma-split last field. An empty member field yields
// []string{""} rather than an empty slice; that is what naive comma
// splitting has always produced here and existing consumers depend on it.
type GroupEntry struct {
	Name    string
	Passwd  string
	GID     uint32
	Members []string
}

// ParseGroupEntry parses a single group line. The line is split on at
// most 4 colons, so member names containing colons survive inside the
// last field. Fewer than 4 fields or a non-numeric gid yields ok == false.
func ParseGroupEntry(line string) (GroupEntry, bool) {
	parts := strings.SplitN(line, ":", groupFields)
	if len(parts) < groupFields {
		return GroupEntry{}, false
	}
	gid, err := parseID(parts[2])
	if err != nil {
		return GroupEntry{}, false
	}
	return GroupEntry{
		Name:    parts[0],
		Passwd:  parts[1],
		GID:     gid,
		Members: strings.Split(parts[3], ","),
	}, true
}

// ShadowEntry is one row of a shadow-format file. The ageing fields are
// kept as strings; empty means unset.
type ShadowEntry struct {
	Name       string
	Hash       string
	LastChange string
	Min        string
	Max        string
	Warn       string
	Inactive   string
	Expire     string
	Reserved   string
}

// ParseShadowEntry parses a single shadow line. Lines shorter than the
// full 9 fields are padded with empty fields, which shadow(5) consumers
// conventionally tolerate; a line without at least name and hash yields
// ok == false.
func ParseShadowEntry(line string) (ShadowEntry, bool) {
	parts := strings.SplitN(line, ":", shadowFields)
	if len(parts) < 2 {
		return ShadowEntry{}, false
	}
	for len(parts) < shadowFields {
		parts = append(parts, "")
	}
	return ShadowEntry{
		Name:       parts[0],
		Hash:       parts[1],
		LastChange: parts[2],
		Min:        parts[3],
		Max:        parts[4],
		Warn:       parts[5],
		Inactive:   parts[6],
		Expire:     parts[7],
		Reserved:   parts[8],
	}, true
}
