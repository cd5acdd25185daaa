package userlookup

import "time"

// DB bundles readers for the three account databases so queries can
// join across them. All three share one TTL but refresh independently.
type DB struct {
	Passwd *PasswdReader
	Group  *GroupReader
	Shadow *ShadowReader
}

// Open returns a DB over the system database paths.
func Open(ttl time.Duration) *DB {
	return OpenAt(DefaultPasswdPath, DefaultGroupPath, DefaultShadowPath, ttl)
}

// OpenAt returns a DB over explicit file paths.
func OpenAt(passwdPath, groupPath, shadowPath string, ttl time.Duration) *DB {
	return &DB{
		Passwd: NewPasswdReaderAt(passwdPath, ttl),
		Group:  NewGroupReaderAt(groupPath, ttl),
		Shadow: NewShadowReaderAt(shadowPath, ttl),
	}
}

// UserGroups returns the groups the user belongs to: the group matching
// the user's primary gid first, then every group listing the user as a
// member, in file order. An unknown user yields only member-of groups,
// which for a consistent database means none.
func (db *DB) UserGroups(username string) ([]GroupEntry, error) {
	u, err := db.Passwd.Find(username)
	if err != nil {
		return nil, err
	}
	groups, err := db.Group.Entries()
	if err != nil {
		return nil, err
	}
	var out []GroupEntry
	if u != nil {
		for i := range groups {
			if groups[i].GID == u.GID {
				out = append(out, groups[i])
				break
			}
		}
	}
	for _, g := range groups {
		if u != nil && g.GID == u.GID {
			continue
		}
		for _, m := range g.Members {
			if m == username {
				out = append(out, g)
				break
			}
		}
	}
	return out, nil
}
