// Package userlookup reads and indexes the colon-delimited Unix account
// databases (/etc/passwd, /etc/group and /etc/shadow) and serves lookups
// by name or numeric id from a time-cached in-memory snapshot.
//
// Each reader owns one file. Every lookup first checks whether the cached
// snapshot is older than the configured cache TTL and re-reads the file
// when it is; a TTL of zero disables caching entirely. The files are
// never written.
package userlookup
