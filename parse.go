package userlookup

import (
	"strconv"
	"strings"
)

const (
	passwdFields = 7
	groupFields  = 4
	shadowFields = 9
)

// parseID parses a decimal uid/gid as an unsigned 32-bit integer.
func parseID(field string) (uint32, error) {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// splitLines splits whole-file contents into lines, tolerating a missing
// trailing newline and CRLF endings.
func splitLines(contents string) []string {
	lines := strings.Split(contents, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
