package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GehirnInc/crypt/sha512_crypt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnrobert/userlookup"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testDB(t *testing.T, shadow string) *userlookup.DB {
	t.Helper()
	dir := t.TempDir()
	passwd := writeFile(t, dir, "passwd",
		"alice:x:1000:1000:Alice:/home/alice:/bin/bash\n"+
			"bob:x:1001:27:Bob:/home/bob:/bin/bash\n")
	group := writeFile(t, dir, "group",
		"sudo:x:27:alice\n"+
			"users:x:100:alice,bob\n")
	shadowPath := writeFile(t, dir, "shadow", shadow)
	return userlookup.OpenAt(passwd, group, shadowPath, 0)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := sha512_crypt.New().Generate([]byte("s3cret"), nil)
	require.NoError(t, err)

	db := testDB(t,
		"alice:"+hash+":19000:0:99999:7:::\n"+
			"locked:!:19000:0:99999:7:::\n"+
			"starred:*:19000:0:99999:7:::\n")
	a := &Authenticator{DB: db}

	require.NoError(t, a.VerifyPassword("alice", "s3cret"))
	assert.ErrorIs(t, a.VerifyPassword("alice", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, a.VerifyPassword("nosuch", "s3cret"), ErrInvalidCredentials)
	assert.ErrorIs(t, a.VerifyPassword("locked", "s3cret"), ErrUserLocked)
	assert.ErrorIs(t, a.VerifyPassword("starred", "s3cret"), ErrUserLocked)
}

func TestVerifyPasswordUnsupportedHash(t *testing.T) {
	db := testDB(t, "alice:$y$j9T$salt$hash:19000:0:99999:7:::\n")
	// Fallback off: the unsupported format surfaces as-is.
	a := &Authenticator{DB: db}
	assert.ErrorIs(t, a.VerifyPassword("alice", "whatever"), ErrUnsupportedHash)
}

func TestVerifyCrypt(t *testing.T) {
	hash, err := sha512_crypt.New().Generate([]byte("pw"), nil)
	require.NoError(t, err)

	ok, err := verifyCrypt(hash, "pw")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifyCrypt(hash, "not-pw")
	require.NoError(t, err)
	assert.False(t, ok)

	for _, h := range []string{"$y$j9T$x$y", "$7$C6..../....$x", "$2b$10$abcdefghij"} {
		_, err = verifyCrypt(h, "pw")
		assert.ErrorIs(t, err, ErrUnsupportedHash)
	}
}

func TestLocked(t *testing.T) {
	assert.True(t, locked(""))
	assert.True(t, locked("!"))
	assert.True(t, locked("!$6$salt$hash"))
	assert.True(t, locked("*"))
	assert.False(t, locked("$6$salt$hash"))
}

func TestIsAdmin(t *testing.T) {
	db := testDB(t, "alice:*:19000:0:99999:7:::\n")
	a := New(db)

	// alice is listed in sudo; bob's primary group is sudo's gid.
	ok, err := a.IsAdmin("alice")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.IsAdmin("bob")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.IsAdmin("ghost")
	require.NoError(t, err)
	assert.False(t, ok)
}
