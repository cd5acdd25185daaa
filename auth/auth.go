// Package auth verifies passwords and privileges against the account
// databases served by a userlookup.DB.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/md5_crypt"
	"github.com/GehirnInc/crypt/sha256_crypt"
	"github.com/GehirnInc/crypt/sha512_crypt"

	"github.com/hnrobert/userlookup"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserLocked         = errors.New("user is locked")
	ErrUnsupportedHash    = errors.New("unsupported password hash")
)

// Authenticator verifies passwords against the shadow database of a DB.
// For hash formats the crypt package cannot handle (yescrypt on current
// Ubuntu, bcrypt) it can fall back to driving su(1) behind a PTY, which
// verifies with whatever the host itself supports.
type Authenticator struct {
	DB *userlookup.DB
	// SuFallback enables the su(1) fallback for unsupported hashes.
	SuFallback bool
	// SuTimeout bounds one su attempt. Zero means 6 seconds.
	SuTimeout time.Duration
}

// New returns an Authenticator with the su fallback enabled.
func New(db *userlookup.DB) *Authenticator {
	return &Authenticator{DB: db, SuFallback: true}
}

// VerifyPassword checks password against the user's shadow hash. It
// returns nil on success, ErrInvalidCredentials on mismatch or unknown
// user, and ErrUserLocked for locked accounts.
func (a *Authenticator) VerifyPassword(username, password string) error {
	se, err := a.DB.Shadow.Find(username)
	if err != nil {
		return err
	}
	if se == nil {
		return ErrInvalidCredentials
	}
	if locked(se.Hash) {
		return ErrUserLocked
	}
	ok, err := verifyCrypt(se.Hash, password)
	if errors.Is(err, ErrUnsupportedHash) && a.SuFallback {
		ok, err = a.verifyWithSu(username, password)
	}
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCredentials
	}
	return nil
}

// IsAdmin reports whether the user belongs to a sudo-capable group.
func (a *Authenticator) IsAdmin(username string) (bool, error) {
	groups, err := a.DB.UserGroups(username)
	if err != nil {
		return false, err
	}
	for _, g := range groups {
		if g.Name == "sudo" || g.Name == "wheel" {
			return true, nil
		}
	}
	return false, nil
}

func locked(hash string) bool {
	return hash == "" || strings.HasPrefix(hash, "!") || strings.HasPrefix(hash, "*")
}

// verifyCrypt handles $1$ (md5-crypt), $5$ (sha256-crypt) and $6$
// (sha512-crypt). Verify returns nil on a match.
func verifyCrypt(hash, password string) (bool, error) {
	crypters := []crypt.Crypter{
		sha512_crypt.New(),
		sha256_crypt.New(),
		md5_crypt.New(),
	}
	for _, c := range crypters {
		if err := c.Verify(hash, []byte(password)); err == nil {
			return true, nil
		}
	}
	// yescrypt ($y$), scrypt ($7$) and bcrypt ($2*) need the fallback.
	if strings.HasPrefix(hash, "$y$") || strings.HasPrefix(hash, "$7$") || strings.HasPrefix(hash, "$2") {
		return false, ErrUnsupportedHash
	}
	return false, nil
}
