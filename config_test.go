package userlookup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("testdata/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "testdata/passwd", cfg.PasswdPath)
	assert.Equal(t, "testdata/group", cfg.GroupPath)
	assert.Equal(t, "testdata/shadow", cfg.ShadowPath)
	assert.Equal(t, 5*time.Second, cfg.TTL())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	assert.Equal(t, DefaultPasswdPath, cfg.PasswdPath)
	assert.Equal(t, DefaultGroupPath, cfg.GroupPath)
	assert.Equal(t, DefaultShadowPath, cfg.ShadowPath)
	// Zero TTL means caching off and must survive defaulting.
	assert.Equal(t, time.Duration(0), cfg.TTL())

	cfg = Config{CacheTTLSeconds: -3}.WithDefaults()
	assert.Equal(t, time.Duration(0), cfg.TTL())

	cfg = Config{PasswdPath: "custom"}.WithDefaults()
	assert.Equal(t, "custom", cfg.PasswdPath)
	assert.Equal(t, DefaultGroupPath, cfg.GroupPath)
}

func TestOpenConfig(t *testing.T) {
	cfg, err := LoadConfig("testdata/config.yaml")
	require.NoError(t, err)

	db := OpenConfig(cfg)
	entries, err := db.Passwd.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	name, ok, err := db.Group.NameByGID(100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "users", name)
}
