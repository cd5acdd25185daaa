package userlookup

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config selects the database file locations and the cache lifetime.
type Config struct {
	PasswdPath string `yaml:"passwd_path"`
	GroupPath  string `yaml:"group_path"`
	ShadowPath string `yaml:"shadow_path"`
	// CacheTTLSeconds of 0 disables caching; every lookup re-reads.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
}

// DefaultConfig caches for 30 seconds against the system paths.
func DefaultConfig() Config {
	return Config{
		PasswdPath:      DefaultPasswdPath,
		GroupPath:       DefaultGroupPath,
		ShadowPath:      DefaultShadowPath,
		CacheTTLSeconds: 30,
	}
}

// WithDefaults fills unset paths with the system defaults. A TTL of 0
// is a valid setting (caching off) and is left alone; negative values
// are clamped to 0.
func (c Config) WithDefaults() Config {
	if c.PasswdPath == "" {
		c.PasswdPath = DefaultPasswdPath
	}
	if c.GroupPath == "" {
		c.GroupPath = DefaultGroupPath
	}
	if c.ShadowPath == "" {
		c.ShadowPath = DefaultShadowPath
	}
	if c.CacheTTLSeconds < 0 {
		c.CacheTTLSeconds = 0
	}
	return c
}

// TTL returns the configured cache lifetime as a Duration.
func (c Config) TTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// LoadConfig reads a YAML config file and applies defaults.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg.WithDefaults(), nil
}

// OpenConfig returns a DB over the locations and TTL in cfg.
func OpenConfig(cfg Config) *DB {
	cfg = cfg.WithDefaults()
	return OpenAt(cfg.PasswdPath, cfg.GroupPath, cfg.ShadowPath, cfg.TTL())
}
