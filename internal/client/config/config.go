package config

import "time"

// Config holds runtime settings for the admin panel client.
//
// Fields:
//   - BackendURL: base URL of the backend (auth, rest, and storage share it).
//   - AnonKey: the public API key sent when no session token exists.
//   - RequestTimeout: per-request deadline for gateway calls.
//   - StateDir: directory for the local state database; empty means a
//     per-user subdirectory under the OS config dir.
//   - StorageBucket: object-storage bucket for media uploads; empty switches
//     uploads to inline data URIs.
type Config struct {
	BackendURL     string
	AnonKey        string
	RequestTimeout time.Duration
	StateDir       string
	StorageBucket  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://127.0.0.1:54321"
	c.AnonKey = ""
	c.RequestTimeout = 10 * time.Second
	c.StateDir = ""
	c.StorageBucket = "media"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
