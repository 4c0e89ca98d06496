package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the env-settable subset of Config. Variables follow the
// CRM_ prefix; unset variables leave the current value alone.
type envConfig struct {
	BackendURL     string        `env:"CRM_BACKEND_URL"`
	AnonKey        string        `env:"CRM_ANON_KEY"`
	RequestTimeout time.Duration `env:"CRM_REQUEST_TIMEOUT"`
	StateDir       string        `env:"CRM_STATE_DIR"`
	StorageBucket  string        `env:"CRM_STORAGE_BUCKET"`
}

func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.BackendURL != "" {
		cfg.BackendURL = ec.BackendURL
	}
	if ec.AnonKey != "" {
		cfg.AnonKey = ec.AnonKey
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.StateDir != "" {
		cfg.StateDir = ec.StateDir
	}
	if ec.StorageBucket != "" {
		cfg.StorageBucket = ec.StorageBucket
	}
}
