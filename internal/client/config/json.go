package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sohaibmughall/crm-panel/internal/flagx"
	"github.com/sohaibmughall/crm-panel/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	BackendURL     string         `json:"backend_url"`
	AnonKey        string         `json:"anon_key"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StateDir       string         `json:"state_dir"`
	StorageBucket  string         `json:"storage_bucket"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flag; with no flag, nothing is loaded.
// Read or unmarshal errors panic, the caller has no way to proceed with a
// half-applied file.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendURL != "" {
		cfg.BackendURL = jc.BackendURL
	}
	if jc.AnonKey != "" {
		cfg.AnonKey = jc.AnonKey
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.StateDir != "" {
		cfg.StateDir = jc.StateDir
	}
	if jc.StorageBucket != "" {
		cfg.StorageBucket = jc.StorageBucket
	}
}
