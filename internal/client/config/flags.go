package config

import (
	"flag"
	"os"
	"time"

	"github.com/sohaibmughall/crm-panel/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend
//	-k string   anon API key
//	-b string   object-storage bucket for media uploads
//	-t int      request timeout in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-b", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendURL, "a", cfg.BackendURL, "base URL of the backend")
	fs.StringVar(&cfg.AnonKey, "k", cfg.AnonKey, "anon API key")
	fs.StringVar(&cfg.StorageBucket, "b", cfg.StorageBucket, "media storage bucket")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
