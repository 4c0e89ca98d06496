// Package config loads runtime configuration for the admin panel client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables with the CRM_ prefix (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend
//	-k string   anon API key
//	-b string   media storage bucket
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "backend_url": "http://127.0.0.1:54321",
//	  "anon_key": "public-anon-key",
//	  "request_timeout": "10s",
//	  "storage_bucket": "media"
//	}
package config
