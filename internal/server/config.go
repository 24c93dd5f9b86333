package server

import "time"

// Config holds the mock shop server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8081".
	Addr string

	// CatalogPath is an optional YAML catalog file; empty means the
	// embedded sample catalog.
	CatalogPath string

	// ReadTimeout and WriteTimeout bound request handling.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8081",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}
