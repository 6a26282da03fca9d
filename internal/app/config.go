package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Root is the directory scanned for application manifests.
	Root string
	// AppName restricts output to a single application when non-empty.
	AppName string
	// HashOnly prints the bare digest without the application name.
	// Meaningful only together with AppName.
	HashOnly bool
	// ShowGraph renders the dependency graph instead of hashing.
	ShowGraph bool
	// WriteVersions persists each digest next to its manifest.
	WriteVersions bool
	// ShortHash truncates printed and persisted digests to ShortHashLength.
	ShortHash       bool
	ShortHashLength int
	// Verbose appends timing statistics after the result listing.
	Verbose bool

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Root == "" {
		return nil, errors.New("Root is a required configuration field and cannot be empty")
	}
	if cfg.HashOnly && cfg.AppName == "" {
		return nil, errors.New("HashOnly requires AppName to be set")
	}
	if cfg.ShortHash && cfg.ShortHashLength <= 0 {
		return nil, errors.New("ShortHashLength must be positive when ShortHash is enabled")
	}
	return &cfg, nil
}
