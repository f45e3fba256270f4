// Package config loads tetrado configuration from TOML or YAML files.
//
// Every field has a default, so a missing file is not an error. Command
// line flags override values loaded here.
//
//	# ~/.config/tetrado/config.toml
//	[analysis]
//	strict = true
//	format = "text"
//
//	[dssr]
//	binary = "/opt/x3dna/bin/x3dna-dssr"
//
//	[cache]
//	redis_url = "redis://localhost:6379/0"
//	ttl = "24h"
package config

import (
	"time"

	"github.com/matzehuels/tetrado/pkg/errors"
)

// Config represents the complete tetrado configuration.
type Config struct {
	Analysis AnalysisConfig `toml:"analysis" yaml:"analysis"`
	DSSR     DSSRConfig     `toml:"dssr" yaml:"dssr"`
	Cache    CacheConfig    `toml:"cache" yaml:"cache"`
	Archive  ArchiveConfig  `toml:"archive" yaml:"archive"`
	Server   ServerConfig   `toml:"server" yaml:"server"`
	Watch    WatchConfig    `toml:"watch" yaml:"watch"`
}

// AnalysisConfig holds defaults for analyze runs.
type AnalysisConfig struct {
	// Strict restricts tetrads to cWH/cHW pairing.
	Strict bool `toml:"strict" yaml:"strict"`
	// Format is the default report format.
	Format string `toml:"format" yaml:"format"`
}

// DSSRConfig locates the annotator.
type DSSRConfig struct {
	Binary string   `toml:"binary" yaml:"binary"`
	Args   []string `toml:"args" yaml:"args"`
}

// CacheConfig selects and tunes the analysis cache.
type CacheConfig struct {
	Disabled bool `toml:"disabled" yaml:"disabled"`
	// Dir overrides the XDG cache directory for the file cache.
	Dir string `toml:"dir" yaml:"dir"`
	// RedisURL switches to the Redis backend when set.
	RedisURL string `toml:"redis_url" yaml:"redis_url"`
	// Prefix scopes Redis keys.
	Prefix string   `toml:"prefix" yaml:"prefix"`
	TTL    Duration `toml:"ttl" yaml:"ttl"`
}

// ArchiveConfig enables archiving of every analysis to MongoDB.
type ArchiveConfig struct {
	MongoURI   string `toml:"mongo_uri" yaml:"mongo_uri"`
	Database   string `toml:"database" yaml:"database"`
	Collection string `toml:"collection" yaml:"collection"`
}

// Enabled reports whether an archive URI is configured.
func (a ArchiveConfig) Enabled() bool { return a.MongoURI != "" }

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr" yaml:"addr"`
	// MaxBodyBytes caps the size of uploaded documents.
	MaxBodyBytes int64 `toml:"max_body_bytes" yaml:"max_body_bytes"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce   Duration `toml:"debounce" yaml:"debounce"`
	Extensions []string `toml:"extensions" yaml:"extensions"`
}

// Duration is a time.Duration written as a string ("500ms", "24h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for both decoders.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{Format: "text"},
		DSSR:     DSSRConfig{Binary: "x3dna-dssr"},
		Cache: CacheConfig{
			Prefix: "tetrado:",
			TTL:    Duration{7 * 24 * time.Hour},
		},
		Archive: ArchiveConfig{
			Database:   "tetrado",
			Collection: "analyses",
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: 64 << 20,
		},
		Watch: WatchConfig{
			Debounce:   Duration{500 * time.Millisecond},
			Extensions: []string{".json"},
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Analysis.Format == "" {
		return invalid("analysis.format is required")
	}
	if c.DSSR.Binary == "" {
		return invalid("dssr.binary is required")
	}
	if c.Cache.TTL.Duration < 0 {
		return invalid("cache.ttl must not be negative")
	}
	if c.Archive.Enabled() && (c.Archive.Database == "" || c.Archive.Collection == "") {
		return invalid("archive.database and archive.collection are required with archive.mongo_uri")
	}
	if c.Server.Addr == "" {
		return invalid("server.addr is required")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return invalid("server.max_body_bytes must be positive")
	}
	if c.Watch.Debounce.Duration < 0 {
		return invalid("watch.debounce must not be negative")
	}
	return nil
}

func invalid(msg string) error {
	return errors.New(errors.ErrCodeInvalidConfig, "%s", msg)
}
