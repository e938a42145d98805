// Package config provides configuration loading and management for semsbom.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete semsbom configuration
type Config struct {
	Scan    ScanConfig    `yaml:"scan"`
	Catalog CatalogConfig `yaml:"catalog"`
	Output  OutputConfig  `yaml:"output"`
	NATS    NATSConfig    `yaml:"nats"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Watch   WatchConfig   `yaml:"watch"`
}

// ScanConfig configures directory scanning for the generate command
type ScanConfig struct {
	// SkipPatterns are doublestar globs excluded from the scan
	SkipPatterns []string `yaml:"skip_patterns"`
	// VersionFile is the file read for the package version (default: VERSION)
	VersionFile string `yaml:"version_file"`
}

// CatalogConfig configures the license catalog source
type CatalogConfig struct {
	// Path is an external license-list-data JSON file (empty = embedded catalog)
	Path string `yaml:"path"`
}

// OutputConfig configures document serialization
type OutputConfig struct {
	// Format is the default export format: tagvalue, ntriples or turtle
	Format string `yaml:"format"`
}

// NATSConfig configures graph publishing
type NATSConfig struct {
	// URL is the NATS server URL (empty = publishing disabled)
	URL string `yaml:"url"`
	// Subject is the subject converted documents are published to
	Subject string `yaml:"subject"`
}

// FetchConfig configures license text fetching
type FetchConfig struct {
	// Timeout is the maximum time to wait for a fetch response
	Timeout time.Duration `yaml:"timeout"`
	// UserAgent is sent with fetch requests
	UserAgent string `yaml:"user_agent"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// Debounce is the quiet period before a changed file is reconverted
	Debounce time.Duration `yaml:"debounce"`
	// MetricsAddr is the prometheus listen address (empty = metrics disabled)
	MetricsAddr string `yaml:"metrics_addr"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			SkipPatterns: []string{"**/.git/**", "**/.svn/**", "**/node_modules/**"},
			VersionFile:  "VERSION",
		},
		Catalog: CatalogConfig{
			Path: "", // Embedded catalog
		},
		Output: OutputConfig{
			Format: "tagvalue",
		},
		NATS: NATSConfig{
			URL:     "",
			Subject: "sbom.graph.ingest.entity",
		},
		Fetch: FetchConfig{
			Timeout:   30 * time.Second,
			UserAgent: "semsbom",
		},
		Watch: WatchConfig{
			Debounce:    500 * time.Millisecond,
			MetricsAddr: "",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "tagvalue", "ntriples", "turtle":
	default:
		return fmt.Errorf("output.format must be tagvalue, ntriples or turtle")
	}
	if c.NATS.URL != "" && c.NATS.Subject == "" {
		return fmt.Errorf("nats.subject is required when nats.url is set")
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive")
	}
	if c.Watch.Debounce <= 0 {
		return fmt.Errorf("watch.debounce must be positive")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Scan
	if len(other.Scan.SkipPatterns) > 0 {
		c.Scan.SkipPatterns = other.Scan.SkipPatterns
	}
	if other.Scan.VersionFile != "" {
		c.Scan.VersionFile = other.Scan.VersionFile
	}

	// Catalog
	if other.Catalog.Path != "" {
		c.Catalog.Path = other.Catalog.Path
	}

	// Output
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}

	// Fetch
	if other.Fetch.Timeout != 0 {
		c.Fetch.Timeout = other.Fetch.Timeout
	}
	if other.Fetch.UserAgent != "" {
		c.Fetch.UserAgent = other.Fetch.UserAgent
	}

	// Watch
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
	if other.Watch.MetricsAddr != "" {
		c.Watch.MetricsAddr = other.Watch.MetricsAddr
	}
}
