// Package config provides configuration loading and management for rulingpipe.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Config represents the complete rulingpipe configuration
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Extract ExtractConfig `yaml:"extract"`
	Watch   WatchConfig   `yaml:"watch"`
	Metrics MetricsConfig `yaml:"metrics"`
	Publish PublishConfig `yaml:"publish"`
	Log     LogConfig     `yaml:"log"`
}

// InputConfig configures where ruling documents are read from
type InputConfig struct {
	// Dir is the directory holding the source documents
	Dir string `yaml:"dir"`
	// Extension is the required source file extension (default: .xml)
	Extension string `yaml:"extension"`
	// Include lists doublestar patterns, relative to Dir, of eligible files (default: *.xml)
	Include []string `yaml:"include"`
	// Exclude lists doublestar patterns of files to skip
	Exclude []string `yaml:"exclude"`
	// MaxSize is the largest document accepted, in bytes (default: 50 MB)
	MaxSize int64 `yaml:"max_size"`
}

// OutputConfig configures where artifacts are written
type OutputConfig struct {
	// Dir is the destination directory, created if missing
	Dir string `yaml:"dir"`
	// Extension is the artifact file extension (default: .json)
	Extension string `yaml:"extension"`
	// OmitContext drops the JSON-LD @context from each metadata record
	OmitContext bool `yaml:"omit_context"`
}

// ExtractConfig configures full-text extraction
type ExtractConfig struct {
	// RootElement is the document element (default: open-rechtspraak)
	RootElement string `yaml:"root_element"`
	// BodyElement is the ruling body holding the sections (default: uitspraak)
	BodyElement string `yaml:"body_element"`
	// Sections lists the section titles to keep (default: OVERWEGINGEN, BESLISSING)
	Sections []string `yaml:"sections"`
	// Order is the paragraph order: "document" or "grouped" (default: document)
	Order string `yaml:"order"`
	// InlineElements are folded into their parent's text (default: emphasis)
	InlineElements []string `yaml:"inline_elements"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// DebounceDelay is how long changes are collected before processing
	DebounceDelay time.Duration `yaml:"debounce_delay"`
}

// MetricsConfig configures run metrics
type MetricsConfig struct {
	// Textfile, when set, receives the metrics in Prometheus text format after each run
	Textfile string `yaml:"textfile"`
}

// PublishConfig configures artifact notifications
type PublishConfig struct {
	// NATSURL is the NATS server to notify (empty = disabled)
	NATSURL string `yaml:"nats_url"`
	// Subject is the subject notifications are published on
	Subject string `yaml:"subject"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Dir:       "_data/rechtspraak-xml",
			Extension: ".xml",
			Include:   []string{"*.xml"},
			MaxSize:   50 * 1024 * 1024,
		},
		Output: OutputConfig{
			Dir:       "_data/rechtspraak-json",
			Extension: ".json",
		},
		Extract: ExtractConfig{
			RootElement:    "open-rechtspraak",
			BodyElement:    "uitspraak",
			Sections:       []string{"OVERWEGINGEN", "BESLISSING"},
			Order:          "document",
			InlineElements: []string{"emphasis"},
		},
		Watch: WatchConfig{
			DebounceDelay: 500 * time.Millisecond,
		},
		Publish: PublishConfig{
			Subject: "rulings.converted",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Input.Dir == "" {
		return fmt.Errorf("input.dir is required")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if !strings.HasPrefix(c.Input.Extension, ".") {
		return fmt.Errorf("input.extension must start with a dot")
	}
	if !strings.HasPrefix(c.Output.Extension, ".") {
		return fmt.Errorf("output.extension must start with a dot")
	}
	if c.Input.MaxSize <= 0 {
		return fmt.Errorf("input.max_size must be positive")
	}
	for _, p := range append(append([]string{}, c.Input.Include...), c.Input.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid input pattern %q", p)
		}
	}
	if len(c.Extract.Sections) == 0 {
		return fmt.Errorf("extract.sections must not be empty")
	}
	if c.Extract.RootElement == "" || c.Extract.BodyElement == "" {
		return fmt.Errorf("extract.root_element and extract.body_element are required")
	}
	switch c.Extract.Order {
	case "document", "grouped":
	default:
		return fmt.Errorf("extract.order must be document or grouped")
	}
	if c.Watch.DebounceDelay <= 0 {
		return fmt.Errorf("watch.debounce_delay must be positive")
	}
	if c.Publish.NATSURL != "" && c.Publish.Subject == "" {
		return fmt.Errorf("publish.subject is required when publish.nats_url is set")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
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

	// Input
	if other.Input.Dir != "" {
		c.Input.Dir = other.Input.Dir
	}
	if other.Input.Extension != "" {
		c.Input.Extension = other.Input.Extension
	}
	if len(other.Input.Include) > 0 {
		c.Input.Include = other.Input.Include
	}
	if len(other.Input.Exclude) > 0 {
		c.Input.Exclude = other.Input.Exclude
	}
	if other.Input.MaxSize != 0 {
		c.Input.MaxSize = other.Input.MaxSize
	}

	// Output
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}
	if other.Output.Extension != "" {
		c.Output.Extension = other.Output.Extension
	}
	if other.Output.OmitContext {
		c.Output.OmitContext = true
	}

	// Extract
	if other.Extract.RootElement != "" {
		c.Extract.RootElement = other.Extract.RootElement
	}
	if other.Extract.BodyElement != "" {
		c.Extract.BodyElement = other.Extract.BodyElement
	}
	if len(other.Extract.Sections) > 0 {
		c.Extract.Sections = other.Extract.Sections
	}
	if other.Extract.Order != "" {
		c.Extract.Order = other.Extract.Order
	}
	if len(other.Extract.InlineElements) > 0 {
		c.Extract.InlineElements = other.Extract.InlineElements
	}

	// Watch
	if other.Watch.DebounceDelay != 0 {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}

	// Metrics
	if other.Metrics.Textfile != "" {
		c.Metrics.Textfile = other.Metrics.Textfile
	}

	// Publish
	if other.Publish.NATSURL != "" {
		c.Publish.NATSURL = other.Publish.NATSURL
	}
	if other.Publish.Subject != "" {
		c.Publish.Subject = other.Publish.Subject
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
