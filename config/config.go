// Package config holds the disassembler's file configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/ia64dis/fetch"
)

// Config is the top-level configuration.
type Config struct {
	// Cache is the geometry of the bundle fetch cache used by traces.
	Cache fetch.Config `json:"cache" yaml:"cache"`

	// Listing controls linear sweeps and their output.
	Listing ListingConfig `json:"listing" yaml:"listing"`

	// Decoder controls bundle decoding.
	Decoder DecoderConfig `json:"decoder" yaml:"decoder"`
}

// ListingConfig controls linear sweeps and their output.
type ListingConfig struct {
	// Workers is the number of goroutines decoding chunks. Default: the
	// number of CPUs.
	Workers int `json:"workers" yaml:"workers"`

	// ChunkBundles is the number of bundles per work item. Default: 4096.
	ChunkBundles int `json:"chunk_bundles" yaml:"chunk_bundles"`

	// ShowBytes prints the raw bundle bytes before each bundle.
	ShowBytes bool `json:"show_bytes" yaml:"show_bytes"`

	// ShowLabels prints label headers at branch targets and symbols.
	ShowLabels bool `json:"show_labels" yaml:"show_labels"`

	// Color highlights mnemonics, labels and errors.
	Color bool `json:"color" yaml:"color"`
}

// DecoderConfig controls bundle decoding.
type DecoderConfig struct {
	// Strict reports reserved encodings as errors.
	Strict bool `json:"strict" yaml:"strict"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Cache: fetch.DefaultConfig(),
		Listing: ListingConfig{
			Workers:      runtime.NumCPU(),
			ChunkBundles: 4096,
			ShowLabels:   true,
		},
	}
}

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
}

// Load reads a configuration from a .json, .yaml or .yml file. Fields
// missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	switch f {
	case formatYAML:
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// Save writes the configuration in the format named by the extension of
// path.
func (c *Config) Save(path string) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}

	var data []byte
	switch f {
	case formatYAML:
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if c.Listing.Workers <= 0 {
		return fmt.Errorf("listing.workers must be > 0")
	}
	if c.Listing.ChunkBundles <= 0 {
		return fmt.Errorf("listing.chunk_bundles must be > 0")
	}
	return nil
}
