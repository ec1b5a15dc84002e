// Package config loads the optional pdfbox.yaml file that overrides the
// archive endpoint, cache location, and java runtime.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory when
// no --config flag is given.
const DefaultFileName = "pdfbox.yaml"

// Config captures the overridable settings for jar resolution and execution.
// Zero values mean "use the built-in default".
type Config struct {
	// ArchiveURL is the version listing endpoint.
	ArchiveURL string `yaml:"archive_url"`
	// CacheDir holds downloaded pdfbox-app-<version>.jar files.
	CacheDir string `yaml:"cache_dir"`
	// JavaPath points at the java executable; empty means search PATH.
	JavaPath string `yaml:"java_path"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{}
}

// Load reads and decodes the config file at path. A missing file yields the
// default configuration; a malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
