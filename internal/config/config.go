// Package config loads the server configuration from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the registry server. Every field has
// a working default, so an empty (or absent) file is a valid configuration.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	// DatabasePath is the SQLite database file.
	DatabasePath string `yaml:"database_path"`

	// VendorPhotoDir and ProductPhotoDir are the writable photo
	// directories, one per entity kind.
	VendorPhotoDir  string `yaml:"vendor_photo_dir"`
	ProductPhotoDir string `yaml:"product_photo_dir"`

	// PlaceholderImage is served whenever a requested photo is missing.
	PlaceholderImage string `yaml:"placeholder_image"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Listen:           "127.0.0.1:8080",
		DatabasePath:     "registry.db",
		VendorPhotoDir:   "vendor_photos",
		ProductPhotoDir:  "product_photos",
		PlaceholderImage: "static/no-photo.png",
	}
}

// Load reads a YAML config file. An empty path returns the defaults; fields
// not set in the file keep their default values. Unknown fields are
// rejected (catches typos like "lisen:").
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
