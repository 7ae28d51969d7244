package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vyrodovalexey/avapolicy/internal/util"
)

// LoadFile decodes the YAML file at path on top of cfg. Keys missing from
// the file leave the corresponding fields of cfg untouched; unknown keys
// are rejected.
func LoadFile(path string, cfg *Config) error {
	if path == "" {
		return util.NewConfigError("configFile", "path is empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return util.NewConfigErrorWithCause("configFile", fmt.Sprintf("file does not exist: %s", path), err)
		}
		return fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return util.NewConfigError("configFile", fmt.Sprintf("path is a directory, not a file: %s", path))
	}

	// G304: path is validated above via os.Stat and comes from trusted configuration
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return decode(data, cfg)
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return util.NewConfigErrorWithCause("configFile", "failed to parse YAML", err)
	}
	return nil
}
