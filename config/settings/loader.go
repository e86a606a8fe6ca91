package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	infraCfg "github.com/rocky-jaiswal/static-site-cdk/config"
)

// ErrUnsupportedFormat is returned for settings files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported settings file format")

// LoadConfig reads the site settings from filePath, picking the decoder by extension
// (.yaml, .yml or .toml). An empty path yields Default(). Unknown keys are rejected so a
// typo does not silently fall back to a default.
func LoadConfig(filePath string) (Settings, error) {
	if filePath == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading site settings file %s: %w", filePath, err)
	}

	var s Settings
	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; treat it as "no overrides".
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, fmt.Errorf("error unmarshalling site settings from %s: %w", filePath, err)
		}
	case ".toml":
		md, err := toml.Decode(string(raw), &s)
		if err != nil {
			return Settings{}, fmt.Errorf("error unmarshalling site settings from %s: %w", filePath, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Settings{}, fmt.Errorf("error unmarshalling site settings from %s: unknown keys %v", filePath, undecoded)
		}
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", filePath, err)
	}
	return s.WithDefaults(), nil
}

// Validate checks field formats. It wraps config.ErrInvalidConfig.
func (s Settings) Validate() error {
	return infraCfg.Struct(s)
}
