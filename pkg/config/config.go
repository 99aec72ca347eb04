// Package config loads tproj settings from YAML or TOML files.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/spicery/tproj/pkg/render"
	"github.com/spicery/tproj/pkg/table"
)

// Format is the encoding of a settings file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// File represents the structure of a settings file. Empty fields keep their
// default.
type File struct {
	Placeholder string `yaml:"placeholder" toml:"placeholder"`
	Separator   string `yaml:"separator" toml:"separator"`
	LogLevel    string `yaml:"log_level" toml:"log_level"`
	LogFormat   string `yaml:"log_format" toml:"log_format"`
}

// Settings holds the effective configuration of a run.
type Settings struct {
	Placeholder string
	Separator   string
	LogLevel    string
	LogFormat   string
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Placeholder: table.DefaultPlaceholder,
		Separator:   render.DefaultSeparator,
		LogLevel:    "warn",
		LogFormat:   "text",
	}
}

// DetectFormat picks the file format from the extension, defaulting to YAML.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// ParseFormat validates a format name given on the command line.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown config format '%s': must be 'yaml' or 'toml'", name)
	}
}

// LoadFile loads and parses a settings file.
func LoadFile(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filename, err)
	}

	file, err := Parse(data, DetectFormat(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filename, err)
	}
	return file, nil
}

// Parse decodes settings from data in the given format.
func Parse(data []byte, format Format) (*File, error) {
	var file File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	}
	return &file, nil
}

// ApplyToDefaults overlays the non-empty fields of file on the defaults and
// validates the result.
func ApplyToDefaults(file *File) (*Settings, error) {
	settings := Default()
	if file != nil {
		if file.Placeholder != "" {
			settings.Placeholder = file.Placeholder
		}
		if file.Separator != "" {
			settings.Separator = file.Separator
		}
		if file.LogLevel != "" {
			settings.LogLevel = strings.ToLower(file.LogLevel)
		}
		if file.LogFormat != "" {
			settings.LogFormat = strings.ToLower(file.LogFormat)
		}
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate checks that every setting holds a usable value.
func (s *Settings) Validate() error {
	if s.Placeholder == "" {
		return fmt.Errorf("placeholder must not be empty")
	}
	if strings.ContainsAny(s.Placeholder, " \n") {
		return fmt.Errorf("placeholder %q must not contain spaces or newlines", s.Placeholder)
	}
	if s.Separator == "" {
		return fmt.Errorf("separator must not be empty")
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level '%s': must be 'debug', 'info', 'warn', or 'error'", s.LogLevel)
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format '%s': must be 'text' or 'json'", s.LogFormat)
	}
	return nil
}

// Marshal encodes the settings as a settings file.
func (s *Settings) Marshal(format Format) ([]byte, error) {
	file := File{
		Placeholder: s.Placeholder,
		Separator:   s.Separator,
		LogLevel:    s.LogLevel,
		LogFormat:   s.LogFormat,
	}

	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(file); err != nil {
			return nil, fmt.Errorf("failed to marshal settings to TOML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := yaml.Marshal(&file)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal settings to YAML: %w", err)
		}
		return data, nil
	}
}
