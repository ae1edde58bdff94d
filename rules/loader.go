package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for ruleset files of unknown format.
var ErrUnsupportedFormat = errors.New("unsupported ruleset format")

// Format names accepted by ParseFormat.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// LoadFile loads and parses a ruleset file. The format is inferred from the
// extension (.json, .yaml, .yml, .toml).
func LoadFile(path string) (Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ruleset{}, fmt.Errorf("failed to read ruleset file %s: %w", path, err)
	}

	rs, err := ParseFormat(data, InferFormat(path))
	if err != nil {
		return Ruleset{}, fmt.Errorf("%s: %w", path, err)
	}

	return rs, nil
}

// InferFormat returns the format implied by a file extension, or "".
func InferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return ""
	}
}

// ParseFormat parses data in the named format.
func ParseFormat(data []byte, format string) (Ruleset, error) {
	switch format {
	case FormatJSON:
		return ParseJSON(data)
	case FormatYAML, "yml":
		return Parse(data)
	case FormatTOML:
		return ParseTOML(data)
	default:
		return Ruleset{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Parse parses a YAML (or JSON) ruleset.
func Parse(data []byte) (Ruleset, error) {
	var rs Ruleset

	err := yaml.Unmarshal(data, &rs)
	if err != nil {
		return Ruleset{}, fmt.Errorf("failed to parse ruleset YAML: %w", err)
	}

	return rs, nil
}

// ParseJSON parses a JSON ruleset.
func ParseJSON(data []byte) (Ruleset, error) {
	var rs Ruleset

	err := json.Unmarshal(data, &rs)
	if err != nil {
		return Ruleset{}, fmt.Errorf("failed to parse ruleset JSON: %w", err)
	}

	return rs, nil
}

// ParseTOML parses a TOML ruleset. Fields are ordered by name.
func ParseTOML(data []byte) (Ruleset, error) {
	var raw map[string]any

	err := toml.Unmarshal(data, &raw)
	if err != nil {
		return Ruleset{}, fmt.Errorf("failed to parse ruleset TOML: %w", err)
	}

	return FromMap(raw), nil
}

// Marshal serializes a ruleset in the named format.
func Marshal(rs Ruleset, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(rs, "", "  ")
	case FormatYAML, "yml":
		return yaml.Marshal(rs)
	case FormatTOML:
		return toml.Marshal(rs.ToMap())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
