// Package document loads config documents from YAML or JSON sources into
// plain Go values (map[string]any, []any, string, int, float64, bool, nil).
// Parsing is the only concern here; shape checking belongs to the validator.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format selects the decoder used for a byte payload.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath maps a file extension to its decoder format.
func FormatForPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// Load reads and decodes a single config file. The decoded value may be of
// any YAML/JSON shape; callers decide whether a non-mapping root is an error.
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	return Parse(data, format)
}

// Parse decodes a byte payload in the given format.
func Parse(data []byte, format Format) (any, error) {
	switch format {
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("YAML parsing error: %w", err)
		}
		return v, nil

	case FormatJSON:
		// UseNumber keeps "1" distinct from "1.0"; normalize turns the
		// resulting json.Number values into int64/float64.
		dec := json.NewDecoder(strings.NewReader(string(data)))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("JSON parsing error: %w", err)
		}
		return normalize(v), nil

	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// normalize rewrites json.Number leaves to int64 or float64 so the validator
// sees the same numeric types regardless of the source format.
func normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		for k, elem := range val {
			val[k] = normalize(elem)
		}
		return val
	case []any:
		for i, elem := range val {
			val[i] = normalize(elem)
		}
		return val
	default:
		return v
	}
}
