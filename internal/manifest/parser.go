package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/titanous/json5"
	"go.yaml.in/yaml/v3"
)

// Format is a manifest source notation.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatJS   Format = "js"
)

// ValidFormats lists the supported notations.
var ValidFormats = []Format{FormatYAML, FormatJSON, FormatJS}

// ParseFormat converts a user-supplied name ("yaml", "yml", "json", "js",
// "json5") into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "js", "cjs", "mjs", "json5":
		return FormatJS, nil
	default:
		return "", fmt.Errorf("unsupported manifest format %q (use yaml, json, or js)", name)
	}
}

// FormatFromPath picks the notation from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("manifest %s has no file extension", path)
	}
	return ParseFormat(ext)
}

// Extension returns the file extension conventionally used for f.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatJS:
		return ".js"
	default:
		return ".json"
	}
}

var (
	exportPattern  = regexp.MustCompile(`(?m)^\s*(?:module\.exports\s*=|export\s+default\b)`)
	requirePattern = regexp.MustCompile(`require\(\s*(?:'([^']*)'|"([^"]*)")\s*\)`)
)

// decode turns raw bytes into a generic document.
func decode(data []byte, format Format) (interface{}, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var doc interface{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("unmarshaling YAML: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("unmarshaling JSON: %w", err)
		}
		if dec.More() {
			return nil, fmt.Errorf("unmarshaling JSON: unexpected data after top-level value")
		}
	case FormatJS:
		body := objectLiteral(data)
		if err := json5.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("unmarshaling object literal: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}

	return normalize(doc), nil
}

// objectLiteral extracts the exported object from a JavaScript config file.
// Plain require("x") calls become the string "x" so plugin references survive.
func objectLiteral(data []byte) []byte {
	if loc := exportPattern.FindIndex(data); loc != nil {
		data = data[loc[1]:]
	}
	data = bytes.TrimSpace(data)
	data = bytes.TrimSuffix(data, []byte(";"))

	return requirePattern.ReplaceAllFunc(data, func(m []byte) []byte {
		sub := requirePattern.FindSubmatch(m)
		ref := string(sub[1])
		if len(sub[2]) > 0 {
			ref = string(sub[2])
		}
		quoted, _ := json.Marshal(ref)
		return quoted
	})
}

// normalize converts decoded values to JSON-compatible types. YAML may yield
// map[interface{}]interface{} for non-string keys.
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = normalize(v)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalize(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalize(v)
		}
		return a
	default:
		return val
	}
}
