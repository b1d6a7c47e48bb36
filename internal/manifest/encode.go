package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"go.yaml.in/yaml/v3"
)

type yamlDocument struct {
	Content []string               `yaml:"content"`
	Theme   map[string]interface{} `yaml:"theme"`
	Plugins []interface{}          `yaml:"plugins"`
	Extra   map[string]interface{} `yaml:",inline"`
}

// Encode writes m in the given notation. Unrecognized keys are written after
// the recognized ones so a loaded manifest round-trips.
func Encode(w io.Writer, m *Manifest, format Format) error {
	switch format {
	case FormatYAML:
		doc := yamlDocument{
			Content: m.Content(),
			Theme:   m.Theme(),
			Plugins: pluginValues(m.plugins),
			Extra:   m.Extra(),
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding manifest as YAML: %w", err)
		}
		return enc.Close()

	case FormatJSON, FormatJS:
		data, err := marshalJSON(m)
		if err != nil {
			return err
		}
		if format == FormatJS {
			_, err = fmt.Fprintf(w, "/** @type {import('tailwindcss').Config} */\nmodule.exports = %s;\n", data)
		} else {
			_, err = fmt.Fprintf(w, "%s\n", data)
		}
		return err

	default:
		return fmt.Errorf("unsupported manifest format %q", format)
	}
}

// marshalJSON renders the recognized keys in canonical order followed by
// extra keys sorted by name.
func marshalJSON(m *Manifest) ([]byte, error) {
	fields := []struct {
		key   string
		value interface{}
	}{
		{KeyContent, m.Content()},
		{KeyTheme, m.Theme()},
		{KeyPlugins, pluginValues(m.plugins)},
	}

	extra := m.Extra()
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, struct {
			key   string
			value interface{}
		}{k, extra[k]})
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(f.key)
		val, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("encoding %s as JSON: %w", f.key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("indenting manifest JSON: %w", err)
	}
	return out.Bytes(), nil
}

// pluginValues renders plugins in their shortest source form.
func pluginValues(plugins []Plugin) []interface{} {
	out := make([]interface{}, 0, len(plugins))
	for _, p := range plugins {
		if len(p.Options) == 0 {
			out = append(out, p.String())
			continue
		}
		out = append(out, p.clone())
	}
	return out
}
