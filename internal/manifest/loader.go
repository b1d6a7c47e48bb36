package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/agentx-labs/stylescan/internal/glob"
)

// Load reads the manifest at path, validates it, and returns it along with
// any non-fatal warnings. The notation is chosen from the file extension
// once the file has been read, so a missing path is always ErrConfigNotFound.
func Load(path string) (*Manifest, []Warning, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	m, warnings, err := LoadBytes(data, format)
	if err != nil {
		if errors.Is(err, ErrConfigParse) {
			return nil, nil, fmt.Errorf("parsing manifest %s: %w", path, err)
		}
		return nil, nil, withPath(err, path)
	}

	if abs, absErr := filepath.Abs(path); absErr == nil {
		m.source = abs
	} else {
		m.source = path
	}
	return m, warnings, nil
}

// LoadBytes decodes and validates a manifest held in memory.
func LoadBytes(data []byte, format Format) (*Manifest, []Warning, error) {
	doc, err := decode(data, format)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	result, err := validateDocument(doc)
	if err != nil {
		return nil, nil, err
	}
	if !result.Valid {
		return nil, nil, &ShapeError{Issues: result.Issues}
	}

	// The schema guarantees a top-level object.
	obj, ok := doc.(map[string]interface{})
	if !ok {
		return nil, nil, &ShapeError{Issues: []ValidationIssue{{Message: "manifest must be an object", Keyword: "type"}}}
	}
	return build(obj)
}

// build converts a shape-checked document into a typed Manifest.
func build(obj map[string]interface{}) (*Manifest, []Warning, error) {
	m := &Manifest{
		theme: map[string]interface{}{},
		extra: map[string]interface{}{},
	}
	var warnings []Warning

	content, err := stringList(obj[KeyContent], "/"+KeyContent)
	if err != nil {
		return nil, nil, err
	}
	m.content = content

	if len(content) == 0 {
		warnings = append(warnings, Warning{
			Code:    WarnEmptyContent,
			Key:     KeyContent,
			Message: "content is empty; no files will be scanned",
		})
	}

	seen := make(map[string]bool, len(content))
	for i, pattern := range content {
		if err := glob.Validate(pattern); err != nil {
			return nil, nil, newGlobError(i, pattern, err)
		}
		if seen[pattern] {
			warnings = append(warnings, Warning{
				Code:    WarnDuplicatePattern,
				Key:     pattern,
				Message: fmt.Sprintf("content pattern %q is listed more than once", pattern),
			})
		}
		seen[pattern] = true
	}

	if theme, ok := obj[KeyTheme].(map[string]interface{}); ok {
		m.theme = theme
	}

	plugins, pluginWarnings, err := pluginList(obj[KeyPlugins])
	if err != nil {
		return nil, nil, err
	}
	m.plugins = plugins
	warnings = append(warnings, pluginWarnings...)

	var unknown []string
	for key := range obj {
		if !isRecognized(key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		m.extra[key] = obj[key]
		warnings = append(warnings, Warning{
			Code:    WarnUnknownKey,
			Key:     key,
			Message: fmt.Sprintf("unrecognized top-level key %q is ignored", key),
		})
	}

	return m, warnings, nil
}

func stringList(v interface{}, path string) ([]string, error) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, &ShapeError{Issues: []ValidationIssue{{Path: path, Message: "must be a list of strings", Keyword: "type"}}}
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &ShapeError{Issues: []ValidationIssue{{
				Path:    fmt.Sprintf("%s/%d", path, i),
				Message: fmt.Sprintf("got %T, want string", item),
				Keyword: "type",
			}}}
		}
		out = append(out, s)
	}
	return out, nil
}

func pluginList(v interface{}) ([]Plugin, []Warning, error) {
	plugins := []Plugin{}
	if v == nil {
		return plugins, nil, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, nil, &ShapeError{Issues: []ValidationIssue{{Path: "/" + KeyPlugins, Message: "must be a list", Keyword: "type"}}}
	}

	var warnings []Warning
	for i, item := range items {
		p, err := parsePlugin(item)
		if err != nil {
			return nil, nil, &ShapeError{Issues: []ValidationIssue{{
				Path:    fmt.Sprintf("/%s/%d", KeyPlugins, i),
				Message: err.Error(),
				Keyword: "type",
			}}}
		}
		if p.Constraint != "" {
			if _, err := semver.NewConstraint(p.Constraint); err != nil {
				warnings = append(warnings, Warning{
					Code:    WarnPluginConstraint,
					Key:     p.Ref,
					Message: fmt.Sprintf("plugin %q has an unparseable version constraint %q: %v", p.Ref, p.Constraint, err),
				})
			}
		}
		plugins = append(plugins, p)
	}
	return plugins, warnings, nil
}

// parsePlugin accepts "ref", "ref@constraint", or {name, version, options}.
// Scoped references keep their leading '@'.
func parsePlugin(v interface{}) (Plugin, error) {
	switch val := v.(type) {
	case string:
		if idx := strings.LastIndex(val, "@"); idx > 0 {
			return Plugin{Ref: val[:idx], Constraint: val[idx+1:]}, nil
		}
		return Plugin{Ref: val}, nil
	case map[string]interface{}:
		name, _ := val["name"].(string)
		if name == "" {
			return Plugin{}, fmt.Errorf("plugin must have a name")
		}
		p := Plugin{Ref: name}
		if version, ok := val["version"].(string); ok {
			p.Constraint = version
		}
		if opts, ok := val["options"].(map[string]interface{}); ok {
			p.Options = opts
		}
		return p, nil
	default:
		return Plugin{}, fmt.Errorf("got %T, want string or mapping", v)
	}
}

func isRecognized(key string) bool {
	for _, k := range RecognizedKeys {
		if k == key {
			return true
		}
	}
	return false
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading file %s: %w", ErrConfigNotFound, path, err)
	}
	return data, nil
}
