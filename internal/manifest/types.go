package manifest

import (
	"reflect"

	"github.com/mohae/deepcopy"
)

// Recognized top-level keys.
const (
	KeyContent = "content"
	KeyTheme   = "theme"
	KeyPlugins = "plugins"
)

// RecognizedKeys lists the top-level keys a manifest understands, in
// canonical order.
var RecognizedKeys = []string{KeyContent, KeyTheme, KeyPlugins}

// Manifest is a loaded content manifest. It is immutable: accessors return
// copies, so a *Manifest can be shared between goroutines without locking.
type Manifest struct {
	content []string
	theme   map[string]interface{}
	plugins []Plugin
	extra   map[string]interface{}
	source  string
}

// Content returns the content glob patterns in declaration order.
func (m *Manifest) Content() []string {
	out := make([]string, len(m.content))
	copy(out, m.content)
	return out
}

// Theme returns the theme extension mapping. It is empty, never nil, when the
// manifest declares no theme.
func (m *Manifest) Theme() map[string]interface{} {
	return copyMap(m.theme)
}

// Plugins returns the plugin references in declaration order.
func (m *Manifest) Plugins() []Plugin {
	out := make([]Plugin, len(m.plugins))
	for i, p := range m.plugins {
		out[i] = p.clone()
	}
	return out
}

// Extra returns unrecognized top-level keys exactly as they were decoded.
// The map is empty when every key was recognized.
func (m *Manifest) Extra() map[string]interface{} {
	return copyMap(m.extra)
}

// Source returns the absolute path the manifest was loaded from, or "" for
// manifests decoded from bytes.
func (m *Manifest) Source() string { return m.source }

// Equal reports whether two manifests declare the same content, theme,
// plugins and extra keys. Source is not compared.
func (m *Manifest) Equal(other *Manifest) bool {
	if m == nil || other == nil {
		return m == other
	}
	return reflect.DeepEqual(m.content, other.content) &&
		reflect.DeepEqual(m.theme, other.theme) &&
		reflect.DeepEqual(m.plugins, other.plugins) &&
		reflect.DeepEqual(m.extra, other.extra)
}

// Plugin is a reference to a plugin module, forwarded untouched to whatever
// loads plugins downstream.
type Plugin struct {
	Ref        string                 `yaml:"name" json:"name"`
	Constraint string                 `yaml:"version,omitempty" json:"version,omitempty"`
	Options    map[string]interface{} `yaml:"options,omitempty" json:"options,omitempty"`
}

func (p Plugin) clone() Plugin {
	if p.Options != nil {
		p.Options = copyMap(p.Options)
	}
	return p
}

// String renders the plugin in its short "ref@constraint" form.
func (p Plugin) String() string {
	if p.Constraint == "" {
		return p.Ref
	}
	return p.Ref + "@" + p.Constraint
}

// Warning is a non-fatal diagnostic produced while loading.
type Warning struct {
	Code    string // one of the Warn* constants
	Key     string // offending key or pattern, may be empty
	Message string
}

func (w Warning) String() string { return w.Message }

// Warning codes.
const (
	WarnEmptyContent     = "empty-content"
	WarnUnknownKey       = "unknown-key"
	WarnDuplicatePattern = "duplicate-pattern"
	WarnPluginConstraint = "plugin-constraint"
)

func copyMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	return deepcopy.Copy(m).(map[string]interface{})
}
