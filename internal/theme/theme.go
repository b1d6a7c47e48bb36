package theme

import (
	_ "embed"
	"fmt"
	"sync"

	"dario.cat/mergo"
	"github.com/mohae/deepcopy"
	"go.yaml.in/yaml/v3"
)

// ExtendKey is the theme key whose sections are merged into the defaults
// instead of replacing them.
const ExtendKey = "extend"

//go:embed defaults.yaml
var rawDefaults []byte

var (
	once     sync.Once
	defaults map[string]interface{}
)

func load() {
	once.Do(func() {
		defaults = parseDefaults(rawDefaults)
	})
}

// parseDefaults panics on malformed input. The only input is the embedded
// defaults file, so a failure is a build defect.
func parseDefaults(raw []byte) map[string]interface{} {
	out := map[string]interface{}{}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("theme: decoding embedded defaults: %v", err))
	}
	return out
}

// Defaults returns a fresh copy of the built-in theme.
func Defaults() map[string]interface{} {
	load()
	return clone(defaults)
}

// Resolve layers t over base. Neither input is modified.
//
// Every key of t other than "extend" replaces the base section of the same
// name. Each section under t["extend"] is then deep-merged into the result,
// with extend values winning on conflicts.
func Resolve(base, t map[string]interface{}) (map[string]interface{}, error) {
	out := clone(base)

	for key, value := range t {
		if key == ExtendKey {
			continue
		}
		out[key] = deepcopy.Copy(value)
	}

	ext, ok := t[ExtendKey].(map[string]interface{})
	if !ok {
		if raw, present := t[ExtendKey]; present && raw != nil {
			return nil, fmt.Errorf("theme.%s must be a mapping, got %T", ExtendKey, raw)
		}
		return out, nil
	}

	for key, value := range clone(ext) {
		section, isMap := value.(map[string]interface{})
		existing, hasMap := out[key].(map[string]interface{})
		if !isMap || !hasMap {
			out[key] = value
			continue
		}
		if err := mergo.Merge(&existing, section, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging theme.%s.%s: %w", ExtendKey, key, err)
		}
		out[key] = existing
	}

	return out, nil
}

func clone(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	return deepcopy.Copy(m).(map[string]interface{})
}
