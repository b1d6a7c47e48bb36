// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		defaults = parseBrand(rawBranding)
	})
}

// parseBrand overlays raw on the hard defaults and panics if raw is not
// valid YAML.
func parseBrand(raw []byte) brand {
	// Hard defaults in case the embedded file is empty.
	b := brand{
		CLIName:     "stylescan",
		DisplayName: "Stylescan",
		Description: "Load, validate, and scan utility-CSS content manifests",
		HomeDir:     ".stylescan",
		EnvPrefix:   "STYLESCAN",
		GoModule:    "github.com/agentx-labs/stylescan",
		GitHubRepo:  "agentx-labs/stylescan",
	}
	if err := yaml.Unmarshal(raw, &b); err != nil {
		panic(fmt.Sprintf("branding: decoding embedded branding.yaml: %v", err))
	}
	return b
}

// CLIName returns the root command name (e.g., "stylescan").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".stylescan").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "STYLESCAN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "STYLESCAN_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
