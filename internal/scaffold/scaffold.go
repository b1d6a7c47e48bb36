package scaffold

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/agentx-labs/stylescan/internal/manifest"
	"github.com/google/renameio/v2"
)

//go:embed scaffolds/*.tmpl
var scaffoldFS embed.FS

// FallbackContent is used when no known project directory is detected.
var FallbackContent = []string{"./**/*.html"}

// knownLayouts maps a marker path in the project root to the content pattern
// it implies. Order is the order patterns are written.
var knownLayouts = []struct {
	marker  string
	pattern string
}{
	{"templates", "./templates/**/*.html"},
	{"manage.py", "./**/templates/**/*.html"},
	{"src", "./src/**/*.{html,js,jsx,ts,tsx,vue,svelte}"},
	{"app", "./app/**/*.{html,js,jsx,ts,tsx}"},
	{"pages", "./pages/**/*.{html,js,jsx,ts,tsx}"},
	{"components", "./components/**/*.{html,js,jsx,ts,tsx,vue,svelte}"},
	{"index.html", "./index.html"},
	{"manage.py", "./**/*.py"},
}

// Data holds the template variables available to scaffold templates.
type Data struct {
	ProjectName string   // e.g., "clinic"
	Content     []string // content patterns to write
	Year        int      // Current year
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Path     string
	Warnings []string
}

// NewData creates Data for the project in dir, detecting content patterns
// from its layout.
func NewData(dir string) *Data {
	name := filepath.Base(dir)
	if abs, err := filepath.Abs(dir); err == nil {
		name = filepath.Base(abs)
	}
	return &Data{
		ProjectName: name,
		Content:     DetectContent(dir),
		Year:        time.Now().Year(),
	}
}

// DetectContent returns content patterns for the directories and files found
// in dir, or FallbackContent when nothing is recognized.
func DetectContent(dir string) []string {
	var patterns []string
	seen := make(map[string]bool)
	for _, layout := range knownLayouts {
		if _, err := os.Stat(filepath.Join(dir, layout.marker)); err != nil {
			continue
		}
		if !seen[layout.pattern] {
			seen[layout.pattern] = true
			patterns = append(patterns, layout.pattern)
		}
	}
	if len(patterns) == 0 {
		return append([]string(nil), FallbackContent...)
	}
	return patterns
}

// FileName returns the manifest file name written for format.
func FileName(format manifest.Format) string {
	if format == manifest.FormatJS {
		return "tailwind.config.js"
	}
	return "stylescan.config" + format.Extension()
}

// Generate writes a starter manifest into dir and validates it by loading it
// back. Existing files are never overwritten.
func Generate(dir string, data *Data, format manifest.Format) (*Result, error) {
	tmplName := "scaffolds/" + string(format) + ".tmpl"
	tmplBytes, err := scaffoldFS.ReadFile(tmplName)
	if err != nil {
		return nil, fmt.Errorf("template for format %q not found: %w", format, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	outPath := filepath.Join(dir, FileName(format))
	if _, err := os.Stat(outPath); err == nil {
		return nil, fmt.Errorf("%s already exists; remove it first", outPath)
	}

	tmpl, err := template.New(tmplName).Funcs(template.FuncMap{
		"json": toJSON,
	}).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplName, err)
	}

	if err := writeAtomic(outPath, tmpl, data); err != nil {
		return nil, err
	}

	result := &Result{Path: outPath}

	// Validate the generated manifest the same way every command loads it.
	_, warnings, err := manifest.Load(outPath)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", err))
		return result, nil
	}
	for _, w := range warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	return result, nil
}

// writeAtomic renders tmpl into outPath so a watcher never sees a partial file.
func writeAtomic(outPath string, tmpl *template.Template, data *Data) error {
	pending, err := renameio.NewPendingFile(outPath, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer pending.Cleanup()

	if err := tmpl.Execute(pending, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmpl.Name(), err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

func toJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
