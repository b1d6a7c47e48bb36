//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clinicConfig is the manifest shipped with the clinic sample project.
const clinicConfig = `/** @type {import('tailwindcss').Config} */
module.exports = {
  content: [
    "./templates/**/*.html",
    "./**/templates/**/*.html",
    "./attendance/**/*.html",
    "./patients/**/*.html",
    "./core/**/*.html",
    "./**/*.py",
  ],
  theme: {
    extend: {},
  },
  plugins: [],
};
`

// setupProject creates a Django-style project with templates spread over
// several apps. Returns the project root.
func setupProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "manage.py"), "import os\n")
	writeFile(t, filepath.Join(root, "templates", "base.html"), `<body class="bg-gray-100">{% block content %}{% endblock %}</body>`)
	writeFile(t, filepath.Join(root, "templates", "partials", "nav.html"), `<nav class="flex p-4"></nav>`)
	writeFile(t, filepath.Join(root, "attendance", "views.py"), "CSS = 'text-sm'\n")
	writeFile(t, filepath.Join(root, "attendance", "templates", "attendance", "list.html"), `<table class="w-full"></table>`)
	writeFile(t, filepath.Join(root, "patients", "models.py"), "")
	writeFile(t, filepath.Join(root, "patients", "templates", "patients", "detail.html"), `<div class="rounded-lg"></div>`)
	writeFile(t, filepath.Join(root, "node_modules", "tailwindcss", "index.html"), "")

	return root
}

// setupHome isolates user settings for the duration of the test.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("STYLESCAN_HOME", home)
	return home
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
