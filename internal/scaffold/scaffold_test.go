package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentx-labs/stylescan/internal/manifest"
	"github.com/google/go-cmp/cmp"
)

func mkdirs(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(filepath.Join(root, p), 0755); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDetectContent(t *testing.T) {
	t.Run("django project", func(t *testing.T) {
		dir := t.TempDir()
		mkdirs(t, dir, "templates", "patients")
		if err := os.WriteFile(filepath.Join(dir, "manage.py"), nil, 0644); err != nil {
			t.Fatal(err)
		}
		want := []string{"./templates/**/*.html", "./**/templates/**/*.html", "./**/*.py"}
		if diff := cmp.Diff(want, DetectContent(dir)); diff != "" {
			t.Errorf("DetectContent mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("frontend project", func(t *testing.T) {
		dir := t.TempDir()
		mkdirs(t, dir, "src", "components")
		got := DetectContent(dir)
		if len(got) != 2 || !strings.HasPrefix(got[0], "./src/") || !strings.HasPrefix(got[1], "./components/") {
			t.Errorf("DetectContent = %v", got)
		}
	})

	t.Run("unknown layout", func(t *testing.T) {
		if diff := cmp.Diff(FallbackContent, DetectContent(t.TempDir())); diff != "" {
			t.Errorf("DetectContent mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestNewData(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clinic")
	mkdirs(t, dir, "templates")

	d := NewData(dir)
	if d.ProjectName != "clinic" {
		t.Errorf("ProjectName = %q, want %q", d.ProjectName, "clinic")
	}
	if d.Year == 0 {
		t.Error("Year should not be zero")
	}
	if len(d.Content) != 1 || d.Content[0] != "./templates/**/*.html" {
		t.Errorf("Content = %v", d.Content)
	}
}

func TestGenerate_AllFormats(t *testing.T) {
	for _, format := range manifest.ValidFormats {
		t.Run(string(format), func(t *testing.T) {
			dir := t.TempDir()
			data := &Data{
				ProjectName: "clinic",
				Content:     []string{"./templates/**/*.html", "./**/*.py"},
				Year:        2026,
			}

			result, err := Generate(dir, data, format)
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}
			if len(result.Warnings) != 0 {
				t.Errorf("Warnings = %v, want none", result.Warnings)
			}
			if filepath.Base(result.Path) != FileName(format) {
				t.Errorf("Path = %q, want file %q", result.Path, FileName(format))
			}

			m, _, err := manifest.Load(result.Path)
			if err != nil {
				t.Fatalf("Load generated manifest: %v", err)
			}
			if diff := cmp.Diff(data.Content, m.Content()); diff != "" {
				t.Errorf("Content mismatch (-want +got):\n%s", diff)
			}
			want := map[string]interface{}{"extend": map[string]interface{}{}}
			if diff := cmp.Diff(want, m.Theme()); diff != "" {
				t.Errorf("Theme mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerate_EmptyContentWarns(t *testing.T) {
	for _, format := range manifest.ValidFormats {
		t.Run(string(format), func(t *testing.T) {
			result, err := Generate(t.TempDir(), &Data{ProjectName: "x"}, format)
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}
			if len(result.Warnings) != 1 {
				t.Errorf("Warnings = %v, want one empty-content warning", result.Warnings)
			}
		})
	}
}

func TestGenerate_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	data := &Data{ProjectName: "x", Content: FallbackContent}
	if _, err := Generate(dir, data, manifest.FormatYAML); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if _, err := Generate(dir, data, manifest.FormatYAML); err == nil {
		t.Fatal("second Generate should refuse to overwrite")
	}
}

func TestGenerate_UnknownFormat(t *testing.T) {
	if _, err := Generate(t.TempDir(), &Data{}, manifest.Format("toml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
