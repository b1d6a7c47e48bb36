package manifest

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestValidateFile_ValidManifests(t *testing.T) {
	validFiles := []string{
		"valid.yaml",
		"valid.json",
		"valid.js",
		"tailwind.config.js",
		"empty-content.yaml",
		"unknown-keys.yaml",
		// Glob syntax is not a shape concern.
		"invalid-unterminated.yaml",
	}

	for _, file := range validFiles {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	invalidFiles := []struct {
		file    string
		path    string
		keyword string
	}{
		{"invalid-missing-content.yaml", "", "required"},
		{"invalid-non-string.json", "/content/1", "type"},
		{"invalid-content-string.yaml", "/content", "type"},
		{"invalid-plugin.yaml", "/plugins/0", "type"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s, but got valid", tt.file)
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.path && issue.Keyword == tt.keyword {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue with path=%q keyword=%q in %v", tt.path, tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidate_TopLevelMustBeObject(t *testing.T) {
	for _, src := range []string{"- a\n- b\n", "just a string\n", ""} {
		result, err := Validate([]byte(src), FormatYAML)
		if err != nil {
			t.Fatalf("Validate(%q) error: %v", src, err)
		}
		if result.Valid {
			t.Errorf("Validate(%q) = valid, want invalid", src)
		}
	}
}

func TestValidate_ParseError(t *testing.T) {
	_, err := Validate([]byte("{not json"), FormatJSON)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(testPath("nonexistent.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestValidate_IssuesAreDistinctAndOrdered(t *testing.T) {
	src := "plugins: [5, 6]\ncontent: [1, \"./a.html\", 2]\n"
	result, err := Validate([]byte(src), FormatYAML)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid")
	}

	ordered := slices.IsSortedFunc(result.Issues, func(a, b ValidationIssue) int {
		return strings.Compare(a.Path, b.Path)
	})
	if !ordered {
		t.Errorf("issues not ordered by path: %v", result.Issues)
	}

	seen := make(map[ValidationIssue]bool)
	var paths []string
	for _, issue := range result.Issues {
		if seen[issue] {
			t.Errorf("duplicate issue %v", issue)
		}
		seen[issue] = true
		if !slices.Contains(paths, issue.Path) {
			paths = append(paths, issue.Path)
		}
	}
	want := []string{"/content/0", "/content/2", "/plugins/0", "/plugins/1"}
	if !slices.Equal(paths, want) {
		t.Errorf("issue paths = %v, want %v", paths, want)
	}
}
