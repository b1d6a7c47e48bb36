package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/agentx-labs/stylescan/internal/manifest"
	"github.com/rs/zerolog"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		name   string
		format string
		isJSON bool
	}{
		{"json", FormatJSON, true},
		{"pretty", FormatPretty, false},
		{"unknown falls back to pretty", "xml", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(Options{Level: "info", Format: tt.format, Output: &buf, NoColor: true})
			log.Info().Msg("loaded manifest")

			out := buf.String()
			if !strings.Contains(out, "loaded manifest") {
				t.Fatalf("output %q missing message", out)
			}
			if got := json.Valid(bytes.TrimSpace(buf.Bytes())); got != tt.isJSON {
				t.Errorf("json.Valid(output) = %v, want %v; output %q", got, tt.isJSON, out)
			}
		})
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Format: FormatJSON, Output: &buf})
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info event written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn event missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWarnings(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "info", Format: FormatJSON, Output: &buf})

	Warnings(log, "/srv/clinic/tailwind.config.js", []manifest.Warning{
		{Code: manifest.WarnEmptyContent, Key: manifest.KeyContent, Message: "content is empty"},
		{Code: manifest.WarnUnknownKey, Key: "darkMode", Message: `unknown key "darkMode"`},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2: %q", len(lines), buf.String())
	}

	var ev map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatalf("decoding %q: %v", lines[1], err)
	}
	for field, want := range map[string]string{
		"level":   "warn",
		"code":    manifest.WarnUnknownKey,
		"key":     "darkMode",
		"file":    "/srv/clinic/tailwind.config.js",
		"message": `unknown key "darkMode"`,
	} {
		if ev[field] != want {
			t.Errorf("%s = %v, want %q", field, ev[field], want)
		}
	}
}
