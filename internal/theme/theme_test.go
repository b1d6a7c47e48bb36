package theme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaults_Embedded(t *testing.T) {
	d := Defaults()
	for _, section := range []string{"screens", "colors", "spacing", "fontFamily", "borderRadius"} {
		if _, ok := d[section].(map[string]interface{}); !ok {
			t.Errorf("default section %q missing or not a mapping: %T", section, d[section])
		}
	}
}

func TestParseDefaults_PanicsOnMalformedYAML(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("parseDefaults did not panic on malformed YAML")
		}
	}()
	parseDefaults([]byte("colors: {unterminated\n"))
}

func TestDefaults_ReturnsCopy(t *testing.T) {
	d := Defaults()
	d["colors"] = nil
	if Defaults()["colors"] == nil {
		t.Error("Defaults() exposed shared state")
	}
}

func TestResolve_EmptyThemeKeepsDefaults(t *testing.T) {
	base := Defaults()
	got, err := Resolve(base, map[string]interface{}{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if diff := cmp.Diff(base, got); diff != "" {
		t.Errorf("Resolve changed defaults (-want +got):\n%s", diff)
	}

	got, err = Resolve(base, map[string]interface{}{"extend": map[string]interface{}{}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if diff := cmp.Diff(base, got); diff != "" {
		t.Errorf("empty extend changed defaults (-want +got):\n%s", diff)
	}
}

func TestResolve_OverrideAndExtend(t *testing.T) {
	base := map[string]interface{}{
		"colors": map[string]interface{}{
			"red":  "#f00",
			"blue": "#00f",
		},
		"spacing": map[string]interface{}{
			"1": "4px",
			"2": "8px",
		},
		"screens": map[string]interface{}{
			"sm": "640px",
		},
	}
	theme := map[string]interface{}{
		"spacing": map[string]interface{}{
			"sm": "2px",
		},
		"extend": map[string]interface{}{
			"colors": map[string]interface{}{
				"brand": "#0f766e",
				"red":   "#e11d48",
			},
			"animation": map[string]interface{}{
				"wiggle": "wiggle 1s ease-in-out infinite",
			},
		},
	}

	got, err := Resolve(base, theme)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := map[string]interface{}{
		"colors": map[string]interface{}{
			"red":   "#e11d48",
			"blue":  "#00f",
			"brand": "#0f766e",
		},
		"spacing": map[string]interface{}{
			"sm": "2px",
		},
		"screens": map[string]interface{}{
			"sm": "640px",
		},
		"animation": map[string]interface{}{
			"wiggle": "wiggle 1s ease-in-out infinite",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}

	// Inputs are untouched.
	if base["colors"].(map[string]interface{})["red"] != "#f00" {
		t.Error("Resolve mutated base")
	}
	if len(base["spacing"].(map[string]interface{})) != 2 {
		t.Error("Resolve mutated base spacing")
	}
}

func TestResolve_ExtendAfterOverride(t *testing.T) {
	base := map[string]interface{}{
		"colors": map[string]interface{}{"red": "#f00"},
	}
	theme := map[string]interface{}{
		"colors": map[string]interface{}{"black": "#000"},
		"extend": map[string]interface{}{
			"colors": map[string]interface{}{"white": "#fff"},
		},
	}

	got, err := Resolve(base, theme)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := map[string]interface{}{
		"colors": map[string]interface{}{"black": "#000", "white": "#fff"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
	if _, ok := theme["colors"].(map[string]interface{})["white"]; ok {
		t.Error("Resolve mutated the override section")
	}
}

func TestResolve_NestedExtend(t *testing.T) {
	base := map[string]interface{}{
		"colors": map[string]interface{}{
			"gray": map[string]interface{}{"100": "#eee", "900": "#111"},
		},
	}
	theme := map[string]interface{}{
		"extend": map[string]interface{}{
			"colors": map[string]interface{}{
				"gray": map[string]interface{}{"500": "#777"},
			},
		},
	}

	got, err := Resolve(base, theme)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := map[string]interface{}{
		"colors": map[string]interface{}{
			"gray": map[string]interface{}{"100": "#eee", "500": "#777", "900": "#111"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
	if len(base["colors"].(map[string]interface{})["gray"].(map[string]interface{})) != 2 {
		t.Error("Resolve mutated nested base section")
	}
}

func TestResolve_ExtendMustBeMapping(t *testing.T) {
	_, err := Resolve(Defaults(), map[string]interface{}{"extend": "nope"})
	if err == nil {
		t.Error("expected error for non-mapping extend")
	}
}

func TestResolve_NilInputs(t *testing.T) {
	got, err := Resolve(nil, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Resolve(nil, nil) = %#v, want empty map", got)
	}
}
