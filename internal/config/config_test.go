package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfig_Valid(t *testing.T) {
	yaml := `
max_steps: 50000
ascii: true
color: never
`
	cfg, err := ParseConfig([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxSteps != 50000 {
		t.Errorf("max_steps = %d, want 50000", cfg.MaxSteps)
	}
	if !cfg.ASCII {
		t.Error("expected ascii to be true")
	}
	if cfg.Color != "never" {
		t.Errorf("color = %q, want never", cfg.Color)
	}
}

func TestParseConfig_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(""), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxSteps != DefaultMaxSteps {
		t.Errorf("max_steps = %d, want %d", cfg.MaxSteps, DefaultMaxSteps)
	}
	if cfg.ASCII {
		t.Error("expected ascii to be false")
	}
	if cfg.Color != "auto" {
		t.Errorf("color = %q, want auto", cfg.Color)
	}
}

func TestParseConfig_NegativeMaxSteps(t *testing.T) {
	if _, err := ParseConfig([]byte("max_steps: -1"), "test.yaml"); err == nil {
		t.Error("expected error for negative max_steps")
	}
}

func TestParseConfig_BadColor(t *testing.T) {
	if _, err := ParseConfig([]byte("color: sometimes"), "test.yaml"); err == nil {
		t.Error("expected error for unknown color mode")
	}
}

func TestParseConfig_MalformedYaml(t *testing.T) {
	if _, err := ParseConfig([]byte("max_steps: [not a number"), "test.yaml"); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "funlam.yaml")
	if err := os.WriteFile(path, []byte("max_steps: 7"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxSteps != 7 {
		t.Errorf("max_steps = %d, want 7", cfg.MaxSteps)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "funlam.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFindConfig_WalksUp(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "funlam.yaml"), []byte("ascii: true"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	found, err := FindConfig(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != filepath.Join(root, "funlam.yaml") {
		t.Errorf("found = %q, want the root funlam.yaml", found)
	}
}

func TestFindConfig_YmlAlternative(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "funlam.yml"), []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	found, err := FindConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != filepath.Join(dir, "funlam.yml") {
		t.Errorf("found = %q, want funlam.yml", found)
	}
}
