package balance

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigSetDefaults(t *testing.T) {
	var c Config
	c.SetDefaults()
	if c.MaxIterations != 1000 || c.NoImprovementLimit != 100 || c.DoubleSwapInterval != 10 {
		t.Fatalf("bad defaults %#v", c)
	}
	if c.Seed != 0 {
		t.Fatalf("seed should stay zero, got %d", c.Seed)
	}

	c = Config{MaxIterations: 5, NoImprovementLimit: 2, DoubleSwapInterval: 3, Seed: 9}
	c.SetDefaults()
	if c.MaxIterations != 5 || c.NoImprovementLimit != 2 || c.DoubleSwapInterval != 3 || c.Seed != 9 {
		t.Fatalf("explicit values overwritten %#v", c)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balance.json")
	data := `{"max_iterations":250,"no_improvement_limit":40,"double_swap_interval":5,"seed":7}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxIterations != 250 || cfg.NoImprovementLimit != 40 || cfg.DoubleSwapInterval != 5 || cfg.Seed != 7 {
		t.Fatalf("bad cfg %#v", cfg)
	}
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balance.yaml")
	data := "max_iterations: 250\nno_improvement_limit: 40\ndouble_swap_interval: 5\nseed: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxIterations != 250 || cfg.Seed != 7 {
		t.Fatalf("bad cfg %#v", cfg)
	}
}

func TestConfigDecodeErrors(t *testing.T) {
	if _, err := DecodeConfig(bytes.NewBufferString("{}"), "toml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	path := filepath.Join(t.TempDir(), "balance.txt")
	if err := os.WriteFile(path, []byte("bad"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(bytes.NewBufferString(`{"max_iterations":30}`), "json")
	if err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if cfg.MaxIterations != 30 {
		t.Fatalf("bad cfg %#v", cfg)
	}
	cfg, err = DecodeConfig(bytes.NewBufferString("seed: 4\n"), "yaml")
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if cfg.Seed != 4 {
		t.Fatalf("bad cfg %#v", cfg)
	}
}
