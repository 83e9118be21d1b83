package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TopK != 10 {
		t.Errorf("TopK = %d, want 10", cfg.TopK)
	}
	if cfg.ContextMaxChars != 1200 {
		t.Errorf("ContextMaxChars = %d, want 1200", cfg.ContextMaxChars)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TopK != 10 || cfg.ContextMaxChars != 1200 {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	dir := t.TempDir()
	content := `{"top_k": 5, "model": "llama-3.1-8b-instant"}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TopK != 5 {
		t.Errorf("TopK = %d, want 5", cfg.TopK)
	}
	if cfg.Model != "llama-3.1-8b-instant" {
		t.Errorf("Model = %q", cfg.Model)
	}
	// Unset fields fall back to defaults.
	if cfg.ContextMaxChars != 1200 {
		t.Errorf("ContextMaxChars = %d, want 1200", cfg.ContextMaxChars)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{bad"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestMerge(t *testing.T) {
	base := &Config{TopK: 10, ContextMaxChars: 1200, Model: "base-model", DBMaxOpenConns: 1}
	overlay := &Config{TopK: 3, ProfilePath: "custom.json"}

	got := Merge(base, overlay)
	if got.TopK != 3 {
		t.Errorf("TopK = %d, want overlay value 3", got.TopK)
	}
	if got.ProfilePath != "custom.json" {
		t.Errorf("ProfilePath = %q", got.ProfilePath)
	}
	if got.ContextMaxChars != 1200 || got.Model != "base-model" || got.DBMaxOpenConns != 1 {
		t.Errorf("base values not preserved: %+v", got)
	}
}

func TestCredentials(t *testing.T) {
	var c Credentials
	if c.HasVector() || c.HasGenerator() {
		t.Error("empty credentials reported as configured")
	}

	c = Credentials{VectorURL: "https://example.upstash.io", VectorToken: "tok", GroqKey: "key"}
	if !c.HasVector() || !c.HasGenerator() {
		t.Error("configured credentials reported as missing")
	}

	c.VectorToken = ""
	if c.HasVector() {
		t.Error("vector reported configured without a token")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvVectorURL, "https://example.upstash.io")
	t.Setenv(EnvVectorToken, "tok")
	t.Setenv(EnvGroqKey, "key")
	t.Setenv(EnvGroqModel, "llama-3.1-8b-instant")

	creds := LoadEnv()
	if creds.VectorURL != "https://example.upstash.io" || creds.VectorToken != "tok" {
		t.Errorf("vector credentials = %+v", creds)
	}
	if creds.GroqKey != "key" || creds.GroqModel != "llama-3.1-8b-instant" {
		t.Errorf("groq credentials = %+v", creds)
	}
}
