package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KANSEITABI_HOME", dir)
	t.Setenv("OPENAI_API_KEY", "")

	cfg := Load("")
	if cfg.DataDir != dir {
		t.Errorf("data dir: got %q, want %q", cfg.DataDir, dir)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("model default: got %q", cfg.Model)
	}
	if cfg.Currency != "¥" {
		t.Errorf("currency default: got %q", cfg.Currency)
	}
	if cfg.AssistantTimeout() != 30*time.Second {
		t.Errorf("timeout default: got %v", cfg.AssistantTimeout())
	}
}

func TestLoadOverrideDirWins(t *testing.T) {
	t.Setenv("KANSEITABI_HOME", "/somewhere/else")

	override := t.TempDir()
	cfg := Load(override)
	if cfg.DataDir != override {
		t.Errorf("explicit dir must win: got %q, want %q", cfg.DataDir, override)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KANSEITABI_HOME", dir)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	body := "model: gpt-4o\nassistant_timeout_seconds: 5\ncurrency: \"$\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Load("")
	if cfg.Model != "gpt-4o" {
		t.Errorf("model: got %q", cfg.Model)
	}
	if cfg.AssistantTimeout() != 5*time.Second {
		t.Errorf("timeout: got %v", cfg.AssistantTimeout())
	}
	if cfg.Currency != "$" {
		t.Errorf("currency: got %q", cfg.Currency)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("api key from env: got %q", cfg.APIKey)
	}
}

func TestLoadMalformedConfigFallsBack(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KANSEITABI_HOME", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("model: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Load("")
	if cfg.Model != "gpt-4o-mini" || cfg.Currency != "¥" {
		t.Errorf("malformed config must fall back to defaults, got %+v", cfg)
	}
}
