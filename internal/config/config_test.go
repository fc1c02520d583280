package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "bot:\n  token: \"123:abc\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Bot.Token != "123:abc" {
		t.Errorf("token = %q, want %q", cfg.Bot.Token, "123:abc")
	}
	if cfg.Bot.GroupID != -1 {
		t.Errorf("group_id = %d, want -1", cfg.Bot.GroupID)
	}
	if cfg.Ping.StaleAfter != 300*time.Second {
		t.Errorf("stale_after = %v, want 300s", cfg.Ping.StaleAfter)
	}
	if cfg.Ping.MemberPageSize != 200 {
		t.Errorf("member_page_size = %d, want 200", cfg.Ping.MemberPageSize)
	}
	if cfg.Ping.ChunkSize != 30 || cfg.Ping.ChunkDelay != time.Second {
		t.Errorf("chunk = %d/%v, want 30/1s", cfg.Ping.ChunkSize, cfg.Ping.ChunkDelay)
	}
	if cfg.Ping.AdminChunkSize != 10 || cfg.Ping.AdminDelay != 3*time.Second {
		t.Errorf("admin chunk = %d/%v, want 10/3s", cfg.Ping.AdminChunkSize, cfg.Ping.AdminDelay)
	}
	if !cfg.Database.Enabled || cfg.Database.Driver != "sqlite" {
		t.Errorf("database = %v/%q, want enabled sqlite", cfg.Database.Enabled, cfg.Database.Driver)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
bot:
  token: "123:abc"
  group_id: -1009876543210
ping:
  chunk_size: 5
  chunk_delay: "2s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Bot.GroupID != -1009876543210 {
		t.Errorf("group_id = %d, want -1009876543210", cfg.Bot.GroupID)
	}
	if cfg.Ping.ChunkSize != 5 || cfg.Ping.ChunkDelay != 2*time.Second {
		t.Errorf("chunk = %d/%v, want 5/2s", cfg.Ping.ChunkSize, cfg.Ping.ChunkDelay)
	}
	// Untouched keys keep their defaults.
	if cfg.Ping.AdminChunkSize != 10 {
		t.Errorf("admin_chunk_size = %d, want 10", cfg.Ping.AdminChunkSize)
	}
}

func TestLoadTokenFromEnv(t *testing.T) {
	t.Setenv("PINGBOT_BOT_TOKEN", "env:token")
	path := writeConfig(t, "bot:\n  group_id: -1\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Bot.Token != "env:token" {
		t.Errorf("token = %q, want value from environment", cfg.Bot.Token)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
