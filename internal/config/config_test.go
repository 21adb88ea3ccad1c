package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != DefaultHost {
		t.Errorf("host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Export.Output != DefaultOutput {
		t.Errorf("output = %q, want %q", cfg.Export.Output, DefaultOutput)
	}
}

func TestLoadAppliesDefaultsToPartialConfig(t *testing.T) {
	dir := t.TempDir()
	content := `{"name": "demo", "server": {"port": 8080}}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Name != "demo" {
		t.Errorf("name = %q, want demo", cfg.Name)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("host = %q, want default %q", cfg.Server.Host, DefaultHost)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Name = "roundtrip"
	cfg.Server.Port = 9999
	cfg.Export.Bucket = "demo-bucket"

	if err := cfg.Save(dir); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Name != "roundtrip" || loaded.Server.Port != 9999 {
		t.Errorf("loaded = %+v, want saved values back", loaded)
	}
	if loaded.Export.Bucket != "demo-bucket" {
		t.Errorf("bucket = %q, want demo-bucket", loaded.Export.Bucket)
	}
}

func TestAddr(t *testing.T) {
	cfg := Default()
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080

	if got := cfg.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", got)
	}
}
