package calculator

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("testdata/config.ini")
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Addr:            ":9100",
		Path:            "/calc",
		ReadBufferSize:  2048,
		WriteBufferSize: 1024,
		LogLevel:        "debug",
		LogFormat:       "json",
		PresetFile:      "testdata/presets.toml",
	}
	if cfg != want {
		t.Errorf("got %+v\nwant %+v", cfg, want)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.ini"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if cfg.Addr != ":9000" || cfg.Path != "/ws" || cfg.PresetFile != "conf/presets.toml" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte("[server\nAddr = :1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected parse error")
	}
}
