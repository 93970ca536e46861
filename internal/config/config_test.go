package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.DB.Path != "fastenerlib.sqlite3" || c.HTTP.Addr != ":8080" || c.Admin.User != "Admin" {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if !c.Metrics.Enabled || c.Dev() {
		t.Errorf("metrics = %v, dev = %v", c.Metrics.Enabled, c.Dev())
	}
	if c.MaxUploadBytes() != 10<<20 || c.Filter.QtyBelowDefault != 10 {
		t.Errorf("limits = %d, %d", c.MaxUploadBytes(), c.Filter.QtyBelowDefault)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`app:
  env: dev
http:
  addr: ":9090"
import:
  max_upload_mb: 2
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FASTLIB_HTTP_ADDR", "127.0.0.1:7000")
	t.Setenv("FASTLIB_METRICS_ENABLED", "false")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.Dev() {
		t.Error("expected dev env from file")
	}
	if c.HTTP.Addr != "127.0.0.1:7000" {
		t.Errorf("addr = %q, env should win", c.HTTP.Addr)
	}
	if c.Metrics.Enabled {
		t.Error("metrics should be disabled by env")
	}
	if c.Import.MaxUploadMB != 2 {
		t.Errorf("max upload = %d, want 2", c.Import.MaxUploadMB)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	c, _ := Load("")
	c.Import.MaxUploadMB = 0
	c.DB.Path = ""
	if err := c.Validate(); err == nil {
		t.Error("expected validation error")
	}
}
