package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akwaba-bebe/akwaba-cli/testutil"
)

func TestLoadConfig_Defaults(t *testing.T) {
	dir := testutil.CreateTempDir(t)

	cfg := LoadConfig(dir)
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want %q", cfg.APIURL, DefaultAPIURL)
	}
	if want := filepath.Join(dir, "state.db"); cfg.StatePath != want {
		t.Errorf("StatePath = %q, want %q", cfg.StatePath, want)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	content := "api_url: https://api.akwaba-bebe.ci\nstate_path: /tmp/akwaba.db\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := LoadConfig(dir)
	if cfg.APIURL != "https://api.akwaba-bebe.ci" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.StatePath != "/tmp/akwaba.db" {
		t.Errorf("StatePath = %q", cfg.StatePath)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	content := "api_url: https://api.akwaba-bebe.ci\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("AKWABA_API_URL", "http://localhost:9999")

	cfg := LoadConfig(dir)
	if cfg.APIURL != "http://localhost:9999" {
		t.Errorf("APIURL = %q, want env override", cfg.APIURL)
	}
}

func TestLoadConfig_CorruptFileFallsBack(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{{{ not yaml"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := LoadConfig(dir)
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q after corrupt config, want default", cfg.APIURL)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := filepath.Join(testutil.CreateTempDir(t), "nested")

	in := Config{APIURL: "https://api.akwaba-bebe.ci", StatePath: "/data/state.db"}
	if err := SaveConfig(dir, in); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	out := LoadConfig(dir)
	if out.APIURL != in.APIURL || out.StatePath != in.StatePath {
		t.Errorf("LoadConfig() = %+v, want %+v", out, in)
	}
}
