// Where: internal/config/file_test.go
// What: Tests for defaults file loading and validation.
// Why: A typo in the file must fail loudly, never silently widen a deletion.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/epsagon/clear-lambda-storage/internal/meta"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	_, found, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatalf("expected found=false for missing file")
	}
}

func TestLoadFileParsesKnownKeys(t *testing.T) {
	path := writeConfigFile(t, strings.Join([]string{
		"version: 1",
		"profile: ops",
		"num_to_keep: 5",
		"regions:",
		"  - us-east-1",
		"  - eu-west-1",
		"function_names:",
		"  - orders",
		"endpoint_url: http://localhost:4566",
	}, "\n"))

	file, found, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatalf("expected found=true")
	}
	if file.Profile != "ops" {
		t.Fatalf("unexpected profile: %s", file.Profile)
	}
	if file.NumToKeep == nil || *file.NumToKeep != 5 {
		t.Fatalf("unexpected num_to_keep: %v", file.NumToKeep)
	}
	if len(file.Regions) != 2 || file.Regions[0] != "us-east-1" {
		t.Fatalf("unexpected regions: %v", file.Regions)
	}
	if file.EndpointURL != "http://localhost:4566" {
		t.Fatalf("unexpected endpoint: %s", file.EndpointURL)
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfigFile(t, "keep: 3\n")

	_, found, err := LoadFile(path)
	if err == nil {
		t.Fatalf("expected schema error for unknown key")
	}
	if !found {
		t.Fatalf("expected found=true for existing file")
	}
	if !strings.Contains(err.Error(), "invalid config file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFileRejectsWrongTypes(t *testing.T) {
	path := writeConfigFile(t, "num_to_keep: three\n")

	if _, _, err := LoadFile(path); err == nil {
		t.Fatalf("expected schema error for non-integer num_to_keep")
	}
}

func TestLoadFileRejectsNegativeKeep(t *testing.T) {
	path := writeConfigFile(t, "num_to_keep: -2\n")

	if _, _, err := LoadFile(path); err == nil {
		t.Fatalf("expected schema error for negative num_to_keep")
	}
}

func TestApplyOverlaysOnlySetValues(t *testing.T) {
	keep := 7
	file := FileSettings{Profile: "ops", NumToKeep: &keep}

	settings := file.Apply(Default())

	if settings.Profile != "ops" {
		t.Fatalf("profile not applied: %+v", settings)
	}
	if settings.NumToKeep != 7 {
		t.Fatalf("num_to_keep not applied: %+v", settings)
	}
	if len(settings.Regions) != 0 {
		t.Fatalf("regions should stay unset: %+v", settings)
	}
}

func TestApplyLeavesDefaultsWhenFileEmpty(t *testing.T) {
	settings := FileSettings{}.Apply(Default())

	if settings.NumToKeep != DefaultNumToKeep {
		t.Fatalf("empty file changed defaults: %+v", settings)
	}
}

func TestPathUsesEnvOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(meta.EnvKey(meta.EnvSuffixConfigPath), override)

	path, err := Path()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != override {
		t.Fatalf("unexpected path: %s", path)
	}
}

func TestPathMakesRelativeOverrideAbsolute(t *testing.T) {
	t.Setenv(meta.EnvKey(meta.EnvSuffixConfigPath), "rel/config.yaml")

	path, err := Path()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Fatalf("expected absolute path, got %s", path)
	}
}

func TestPathDefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(meta.EnvKey(meta.EnvSuffixConfigPath), "")

	path, err := Path()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(home, meta.HomeDir, meta.ConfigFileName)
	if path != want {
		t.Fatalf("unexpected path: %s (want %s)", path, want)
	}
}
