// Where: internal/config/file.go
// What: Optional defaults file load helpers.
// Why: Read ~/.clear-lambda-storage/config.yaml consistently without ever writing it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/epsagon/clear-lambda-storage/internal/meta"
)

// FileSettings mirrors the defaults file. Only options that make sense to
// persist appear here; credentials stay out of it.
type FileSettings struct {
	Version       int      `yaml:"version,omitempty"`
	Profile       string   `yaml:"profile,omitempty"`
	Regions       []string `yaml:"regions,omitempty"`
	NumToKeep     *int     `yaml:"num_to_keep,omitempty"`
	FunctionNames []string `yaml:"function_names,omitempty"`
	EndpointURL   string   `yaml:"endpoint_url,omitempty"`
}

// Path returns the defaults file location. Respects the brand-specific
// CONFIG_PATH environment variable.
func Path() (string, error) {
	if override := strings.TrimSpace(os.Getenv(meta.EnvKey(meta.EnvSuffixConfigPath))); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, meta.ConfigFileName), nil
}

// LoadFile reads and validates the defaults file. A missing file is not an
// error; found reports whether one existed.
func LoadFile(path string) (FileSettings, bool, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileSettings{}, false, nil
		}
		return FileSettings{}, false, err
	}

	if err := validateFile(payload); err != nil {
		return FileSettings{}, true, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	var file FileSettings
	if err := yaml.Unmarshal(payload, &file); err != nil {
		return FileSettings{}, true, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return file, true, nil
}

// Apply overlays the file's values onto s. File values beat built-in
// defaults; flag values are applied after this and beat the file.
func (f FileSettings) Apply(s Settings) Settings {
	if f.Profile != "" {
		s.Profile = f.Profile
	}
	if len(f.Regions) > 0 {
		s.Regions = append([]string(nil), f.Regions...)
	}
	if f.NumToKeep != nil {
		s.NumToKeep = *f.NumToKeep
	}
	if len(f.FunctionNames) > 0 {
		s.FunctionNames = append([]string(nil), f.FunctionNames...)
	}
	if f.EndpointURL != "" {
		s.EndpointURL = f.EndpointURL
	}
	return s
}
