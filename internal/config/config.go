// Package config handles pastex configuration file loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the pastex configuration file.
const ConfigFileName = "pastex.yaml"

// Config holds the pastex configuration. Every field is optional; the
// zero value is a valid configuration.
type Config struct {
	// Theme is the name of the diagnostic color theme to use
	// (default, plain).
	Theme string `yaml:"theme"`
	// LogLevel overrides the default log level when PASTEX_LOG is not
	// set (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// OutputDir is where the build command writes rendered documents
	// when no explicit output path is given. Relative to the project
	// root.
	OutputDir string `yaml:"output_dir"`
	// ProjectRoot is the directory pastex.yaml was found in, or the
	// starting directory when none was. Never read from the file.
	ProjectRoot string `yaml:"-"`
}

// Load searches for pastex.yaml starting from the current working
// directory, walking up the directory tree. A missing file is not an
// error; defaults apply.
func Load(fs afero.Fs) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return LoadFromPath(fs, cwd)
}

// LoadFromPath searches for pastex.yaml starting from startPath,
// walking up the directory tree.
func LoadFromPath(fs afero.Fs, startPath string) (*Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to resolve absolute path for %q: %w",
			startPath,
			err,
		)
	}

	currentPath := absPath
	for {
		configPath := filepath.Join(currentPath, ConfigFileName)

		if exists, _ := afero.Exists(fs, configPath); exists {
			cfg, err := parseConfigFile(fs, configPath)
			if err != nil {
				return nil, err
			}
			cfg.ProjectRoot = currentPath

			return cfg, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	return &Config{Theme: "default", ProjectRoot: absPath}, nil
}

func parseConfigFile(fs afero.Fs, configPath string) (*Config, error) {
	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(
			"failed to parse %s: %w",
			configPath,
			err,
		)
	}

	if cfg.Theme == "" {
		cfg.Theme = "default"
	}

	return &cfg, nil
}
