package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const storeFileName = "session.json"

// Config carries the resolved filesystem settings for one invocation.
type Config struct {
	StateDir  string
	StorePath string
	RepoPath  string
}

type fileConfig struct {
	StateDir string `yaml:"state_dir"`
	RepoPath string `yaml:"repo_path"`
}

// Default places the session record under the system temp directory.
func Default() Config {
	stateDir := filepath.Join(os.TempDir(), "jobclock")
	return Config{
		StateDir:  stateDir,
		StorePath: filepath.Join(stateDir, storeFileName),
	}
}

// Load resolves the defaults and merges the optional user config file at
// <user-config-dir>/jobclock/config.yaml over them.
func Load() (Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(filepath.Join(configDir, "jobclock", "config.yaml"))
}

// LoadFile merges the YAML file at path over the defaults. A missing file
// is not an error; an unreadable or malformed one is.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(payload, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	if fc.StateDir != "" {
		cfg.StateDir = fc.StateDir
		cfg.StorePath = filepath.Join(fc.StateDir, storeFileName)
	}
	if fc.RepoPath != "" {
		cfg.RepoPath = fc.RepoPath
	}
	return cfg, nil
}
