package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths contains standard filesystem paths for apphost.
type Paths struct {
	// ConfigFile is the path to the config file (~/.apphost/config.yaml).
	ConfigFile string

	// HomeDir is the apphost home directory (~/.apphost).
	HomeDir string
}

// DefaultPaths returns the default paths for apphost.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	apphostHome := filepath.Join(homeDir, ".apphost")

	return &Paths{
		ConfigFile: filepath.Join(apphostHome, "config.yaml"),
		HomeDir:    apphostHome,
	}, nil
}

// GetConfigFile returns the config file path. APPHOST_CONFIG takes precedence
// over the default location.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("APPHOST_CONFIG"); envPath != "" {
		return envPath, nil
	}
	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return homeDir, nil
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~/")), nil
}
