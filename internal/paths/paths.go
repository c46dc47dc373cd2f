package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// AppDir returns ~/.stacks-deployer.
func AppDir() string {
	return filepath.Join(home(), ".stacks-deployer")
}

// ConfigFile returns ~/.stacks-deployer/config.yaml.
func ConfigFile() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// SessionFile returns ~/.stacks-deployer/session.yaml.
func SessionFile() string {
	return filepath.Join(AppDir(), "session.yaml")
}

// LogFile returns ~/.stacks-deployer/stacks-deployer.log.
func LogFile() string {
	return filepath.Join(AppDir(), "stacks-deployer.log")
}

// TemplatesDir returns ~/.stacks-deployer/templates, the local checkout of
// the contract template repository.
func TemplatesDir() string {
	return filepath.Join(AppDir(), "templates")
}
