package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/serayd61/stacks-deployer/internal/config"
)

// ErrConfigExists is returned by ConfigInit when the file is already present
// and overwrite was not requested.
var ErrConfigExists = errors.New("config already exists")

// ConfigExists reports whether a config file is present at path.
func ConfigExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ConfigInit writes cfg to path.
func ConfigInit(path string, cfg config.Config, overwrite bool) error {
	if !overwrite && ConfigExists(path) {
		return fmt.Errorf("%s: %w", path, ErrConfigExists)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
