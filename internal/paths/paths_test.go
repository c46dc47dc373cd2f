package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/serayd61/stacks-deployer/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestAppDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.AppDir(), home))
	assert.True(t, strings.HasSuffix(paths.AppDir(), ".stacks-deployer"))
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, filepath.Join(paths.AppDir(), "config.yaml"), paths.ConfigFile())
}

func TestSessionFile(t *testing.T) {
	assert.Equal(t, filepath.Join(paths.AppDir(), "session.yaml"), paths.SessionFile())
}

func TestLogFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.LogFile(), "stacks-deployer.log"))
}

func TestTemplatesDir(t *testing.T) {
	assert.Equal(t, filepath.Join(paths.AppDir(), "templates"), paths.TemplatesDir())
}
