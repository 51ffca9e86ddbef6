package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "pathological"

	// EnvConfigDir overrides the config directory
	EnvConfigDir = "PATHOLOGICAL_CONFIG_DIR"

	// EnvStateDir overrides the state directory
	EnvStateDir = "PATHOLOGICAL_STATE_DIR"

	// LogFileName is the name of the optional log file in the state directory
	LogFileName = "pathological.log"
)

// ConfigFileNames lists user config files in lookup order
var ConfigFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Paths resolves application directories
type Paths struct {
	configDir string
	stateDir  string
}

// New creates a Paths instance from the environment
func New() *Paths {
	p := &Paths{
		configDir: filepath.Join(xdg.ConfigHome, AppDirName),
		stateDir:  filepath.Join(xdg.StateHome, AppDirName),
	}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	}
	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	}
	return p
}

// ConfigDir returns the configuration directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// ConfigFiles returns the candidate user config files in lookup order
func (p *Paths) ConfigFiles() []string {
	files := make([]string, 0, len(ConfigFileNames))
	for _, name := range ConfigFileNames {
		files = append(files, filepath.Join(p.configDir, name))
	}
	return files
}

// LogFile returns the path of the log file
func (p *Paths) LogFile() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
