// Package paths provides the well-known locations pathological reads from
// and writes to outside of the project tree.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/pathological (config.toml or config.yaml)
//   - State: $XDG_STATE_HOME/pathological (log file)
//
// # Environment Variables
//
//   - PATHOLOGICAL_CONFIG_DIR: Override the config directory
//   - PATHOLOGICAL_STATE_DIR: Override the state directory
//
// Pathfile discovery itself never consults these directories; see package
// pathfile.
package paths
