package pathological

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Locate and parse Pathfiles into load paths"
	MsgLocateShort     = "Print the location of the governing Pathfile"
	MsgPathsShort      = "Print the resolved load path"
	MsgCheckShort      = "Report on the Pathfile governing a directory"
	MsgEnvShort        = "Print a shell statement exporting the load path"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"

	// Output
	MsgVersionFormat = "pathological version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrRender     = "failed to write output: %w"
	MsgErrManPages   = "failed to generate man pages: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Read configuration from FILE instead of the user config"
	MsgFlagName    = "Name of the file to look for (default from config, Pathfile)"
	MsgFlagLogFile = "Also write logs to the state directory"
	MsgFlagDir     = "Resolve from DIR instead of the working directory"
	MsgFlagFormat  = "Output format: lines, list, json, yaml or toml"
	MsgFlagUnique  = "Drop repeated paths, keeping the first occurrence"
	MsgFlagStyle   = "Report style: auto, term or text"
	MsgFlagShell   = "Shell syntax: bash, zsh or fish (default from $SHELL)"
	MsgFlagVar     = "Variable to export (default from config, RUBYLIB)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/locate-long.txt
	msgLocateLongRaw string
	MsgLocateLong    = strings.TrimSpace(msgLocateLongRaw)

	//go:embed msgs/paths-long.txt
	msgPathsLongRaw string
	MsgPathsLong    = strings.TrimSpace(msgPathsLongRaw)

	//go:embed msgs/paths-example.txt
	msgPathsExampleRaw string
	MsgPathsExample    = strings.TrimRight(msgPathsExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/env-long.txt
	msgEnvLongRaw string
	MsgEnvLong    = strings.TrimSpace(msgEnvLongRaw)

	//go:embed msgs/env-example.txt
	msgEnvExampleRaw string
	MsgEnvExample    = strings.TrimRight(msgEnvExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
