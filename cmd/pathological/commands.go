package pathological

import (
	"embed"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/pathological/internal/version"
	"github.com/arthur-debert/pathological/pkg/cobrax/topics"
	"github.com/arthur-debert/pathological/pkg/config"
	"github.com/arthur-debert/pathological/pkg/loadpath"
	"github.com/arthur-debert/pathological/pkg/logging"
)

//go:embed help
var helpFS embed.FS

// ErrSilent is returned by commands that already reported the failure.
// The caller should exit non-zero without printing anything else.
var ErrSilent = stderrors.New("failure already reported")

// flagKeys maps flags to the configuration keys they override
var flagKeys = map[string]string{
	"verbose":  "logging.verbosity",
	"log-file": "logging.file",
	"name":     "pathfile.name",
	"format":   "output.format",
	"unique":   "output.unique",
	"var":      "shell.variable",
}

// app carries state shared by all commands of one invocation
type app struct {
	configFile string
	cfg        *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "pathological",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().String("name", "", MsgFlagName)
	rootCmd.PersistentFlags().Bool("log-file", false, MsgFlagLogFile)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newLocateCmd(a))
	rootCmd.AddCommand(newPathsCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newEnvCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topic-based help from the embedded help directory
	opts := topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, helpFS, "help", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// setup loads configuration, with set flags as the top layer, and configures logging
func (a *app) setup(cmd *cobra.Command) error {
	overrides := make(map[string]interface{})
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})

	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ConfigFile: a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg

	logging.SetupLogger(cfg.Logging.Verbosity, cfg.Logging.File)
	return nil
}

// resolver builds a Resolver on the OS filesystem that warns on the command's stderr
func (a *app) resolver(cmd *cobra.Command) *loadpath.Resolver {
	return loadpath.New(loadpath.Options{
		PathfileName: a.cfg.Pathfile.Name,
		Warnings:     cmd.ErrOrStderr(),
	})
}

// targetDir returns the directory argument or the working directory
func targetDir(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return os.Getwd()
}

func completeDirs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}
