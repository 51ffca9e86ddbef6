package pathological

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathological/pkg/loadpath"
	"github.com/arthur-debert/pathological/pkg/shell"
)

func newEnvCmd(a *app) *cobra.Command {
	var (
		dir       string
		shellName string
	)

	cmd := &cobra.Command{
		Use:     "env [explicit paths...]",
		Short:   MsgEnvShort,
		Long:    MsgEnvLong,
		Example: MsgEnvExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.resolver(cmd)
			var (
				paths []string
				err   error
			)
			if dir != "" {
				paths, err = r.ResolveFrom(dir, args)
			} else {
				paths, err = r.Resolve(args)
			}
			if err != nil {
				return err
			}

			if a.cfg.Output.Unique {
				paths = loadpath.Unique(paths)
			}

			if shellName == "" {
				shellName = shell.Detect()
			}
			snippet, err := shell.ExportSnippet(shellName, a.cfg.Shell.Variable, paths)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), snippet)
			return err
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", "", MsgFlagDir)
	cmd.Flags().StringVar(&shellName, "shell", "", MsgFlagShell)
	cmd.Flags().String("var", "", MsgFlagVar)
	cmd.Flags().BoolP("unique", "u", false, MsgFlagUnique)

	_ = cmd.RegisterFlagCompletionFunc("shell", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return shell.Shells, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
