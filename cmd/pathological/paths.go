package pathological

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathological/pkg/loadpath"
	"github.com/arthur-debert/pathological/pkg/logging"
	"github.com/arthur-debert/pathological/pkg/ui/render"
)

func newPathsCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "paths [explicit paths...]",
		Short:   MsgPathsShort,
		Long:    MsgPathsLong,
		Example: MsgPathsExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.paths")

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

			format, err := render.ParseFormat(a.cfg.Output.Format)
			if err != nil {
				return err
			}

			logger.Debug().
				Str("format", format.String()).
				Int("count", len(paths)).
				Msg("Writing load path")

			if err := render.Render(cmd.OutOrStdout(), format, render.Result{Paths: paths}); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", "", MsgFlagDir)
	cmd.Flags().StringP("format", "f", "", MsgFlagFormat)
	cmd.Flags().BoolP("unique", "u", false, MsgFlagUnique)

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return render.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
