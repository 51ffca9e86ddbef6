package pathological

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLocateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "locate [dir]",
		Short:             MsgLocateShort,
		Long:              MsgLocateLong,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeDirs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := targetDir(args)
			if err != nil {
				return err
			}

			path, err := a.resolver(cmd).FindPathfile(dir)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}
