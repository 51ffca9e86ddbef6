package pathological

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathological/pkg/errors"
	"github.com/arthur-debert/pathological/pkg/ui"
	"github.com/arthur-debert/pathological/pkg/ui/report"
)

func newCheckCmd(a *app) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:               "check [dir]",
		Short:             MsgCheckShort,
		Long:              MsgCheckLong,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeDirs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(style)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --style").
					WithDetail("style", style)
			}

			dir, err := targetDir(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f, ok := out.(*os.File); ok {
				format = format.Resolve(f)
			} else if format == ui.FormatAuto {
				format = ui.FormatText
			}

			in := a.resolver(cmd).Inspect(dir)
			rep := report.Report{
				Dir:      in.Dir,
				Pathfile: in.Pathfile,
				Paths:    in.Paths,
				Err:      in.Err,
			}
			if err := report.New(out, format).Render(rep); err != nil {
				return err
			}

			if !rep.OK() {
				return ErrSilent
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "auto", MsgFlagStyle)

	return cmd
}
