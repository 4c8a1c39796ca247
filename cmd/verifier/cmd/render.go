package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/verifier/core/error"
	"github.com/msto63/verifier/core/format"
)

func newRenderCmd(opts *options) *cobra.Command {
	var pattern bool

	cmd := &cobra.Command{
		Use:   "render <key> [args...]",
		Short: "Render a message",
		Long: `Renders the message of a key in the selected locale. Arguments that parse
as integers or decimals are passed as numbers, everything else as text.

Examples:
  verifier render int.less_than 1000 --locale de
  verifier render string.size_of 1
  verifier render --pattern "{0} of {1,number,percent}" total 0.25`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vf, err := opts.verifier(cmd)
			if err != nil {
				return err
			}
			defer vf.Close()

			m := vf.Manager()
			values := parseArgs(args[1:])

			var out string
			if pattern {
				p, err := m.Compile(args[0], vf.Locale())
				if err != nil {
					return err
				}
				out = p.Format(vf.Registry(), values...)
			} else {
				out, err = m.Message(vf.Locale(), args[0], values...)
				if err != nil {
					return mdwerror.Wrap(err, "cannot render message").WithDetail("key", args[0])
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pattern, "pattern", false, "treat the first argument as a pattern")
	return cmd
}

func parseArgs(args []string) []any {
	values := make([]any, len(args))
	for i, arg := range args {
		if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
			values[i] = n
		} else if f, err := strconv.ParseFloat(arg, 64); err == nil {
			values[i] = f
		} else {
			values[i] = format.Text(arg)
		}
	}
	return values
}
