package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newKeysCmd(opts *options) *cobra.Command {
	var missing bool

	cmd := &cobra.Command{
		Use:   "keys [prefix]",
		Short: "List message keys",
		Long: `Lists the message keys of the default locale with the message each one
resolves to in the selected locale and the locale it was found in.

Examples:
  verifier keys
  verifier keys string. --locale de
  verifier keys --locale fr --missing`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vf, err := opts.verifier(cmd)
			if err != nil {
				return err
			}
			defer vf.Close()

			prefix := ""
			if len(args) > 0 {
				prefix = args[0]
			}

			m := vf.Manager()
			tag := vf.Locale()
			own := make(map[string]bool)
			for _, key := range m.Keys(tag) {
				own[key] = true
			}

			p := newPrinter(cmd.OutOrStdout())
			var rows [][]string
			for _, key := range m.Keys(m.DefaultLocale()) {
				if !strings.HasPrefix(key, prefix) || (missing && own[key]) {
					continue
				}
				msg, found, ok := m.Lookup(key, tag)
				from := found.String()
				if !ok {
					msg, from = "", "-"
				}
				if found != tag {
					from = p.style(mutedStyle, from)
				}
				rows = append(rows, []string{key, from, msg})
			}
			p.table([]string{"KEY", "FROM", "MESSAGE"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&missing, "missing", false, "only keys the locale does not define itself")
	return cmd
}
