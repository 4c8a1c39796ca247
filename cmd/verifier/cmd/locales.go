package cmd

import (
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/verifier/core/i18n"
)

func newLocalesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the available locales",
		Long: `Lists every locale with a bundle, its display name, the number of keys
it defines and the files they were loaded from.

Examples:
  verifier locales
  verifier locales --locales-dir ./locales`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vf, err := opts.verifier(cmd)
			if err != nil {
				return err
			}
			defer vf.Close()

			m := vf.Manager()
			p := newPrinter(cmd.OutOrStdout())
			p.title("Available locales")

			var rows [][]string
			for _, tag := range m.AvailableLocales() {
				var files []string
				for source, names := range m.Files(tag) {
					for _, name := range names {
						files = append(files, source+":"+name)
					}
				}
				sort.Strings(files)

				marker := ""
				if tag == m.DefaultLocale() {
					marker = " (default)"
				}
				rows = append(rows, []string{
					tag.String() + marker,
					i18n.DisplayName(tag),
					strconv.Itoa(len(m.Keys(tag))),
					strings.Join(files, ", "),
				})
			}
			p.table([]string{"LOCALE", "NAME", "KEYS", "FILES"}, rows)
			p.line("")
			p.line("Total: %d locale(s)", len(rows))
			return nil
		},
	}
}
