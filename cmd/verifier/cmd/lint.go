package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/msto63/verifier/core/format"
	"github.com/msto63/verifier/core/i18n"
)

// problem is a defect found in a bundle
type problem struct {
	locale  string
	key     string
	message string
}

func newLintCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Check the message bundles",
		Long: `Checks that every bundle loads, that every message compiles and that every
locale defines exactly the keys of the default locale. Messages may not use
more arguments than the default locale's message for the same key.

Examples:
  verifier lint
  verifier lint --locales-dir ./locales`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vf, err := opts.verifier(cmd)
			if err != nil {
				return err
			}
			defer vf.Close()

			problems := lint(vf.Manager())
			p := newPrinter(cmd.OutOrStdout())
			if len(problems) == 0 {
				p.line("%s %d locale(s) checked", p.style(okStyle, "OK"), len(vf.Manager().AvailableLocales()))
				return nil
			}

			rows := make([][]string, len(problems))
			for i, pr := range problems {
				rows[i] = []string{pr.locale, pr.key, pr.message}
			}
			p.table([]string{"LOCALE", "KEY", "PROBLEM"}, rows)
			p.line("")
			p.line("%s %d problem(s)", p.style(errorStyle, "FAIL"), len(problems))
			return errReported
		},
	}
}

func lint(m *i18n.Manager) []problem {
	var problems []problem
	for _, err := range m.LoadErrors() {
		problems = append(problems, problem{locale: "-", key: "-", message: err.Error()})
	}

	def := m.DefaultLocale()
	reference := m.Messages(def)
	argCounts := make(map[string]int, len(reference))
	for key, msg := range reference {
		if p, err := format.Compile(msg, def); err == nil {
			argCounts[key] = p.ArgCount()
		}
	}

	for _, tag := range m.AvailableLocales() {
		problems = append(problems, lintLocale(tag, m.Messages(tag), reference, argCounts)...)
	}
	return problems
}

func lintLocale(tag language.Tag, messages, reference map[string]string, argCounts map[string]int) []problem {
	var problems []problem
	add := func(key, msg string, args ...any) {
		problems = append(problems, problem{locale: tag.String(), key: key, message: fmt.Sprintf(msg, args...)})
	}

	for _, key := range sortedKeys(reference) {
		if _, ok := messages[key]; !ok {
			add(key, "missing")
		}
	}
	for _, key := range sortedKeys(messages) {
		if _, ok := reference[key]; !ok {
			add(key, "not defined by the default locale")
			continue
		}
		p, err := format.Compile(messages[key], tag)
		if err != nil {
			add(key, "%v", err)
			continue
		}
		if want, ok := argCounts[key]; ok && p.ArgCount() > want {
			add(key, "uses %d argument(s), the default locale %d", p.ArgCount(), want)
		}
	}
	return problems
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
