package cmd

import (
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/verifier/core/error"
	"github.com/msto63/verifier/verify"
)

// negatePrefix negates the check it precedes
const negatePrefix = "not:"

type stringCheck struct {
	needsArg bool
	apply    func(v *verify.StringVerifier, arg string) (*verify.StringVerifier, error)
}

func noArg(fn func(v *verify.StringVerifier) *verify.StringVerifier) stringCheck {
	return stringCheck{apply: func(v *verify.StringVerifier, _ string) (*verify.StringVerifier, error) {
		return fn(v), nil
	}}
}

func withArg(fn func(v *verify.StringVerifier, arg string) *verify.StringVerifier) stringCheck {
	return stringCheck{needsArg: true, apply: func(v *verify.StringVerifier, arg string) (*verify.StringVerifier, error) {
		return fn(v, arg), nil
	}}
}

var stringChecks = map[string]stringCheck{
	"alpha":               noArg((*verify.StringVerifier).Alpha),
	"alphanumeric":        noArg((*verify.StringVerifier).Alphanumeric),
	"alpha-space":         noArg((*verify.StringVerifier).AlphaSpace),
	"alphanumeric-space":  noArg((*verify.StringVerifier).AlphanumericSpace),
	"ascii-printable":     noArg((*verify.StringVerifier).ASCIIPrintable),
	"blank":               noArg((*verify.StringVerifier).Blank),
	"empty":               noArg((*verify.StringVerifier).Empty),
	"lower-case":          noArg((*verify.StringVerifier).LowerCase),
	"upper-case":          noArg((*verify.StringVerifier).UpperCase),
	"numeric":             noArg((*verify.StringVerifier).Numeric),
	"numeric-space":       noArg((*verify.StringVerifier).NumericSpace),
	"whitespace":          noArg((*verify.StringVerifier).Whitespace),
	"email":               noArg((*verify.StringVerifier).Email),
	"url":                 noArg((*verify.StringVerifier).URL),
	"uuid":                noArg((*verify.StringVerifier).UUID),
	"contain":             withArg((*verify.StringVerifier).Contain),
	"contain-ignore-case": withArg((*verify.StringVerifier).ContainIgnoreCase),
	"start-with":          withArg((*verify.StringVerifier).StartWith),
	"end-with":            withArg((*verify.StringVerifier).EndWith),
	"equal":               withArg((*verify.StringVerifier).EqualTo),
	"equal-ignore-case":   withArg((*verify.StringVerifier).EqualToIgnoreCase),
	"match":               withArg((*verify.StringVerifier).Match),
	"size": {needsArg: true, apply: func(v *verify.StringVerifier, arg string) (*verify.StringVerifier, error) {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, mdwerror.Wrap(err, "size needs a number").
				WithCode(mdwerror.CodeInvalidInput).
				WithDetail("argument", arg)
		}
		return v.SizeOf(n), nil
	}},
}

func checkNames() []string {
	names := make([]string, 0, len(stringChecks))
	for name, c := range stringChecks {
		if c.needsArg {
			name += ":<arg>"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newCheckCmd(opts *options) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "check <value> <check>...",
		Short: "Verify a string value",
		Long: `Verifies a string value with a chain of checks. Checks run in order and the
first failing one is reported. A "not:" prefix negates a check, arguments
follow a colon.

Checks:
  ` + strings.Join(checkNames(), "\n  ") + `

Examples:
  verifier check alice not:blank alphanumeric size:5
  verifier check "x@y" email --name address --locale de
  verifier check abc not:match:^[0-9]+$`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vf, err := opts.verifier(cmd)
			if err != nil {
				return err
			}
			defer vf.Close()

			var names []string
			if name != "" {
				names = append(names, name)
			}
			v := vf.String(args[0], names...)
			for _, token := range args[1:] {
				if v, err = applyCheck(v, token); err != nil {
					return err
				}
			}

			p := newPrinter(cmd.OutOrStdout())
			if err := v.Err(); err != nil {
				if !verify.IsFailure(err) {
					return err
				}
				p.line("%s %v", p.style(errorStyle, "FAIL"), err)
				return errReported
			}
			p.line("%s %q", p.style(okStyle, "PASS"), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "`name` of the value in messages")
	return cmd
}

// applyCheck parses "[not:]...name[:arg]" and applies it to v
func applyCheck(v *verify.StringVerifier, token string) (*verify.StringVerifier, error) {
	rest := token
	for strings.HasPrefix(rest, negatePrefix) {
		rest = strings.TrimPrefix(rest, negatePrefix)
		v = v.Not()
	}

	checkName, arg, hasArg := strings.Cut(rest, ":")
	c, ok := stringChecks[checkName]
	if !ok {
		return nil, mdwerror.New("unknown check").
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("check", token)
	}
	if c.needsArg != hasArg {
		return nil, mdwerror.Newf("check %s: argument mismatch", checkName).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("check", token)
	}
	return c.apply(v, arg)
}
