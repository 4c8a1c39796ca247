// ============================================================================
// verifier - Fluent value verification
// ============================================================================
//
// Package:     cmd
// Description: Root command, global flags and verifier setup
// Author:      msto63
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/verifier/core/config"
	"github.com/msto63/verifier/core/log"
	"github.com/msto63/verifier/verify"
)

// errReported is returned after a command already printed why it failed
var errReported = errors.New("reported")

type options struct {
	configFile string
	verbose    bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "verifier",
		Short: "Inspect message bundles and run verifications",
		Long: `verifier works with the message bundles of the verify package.

Commands:
  locales  - available locales and their bundle files
  keys     - message keys and their resolved messages
  render   - render a message with arguments
  lint     - check that every bundle compiles and is complete
  check    - verify a string value with named checks`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config `file` (default: ./verifier.{toml,yaml,json})")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newLocalesCmd(opts),
		newKeysCmd(opts),
		newRenderCmd(opts),
		newLintCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// verifier loads the configuration and creates a verifier from it. The caller
// closes the verifier.
func (o *options) verifier(cmd *cobra.Command) (*verify.Verifier, error) {
	cfg, err := config.Load(o.configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if o.verbose {
		cfg.Log.Level = log.LevelDebug
	}
	return cfg.NewVerifier(cfg.Logger(cmd.ErrOrStderr()))
}

func printError(w io.Writer, err error) {
	p := newPrinter(w)
	fmt.Fprintf(w, "%s %v\n", p.style(errorStyle, "Error:"), err)
}
