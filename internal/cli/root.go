// SPDX-License-Identifier: MIT

// Package cli contains the cobra command surface for ansible-toolbox.
package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nasgware/ansible-toolbox/internal/toolbox"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	// atHelp prints usage without requiring a command
	atHelp bool
	// interactive requests an interactive container shell
	interactive bool
	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	pyPackages []string
	volumes    []string
	envVars    []string

	// rootCmd is the single command of the CLI: everything positional is the
	// in-container command.
	rootCmd = &cobra.Command{
		Use:   "ansible-toolbox [--at-* flags] command [args...]",
		Short: "Run Ansible commands in an ephemeral hardened container",
		Long: TitleStyle.Render("ansible-toolbox") + SubtitleStyle.Render(" - Run Ansible commands in an ephemeral hardened container") + `

ansible-toolbox builds a small Ansible container image on first use and
runs your command inside it. The current working directory is mounted
read-only at /workspace; command tokens that name files inside it are
rewritten to their in-container paths, and paths outside it are rejected.

All toolbox flags carry the --at- prefix so that Ansible's own flags pass
through untouched. Flag parsing stops at the first positional token:
everything after it belongs to the in-container command.

` + SubtitleStyle.Render("Examples:") + `
  ansible-toolbox ansible-playbook site.yml
  ansible-toolbox ansible-playbook -i hosts site.yml
  ansible-toolbox --at-i                        interactive shell
  ansible-toolbox --at-add-py-package netaddr ansible-playbook site.yml`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if atHelp {
				return cmd.Help()
			}

			req := toolbox.Request{
				Command:        args,
				Interactive:    interactive,
				PythonPackages: pyPackages,
				Volumes:        volumes,
				Env:            envVars,
			}

			app, err := newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), req)
		},
	}
)

func init() {
	// Everything after the first non-flag token is the in-container command.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.Flags().BoolVar(&atHelp, "at-help", false, "show this help message and exit")
	rootCmd.Flags().BoolVar(&interactive, "at-i", false, "run an interactive shell in the container")
	rootCmd.Flags().StringArrayVar(&pyPackages, "at-add-py-package", nil, "additional python package to add to the toolbox image (repeatable)")
	rootCmd.Flags().StringArrayVar(&volumes, "at-volume", nil, "additional volume to mount, passed through verbatim (repeatable)")
	rootCmd.Flags().StringArrayVar(&envVars, "at-env", nil, "additional KEY=VAL environment variable, passed through verbatim (repeatable)")
	rootCmd.Flags().BoolVar(&verbose, "at-verbose", false, "enable debug logging")
	rootCmd.Flags().StringVar(&cfgFile, "at-config", "", "config file (default is $XDG_CONFIG_HOME/ansible-toolbox/config.yaml)")
}

// Execute runs the root command. Every error is fatal to the process: the
// message goes to standard error and the process exits 1.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the CLI logger. Debug level is gated by --at-verbose (or
// the config file's verbose key, applied later by the app).
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "ansible-toolbox",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
