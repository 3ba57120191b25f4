// Package cmd wires the operator-facing CLI. Dispatch is flat: the first
// token selects exactly one lifecycle action, an optional second token is
// forwarded verbatim to the runtime build, and anything else is a usage
// error before any action runs.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-edge-insights/eii-deployment-tool-backend/internal/execx"
)

// Lifecycle is the set of actions the dispatcher can route to.
type Lifecycle interface {
	Build(ctx context.Context, extraArgs ...string) error
	Restart(ctx context.Context) error
	Up(ctx context.Context) error
	Down(ctx context.Context) error
}

// SetupFunc loads configuration and wires a Lifecycle. It runs before any
// action is dispatched, so a missing environment file aborts every
// invocation.
type SetupFunc func() (Lifecycle, error)

type action int

const (
	actionUp action = iota
	actionBuild
	actionRestart
	actionDown
	actionHelp
	actionVersion
)

// dispatch maps the raw argument list to an action. The no-token default
// is up; an unrecognized first token is a usage error regardless of what
// follows it.
func dispatch(args []string) (action, string, error) {
	if len(args) == 0 {
		return actionUp, "", nil
	}
	if len(args) > 2 {
		return 0, "", fmt.Errorf("too many arguments: %v", args)
	}

	extra := ""
	if len(args) == 2 {
		extra = args[1]
	}

	switch args[0] {
	case "--build", "-b":
		return actionBuild, extra, nil
	case "--restart", "-r":
		return actionRestart, "", nil
	case "--down", "-d":
		return actionDown, "", nil
	case "--up", "-u":
		return actionUp, "", nil
	case "--help", "-h":
		return actionHelp, "", nil
	case "--version", "-v":
		return actionVersion, "", nil
	default:
		return 0, "", fmt.Errorf("unknown option: %s", args[0])
	}
}

// NewRootCommand builds the root command around the given setup function.
func NewRootCommand(setup SetupFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eii-deployment-tool [--build|-b [build-arg] | --restart|-r | --down|-d | --up|-u]",
		Short: "Host-side lifecycle orchestrator for the EII Deployment Tool backend",
		Long: `Prepares the local host (Docker network, TLS certificates, SSH trust,
passwordless sudo) and drives the backend's container stack through the
container runtime. Without an option the stack is brought up.`,
		// The verb tokens are dispatched by hand so a second token can be
		// forwarded verbatim to the runtime build step.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			act, extra, err := dispatch(args)
			if err != nil {
				return err
			}

			switch act {
			case actionHelp:
				return cmd.Help()
			case actionVersion:
				fmt.Fprintf(cmd.OutOrStdout(), "eii-deployment-tool %s\n", cmd.Version)
				return nil
			}

			lc, err := setup()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			switch act {
			case actionBuild:
				if extra != "" {
					return lc.Build(ctx, extra)
				}
				return lc.Build(ctx)
			case actionRestart:
				return lc.Restart(ctx)
			case actionDown:
				return lc.Down(ctx)
			default:
				// Explicit --up and the no-token default are the same action.
				return lc.Up(ctx)
			}
		},
	}

	return cmd
}

// Execute runs the CLI and exits with the first failing step's status.
func Execute(version, commit, date string) {
	root := NewRootCommand(setup)
	root.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(execx.ExitCode(err))
	}
}
