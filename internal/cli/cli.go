// Package cli contains the trendsctl command line client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trends/trends_api/internal/client"
	"github.com/trends/trends_api/internal/errlocal"
	"github.com/trends/trends_api/internal/logging"
)

const (
	defaultServer = "http://localhost:8080"
	envPrefix     = "TRENDS"
	serverKey     = "server"
	verboseKey    = "verbose"
	cliSystem     = "cli"
)

// Exit codes returned by trendsctl.
const (
	ExitOK              = 0
	ExitInternal        = 1
	ExitBadRequest      = 2
	ExitNotFound        = 4
	ExitConflict        = 5
	ExitTooManyRequests = 6
)

// ExitCode is the process classification table for error kinds.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch errlocal.KindOf(err) {
	case errlocal.KindNotFound:
		return ExitNotFound
	case errlocal.KindBadRequest:
		return ExitBadRequest
	case errlocal.KindConflict:
		return ExitConflict
	case errlocal.KindTooManyRequests:
		return ExitTooManyRequests
	default:
		return ExitInternal
	}
}

type app struct {
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer
}

// NewRootCmd returns the trendsctl root command. The server address comes
// from --server or the TRENDS_SERVER environment variable.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "trendsctl",
		Short: "trendsctl talks to the trends API",
		Example: `  # Look up a trend by name
  trendsctl get-by-name golang

  # Bump a score
  trendsctl score 3f8a4c1e-9b0d-4a7e-8c2f-5d6e7f8a9b0c 42.5

  # Use another server
  TRENDS_SERVER=http://trends.internal:8080 trendsctl list`,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		Args:                       unknownCommand,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SilenceUsage = true
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errlocal.NewErrBadRequest(err.Error(), cliSystem, nil)
	})

	rootCmd.PersistentFlags().String(serverKey, defaultServer, "trends API base URL (env TRENDS_SERVER)")
	rootCmd.PersistentFlags().BoolP(verboseKey, "v", false, "log requests to stderr")

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetDefault(serverKey, defaultServer)
	if err := a.v.BindEnv(serverKey); err != nil {
		panic(err)
	}
	if err := a.v.BindPFlag(serverKey, rootCmd.PersistentFlags().Lookup(serverKey)); err != nil {
		panic(err)
	}
	if err := a.v.BindPFlag(verboseKey, rootCmd.PersistentFlags().Lookup(verboseKey)); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(a.newHealthCmd())
	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newGetCmd())
	rootCmd.AddCommand(a.newGetByNameCmd())
	rootCmd.AddCommand(a.newCreateCmd())
	rootCmd.AddCommand(a.newScoreCmd())
	rootCmd.AddCommand(a.newDeleteCmd())
	rootCmd.AddCommand(a.newImportCmd())
	rootCmd.AddCommand(a.newPurgeCmd())

	return rootCmd
}

// Execute runs trendsctl with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(stderr, err)
	}
	return ExitCode(err)
}

func printError(w io.Writer, err error) {
	var le errlocal.LocalError
	if errors.As(err, &le) {
		fmt.Fprintf(w, "Error (%s): %s\n", le.Kind(), le.Message())
		return
	}
	fmt.Fprintf(w, "Error: %s\n", err)
}

func (a *app) client() *client.Client {
	logger := logging.NewNopLogger()
	if a.v.GetBool(verboseKey) {
		logger.Logger.SetOutput(a.stderr)
		logger.Logger.SetLevel(logrus.DebugLevel)
	}
	return client.New(a.v.GetString(serverKey), logger)
}

// exactArgs reports wrong argument counts as bad requests so they exit
// with the usage code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return errlocal.NewErrBadRequest(err.Error(), cliSystem, nil)
		}
		return nil
	}
}

// unknownCommand replaces cobra's default root check, whose plain error
// would exit as internal.
func unknownCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}

	cmd.SilenceUsage = true
	msg := fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath())
	var details map[string]any
	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		msg += "; did you mean " + strings.Join(suggestions, ", ") + "?"
		details = map[string]any{"suggestions": suggestions}
	}
	return errlocal.NewErrBadRequest(msg, cliSystem, details)
}
