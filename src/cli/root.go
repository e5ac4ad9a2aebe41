// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/logfacade/src/config"
	"github.com/H0llyW00dzZ/logfacade/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/logfacade/src/logger"
	"github.com/spf13/cobra"
)

// ErrMessageRequired is returned by the emit command when no message is given.
var ErrMessageRequired = errors.New("a message is required")

// options holds the flags shared by the subcommands.
type options struct {
	configFile string
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Each call returns an independent
// tree, so tests can run commands side by side.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}
	exeName := posix.ExecutableName()

	rootCmd := &cobra.Command{
		Use:   exeName,
		Short: "Leveled logging facade tool",
		Long: fmt.Sprintf(`%s drives the leveled logging facade from the command line.

The active factory decides what happens to a record: "null" discards
everything, "verbose" emits every level and "warning" (the default) emits
Warn, Error and Fatal only.`, exeName),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// The standard factories write to DebugSink; keep them on the command's stderr.
			logger.DebugSink.SetOutput(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		fmt.Sprintf("configuration file (.json, .yaml, .yml; default: $%s)", config.EnvConfigFile))

	rootCmd.AddCommand(
		newEmitCommand(opts),
		newLevelsCommand(),
		newConfigCommand(opts),
	)
	return rootCmd
}

// Logger returns the logger the tool uses for its own diagnostics. It is
// named after the running executable and follows the active factory.
func Logger() logger.Logger {
	return logger.GetLogger(posix.ExecutableName())
}
