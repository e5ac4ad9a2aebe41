// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/logfacade/src/config"
	"github.com/H0llyW00dzZ/logfacade/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/logfacade/src/logger"
	"github.com/spf13/cobra"
)

type emitOptions struct {
	*options
	level   string
	name    string
	errText string
	factory string
	verbose bool
}

func newEmitCommand(opts *options) *cobra.Command {
	e := &emitOptions{options: opts}

	cmd := &cobra.Command{
		Use:   "emit MESSAGE [ARGS...]",
		Short: "Emit one record through the facade",
		Long: `Emit one record through the process-wide logger manager.

MESSAGE may hold positional placeholders ({0}, {1,8}, ...) filled from ARGS.
Whether a line is produced depends on the active factory.`,
		Example: `  logfacade emit --level warn --name scanner "found {0} devices" 3
  logfacade emit --factory verbose --level debug "cache miss for {0}" key-7
  logfacade emit --level error --error "connection reset" "dial {0} failed" 10.0.0.7`,
		RunE: e.run,
	}

	cmd.Flags().StringVarP(&e.level, "level", "l", "info", "severity: trace, verbose, debug, info, warn, error, fatal")
	cmd.Flags().StringVarP(&e.name, "name", "n", posix.ExecutableName(), "logger name")
	cmd.Flags().StringVarP(&e.errText, "error", "e", "", "attach an error with this text")
	cmd.Flags().StringVarP(&e.factory, "factory", "f", "", "override the configured factory (null, verbose, warning)")
	cmd.Flags().BoolVarP(&e.verbose, "verbose", "v", false, "set the advisory verbose flag")
	return cmd
}

func (e *emitOptions) run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return ErrMessageRequired
	}

	level, err := logger.ParseLevel(e.level)
	if err != nil {
		return err
	}

	cfg, err := config.Load(e.configFile)
	if err != nil {
		return err
	}
	if e.factory != "" {
		cfg.Factory = e.factory
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = e.verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Apply(logger.Default(), cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
		return err
	}

	log := logger.GetLogger(e.name)
	msg, fmtArgs := args[0], toAny(args[1:])

	if !log.Enabled(level) && logger.VerboseEnabled() {
		// The active factory may be the one dropping the record, so the note
		// bypasses it.
		fmt.Fprintf(cmd.ErrOrStderr(), "%s records are dropped by the %s factory\n", level, cfg.Factory)
	}

	if e.errText != "" {
		logErr(log, level, errors.New(e.errText), msg, fmtArgs)
	} else {
		logMsg(log, level, msg, fmtArgs)
	}
	return nil
}

func toAny(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

func logMsg(l logger.Logger, level logger.Level, msg string, args []any) {
	switch level {
	case logger.LevelTrace:
		l.Trace(msg, args...)
	case logger.LevelVerbose:
		l.Verbose(msg, args...)
	case logger.LevelDebug:
		l.Debug(msg, args...)
	case logger.LevelInfo:
		l.Info(msg, args...)
	case logger.LevelWarn:
		l.Warn(msg, args...)
	case logger.LevelError:
		l.Error(msg, args...)
	case logger.LevelFatal:
		l.Fatal(msg, args...)
	}
}

func logErr(l logger.Logger, level logger.Level, err error, msg string, args []any) {
	switch level {
	case logger.LevelTrace:
		l.TraceErr(err, msg, args...)
	case logger.LevelVerbose:
		l.VerboseErr(err, msg, args...)
	case logger.LevelDebug:
		l.DebugErr(err, msg, args...)
	case logger.LevelInfo:
		l.InfoErr(err, msg, args...)
	case logger.LevelWarn:
		l.WarnErr(err, msg, args...)
	case logger.LevelError:
		l.ErrorErr(err, msg, args...)
	case logger.LevelFatal:
		l.FatalErr(err, msg, args...)
	}
}
