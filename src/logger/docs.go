// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides a pluggable, leveled logging facade.
//
// Application code asks the process-wide [Manager] for a named [Logger] and
// logs at one of seven severities. The manager's active [Factory] decides
// what a logger does with a record: the null factory discards everything,
// the verbose factory emits every level and the warning factory (the
// default) emits Warn, Error and Fatal only. Swapping the factory changes
// the behaviour of every logger obtained afterwards without touching call
// sites:
//
//	log := logger.GetLogger("scanner")
//	log.Info("found {0} devices in {1}", n, elapsed) // dropped by the default factory
//	log.ErrorErr(err, "scan of {0} failed", region)
//
//	_ = logger.SetFactory(logger.VerboseFactory) // later loggers emit everything
//
// Emitted records become single lines of the form
//
//	2024-05-01 12:00:00.000	Error-scanner	scan of eu-west failed	Exception:
//	connection reset
//
// and are handed to a [Sink]. Logging never fails the caller: formatting
// problems fall back to the raw template and sink failures are swallowed.
// The only error the package reports is [ErrNilFactory].
//
// Loggers are not cached. Every GetLogger call returns a new instance, even
// for a name seen before.
package logger
