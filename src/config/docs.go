// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the process-wide logging configuration and applies it
// to a [logger.Manager].
//
// A configuration selects the active factory, the advisory verbose flag, the
// stream the gated loggers write to and whether console colouring is used:
//
//	# logfacade.yaml
//	factory: verbose   # null | verbose | warning | default
//	verbose: true
//	output: stderr     # stderr | stdout | discard
//	color: auto        # auto | always | never
//
// Files are JSON or YAML, chosen by extension, and are validated against an
// embedded JSON schema before use. The LOGFACADE_CONFIG_FILE, LOGFACADE_FACTORY
// and LOGFACADE_VERBOSE environment variables complement the file.
package config
