// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// logfacade is a command-line tool for the leveled logging facade.
//
// # Installation
//
//	go install github.com/H0llyW00dzZ/logfacade/cmd/logfacade@latest
//
// # Usage
//
//	logfacade [--config FILE] COMMAND [FLAGS]
//
// # Commands
//
//	emit MESSAGE [ARGS...]   Emit one record through the facade
//	levels                   Print which levels each standard factory emits
//	config validate [FILE]   Validate a configuration file
//
// # Examples
//
// Emit a warning (shown by the default warning factory):
//
//	logfacade emit --level warn --name scanner "found {0} devices" 3
//
// Emit a debug record through the verbose factory:
//
//	logfacade emit --factory verbose --level debug "cache miss for {0}" key-7
//
// Select the backend from a configuration file:
//
//	LOGFACADE_CONFIG_FILE=logfacade.yaml logfacade emit --level info "started"
package main
