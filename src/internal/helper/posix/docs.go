// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-style helpers for naming the running program.
//
// The CLI uses [ExecutableName] both for its usage strings and as the name of
// the logger it obtains from the facade, so log lines written by the tool carry
// the binary name the user actually typed:
//
//	log := logger.GetLogger(posix.ExecutableName())
//	log.Warn("config {0} not found", path)
//
// Cross-Platform Behavior:
//
//   - Linux/macOS: "/usr/bin/logfacade" → "logfacade"
//   - Windows: "C:\bin\logfacade.exe" → "logfacade"
//   - Fallback: Empty args → [FallbackName]
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
