// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// FallbackName is returned by [ExecutableName] when os.Args carries no program name.
const FallbackName = "logfacade"

// ExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] and removes the .exe suffix so
// usage strings and logger names read the same on every operating system.
func ExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return FallbackName
	}

	name := filepath.Base(os.Args[0])

	// A Windows path seen on Unix (or the reverse) is not split by filepath.Base.
	if strings.ContainsAny(name, `\/`) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	name = strings.TrimSuffix(name, ".exe")
	if name == "" {
		return FallbackName
	}
	return name
}
