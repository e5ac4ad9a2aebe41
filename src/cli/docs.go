// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of the logging facade.
// It implements a Cobra-based CLI that emits records through the process-wide
// logger manager, prints the gating matrix of the standard factories and
// validates configuration files. The tool reports its own problems through a
// logger obtained from the same facade.
package cli
