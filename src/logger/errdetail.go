// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// maxCauseDepth bounds how far ErrorDetail follows a cause chain.
const maxCauseDepth = 32

// causeSeparator prefixes every wrapped cause in ErrorDetail output.
const causeSeparator = "\n ---> "

// stackTracer is implemented by errors created with github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// ErrorDetail returns the full descriptive text of err: its message followed
// by one line per wrapped cause. Causes are found through Unwrap() error,
// Unwrap() []error and the Cause() method of github.com/pkg/errors. Errors
// that carry a pkg/errors stack trace are rendered with %+v, which already
// includes their own chain and frames.
//
// A nil err renders as "<nil>". ErrorDetail never panics: an error whose
// methods panic is rendered by type name.
func ErrorDetail(err error) (detail string) {
	if err == nil {
		return "<nil>"
	}
	defer func() {
		if r := recover(); r != nil {
			detail = fmt.Sprintf("%T (error detail unavailable: %v)", err, r)
		}
	}()

	if _, ok := err.(stackTracer); ok {
		return fmt.Sprintf("%+v", err)
	}

	var b strings.Builder
	b.WriteString(err.Error())
	writeCauses(&b, err, 0)
	return b.String()
}

func writeCauses(b *strings.Builder, err error, depth int) {
	if depth >= maxCauseDepth {
		return
	}
	for _, cause := range causes(err) {
		if cause == nil {
			continue
		}
		b.WriteString(causeSeparator)
		if _, ok := cause.(stackTracer); ok {
			fmt.Fprintf(b, "%+v", cause)
			continue
		}
		b.WriteString(cause.Error())
		writeCauses(b, cause, depth+1)
	}
}

func causes(err error) []error {
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		return e.Unwrap()
	case interface{ Unwrap() error }:
		return []error{e.Unwrap()}
	case interface{ Cause() error }:
		return []error{e.Cause()}
	default:
		return nil
	}
}
