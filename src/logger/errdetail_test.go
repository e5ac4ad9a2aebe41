// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/logfacade/src/logger"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type nilPointerError struct{ msg *string }

func (e *nilPointerError) Error() string { return *e.msg }

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Nil",
			testFunc: func(t *testing.T) {
				assert.Equal(t, "<nil>", logger.ErrorDetail(nil))
			},
		},
		{
			name: "Plain",
			testFunc: func(t *testing.T) {
				assert.Equal(t, "disk full", logger.ErrorDetail(errors.New("disk full")))
			},
		},
		{
			name: "WrappedChain",
			testFunc: func(t *testing.T) {
				root := errors.New("connection reset")
				mid := fmt.Errorf("read frame: %w", root)
				top := fmt.Errorf("scan region: %w", mid)

				got := logger.ErrorDetail(top)
				want := "scan region: read frame: connection reset" +
					"\n ---> read frame: connection reset" +
					"\n ---> connection reset"
				assert.Equal(t, want, got)
			},
		},
		{
			name: "Joined",
			testFunc: func(t *testing.T) {
				err := errors.Join(errors.New("first"), errors.New("second"))
				got := logger.ErrorDetail(err)
				assert.Contains(t, got, "\n ---> first")
				assert.Contains(t, got, "\n ---> second")
			},
		},
		{
			name: "PkgErrorsStack",
			testFunc: func(t *testing.T) {
				err := pkgerrors.Wrap(errors.New("timeout"), "dial beacon")
				got := logger.ErrorDetail(err)
				assert.True(t, strings.HasPrefix(got, "timeout\ndial beacon"), got)
				assert.Contains(t, got, "errdetail_test.go", "stack frames expected")
			},
		},
		{
			name: "PkgErrorsCauseInsideStdWrap",
			testFunc: func(t *testing.T) {
				inner := pkgerrors.New("checksum mismatch")
				err := fmt.Errorf("decode: %w", inner)
				got := logger.ErrorDetail(err)
				assert.True(t, strings.HasPrefix(got, "decode: checksum mismatch\n ---> checksum mismatch"), got)
				assert.Contains(t, got, "errdetail_test.go")
			},
		},
		{
			name: "PanickingError",
			testFunc: func(t *testing.T) {
				var got string
				assert.NotPanics(t, func() {
					got = logger.ErrorDetail(&nilPointerError{})
				})
				assert.Contains(t, got, "nilPointerError")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}
