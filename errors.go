package algovec

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/cwbudde/algo-vec/dsp/kernel"
)

var (
	// ErrInvalidArgument reports a size, depth, window or order that is
	// outside the accepted domain.
	ErrInvalidArgument = errors.New("algovec: invalid argument")

	// ErrSizeMismatch reports operands whose lengths disagree.
	ErrSizeMismatch = errors.New("algovec: size mismatch")

	// ErrOutOfRange reports a position outside a buffer or an operation on
	// an empty container.
	ErrOutOfRange = errors.New("algovec: out of range")

	// ErrAllocation reports that the allocator could not satisfy a request.
	ErrAllocation = errors.New("algovec: allocation failed")

	// ErrTransform is the class of all TransformError values.
	ErrTransform = errors.New("algovec: transform failed")

	// ErrKernel reports any other non-success kernel status.
	ErrKernel = errors.New("algovec: kernel failed")
)

// StatusError is returned when a kernel reports a non-success status during
// an elementwise, reduction or conversion call.
type StatusError struct {
	Status kernel.Status
	Op     string
	File   string
	Line   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("algovec: %s: %s (status %d) at %s:%d",
		e.Op, e.Status, int(e.Status), e.File, e.Line)
}

// Unwrap maps the status onto a sentinel.
func (e *StatusError) Unwrap() error {
	switch e.Status {
	case kernel.StatusSizeErr:
		return ErrSizeMismatch
	case kernel.StatusNullPtr:
		return ErrInvalidArgument
	case kernel.StatusMemAlloc:
		return ErrAllocation
	case kernel.StatusRangeErr:
		return ErrOutOfRange
	default:
		return ErrKernel
	}
}

// TransformError is returned when a status is reported during plan
// construction or transform execution.
type TransformError struct {
	Code    kernel.Status
	Message string
	Op      string
	File    string
	Line    int
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("algovec: %s: %s (status %d) at %s:%d",
		e.Op, e.Message, int(e.Code), e.File, e.Line)
}

func (e *TransformError) Unwrap() error { return ErrTransform }

// Check converts a kernel status into an error. It returns nil for
// StatusOK; otherwise a *StatusError carrying op and the caller's location.
func Check(status kernel.Status, op string) error {
	if status.OK() {
		return nil
	}
	file, line := caller()
	return &StatusError{Status: status, Op: op, File: file, Line: line}
}

// CheckTransform is Check for the transform path; failures are
// *TransformError.
func CheckTransform(status kernel.Status, op string) error {
	if status.OK() {
		return nil
	}
	file, line := caller()
	return &TransformError{
		Code:    status,
		Message: status.String(),
		Op:      op,
		File:    file,
		Line:    line,
	}
}

// caller reports the location of the function that called Check.
func caller() (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown", 0
	}
	return filepath.Base(file), line
}
