package kernel

import "fmt"

// Status is the result code returned by every kernel. StatusOK is the only
// non-error value.
type Status int

const (
	StatusOK           Status = 0
	StatusErr          Status = -2
	StatusSizeErr      Status = -6
	StatusNullPtr      Status = -8
	StatusMemAlloc     Status = -9
	StatusDivByZero    Status = -10
	StatusRangeErr     Status = -11
	StatusFFTOrderErr  Status = -15
	StatusFFTFlagErr   Status = -16
	StatusNotSupported Status = -17
)

// String returns the human-readable message for s.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "No errors"
	case StatusErr:
		return "Unknown/unspecified error"
	case StatusSizeErr:
		return "Wrong value of the data size"
	case StatusNullPtr:
		return "Null pointer error"
	case StatusMemAlloc:
		return "Not enough memory for the operation"
	case StatusDivByZero:
		return "Division by zero"
	case StatusRangeErr:
		return "Argument is out of range"
	case StatusFFTOrderErr:
		return "Invalid value for the FFT order"
	case StatusFFTFlagErr:
		return "Incorrect value for the FFT flag"
	case StatusNotSupported:
		return "Operation is not supported for this type"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// OK reports whether s is StatusOK.
func (s Status) OK() bool {
	return s == StatusOK
}
