package window

import (
	"errors"
	"fmt"

	algovec "github.com/cwbudde/algo-vec"
)

var (
	errEmptyCoeffs      = fmt.Errorf("window: coefficients must not be empty: %w", algovec.ErrInvalidArgument)
	errZeroCoherentGain = errors.New("window: coherent gain is zero")
)

func validateType(t Type) error {
	if _, ok := typeNames[t]; !ok {
		return fmt.Errorf("window: unknown type %d: %w", int(t), algovec.ErrInvalidArgument)
	}
	return nil
}
