package numvalidator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPrecision is returned when precision is not a positive number.
	ErrInvalidPrecision = errors.New("precision must be a positive number")

	// ErrInvalidScale is returned when scale is negative.
	ErrInvalidScale = errors.New("scale must be a non-negative number")

	// ErrScaleNotLessThanPrecision is returned when scale is greater than or equal to precision.
	ErrScaleNotLessThanPrecision = errors.New("scale must be less than precision")
)

// ConfigError describes a rejected validator configuration.
type ConfigError struct {
	Precision int
	Scale     int
	Err       error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("numvalidator: %v (precision=%d, scale=%d)", e.Err, e.Precision, e.Scale)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err carries a *ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
