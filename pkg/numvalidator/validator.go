package numvalidator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// numberRegex captures sign, integer digits and fractional digits.
var numberRegex = regexp.MustCompile(`^([+-]?)([0-9]+)(?:[.,]([0-9]+))?$`)

// Config holds validator constraints.
type Config struct {
	Precision    int  `env:"NUMBER_PRECISION" envDefault:"17"`
	Scale        int  `env:"NUMBER_SCALE" envDefault:"2"`
	OnlyPositive bool `env:"NUMBER_ONLY_POSITIVE" envDefault:"false"`
}

// Validate checks the configuration invariant: precision > 0, scale >= 0 and scale < precision.
func (c Config) Validate() error {
	switch {
	case c.Precision <= 0:
		return &ConfigError{Precision: c.Precision, Scale: c.Scale, Err: ErrInvalidPrecision}
	case c.Scale < 0:
		return &ConfigError{Precision: c.Precision, Scale: c.Scale, Err: ErrInvalidScale}
	case c.Scale >= c.Precision:
		return &ConfigError{Precision: c.Precision, Scale: c.Scale, Err: ErrScaleNotLessThanPrecision}
	}
	return nil
}

// Validator matches decimal number strings against fixed constraints.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	cfg Config
}

// New creates a validator or returns a *ConfigError for impossible constraints.
func New(precision, scale int, onlyPositive bool) (*Validator, error) {
	return NewFromConfig(Config{
		Precision:    precision,
		Scale:        scale,
		OnlyPositive: onlyPositive,
	})
}

// NewFromConfig creates a validator from a Config value.
func NewFromConfig(cfg Config) (*Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Validator{cfg: cfg}, nil
}

// MustNew works like New but panics if the configuration is invalid.
func MustNew(precision, scale int, onlyPositive bool) *Validator {
	v, err := New(precision, scale, onlyPositive)
	if err != nil {
		panic(err)
	}
	return v
}

// Config returns a copy of the validator constraints.
func (v *Validator) Config() Config {
	return v.cfg
}

func (v *Validator) String() string {
	return fmt.Sprintf("numvalidator(precision=%d, scale=%d, only_positive=%t)",
		v.cfg.Precision, v.cfg.Scale, v.cfg.OnlyPositive)
}

// IsValidNumber reports whether value is a decimal number within the configured constraints.
func (v *Validator) IsValidNumber(value string) bool {
	return v.Inspect(value) == ReasonNone
}

// IsValidNumberPtr is IsValidNumber for optional input. A nil value is never valid.
func (v *Validator) IsValidNumberPtr(value *string) bool {
	if value == nil {
		return false
	}
	return v.IsValidNumber(*value)
}

// Inspect returns the first failed check for value, or ReasonNone.
// Checks run in order: empty, whitespace, grammar, precision, scale, sign.
func (v *Validator) Inspect(value string) Reason {
	if value == "" {
		return ReasonEmpty
	}
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return ReasonWhitespace
	}

	match := numberRegex.FindStringSubmatch(value)
	if match == nil {
		return ReasonMalformed
	}
	sign, intPart, fracPart := match[1], match[2], match[3]

	if len(intPart)+len(fracPart) > v.cfg.Precision {
		return ReasonPrecisionExceeded
	}
	if len(fracPart) > v.cfg.Scale {
		return ReasonScaleExceeded
	}
	if sign == "-" && v.cfg.OnlyPositive {
		return ReasonNegativeNotAllowed
	}

	return ReasonNone
}
