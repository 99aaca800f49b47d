// Package numvalidator decides whether a string is a well-formed decimal
// number under fixed precision, scale and sign constraints.
//
// A Validator is configured once and is immutable afterwards, so a single
// instance can be shared by any number of goroutines without locking.
//
// # Grammar
//
//	number    := [sign] intPart [separator fracPart]
//	sign      := '+' | '-'
//	intPart   := digit+
//	fracPart  := digit+
//	separator := '.' | ','
//
// Only ASCII digits are accepted and whitespace is never allowed.
//
// # Constraints
//
//   - Precision is the maximum count of digits in the integer and
//     fractional parts combined. Leading zeros count.
//   - Scale is the maximum count of digits after the separator.
//   - OnlyPositive rejects any literal with a leading '-', "-0" included.
//
// # Usage
//
//	v, err := numvalidator.New(17, 2, true)
//	if err != nil {
//	    // errors.Is(err, numvalidator.ErrInvalidPrecision) etc.
//	}
//	v.IsValidNumber("123.45")  // true
//	v.IsValidNumber("123,45")  // true
//	v.IsValidNumber("-1")      // false
//	v.Inspect("1.234")         // ReasonScaleExceeded
//
// # Error Handling
//
// Only construction can fail. New returns a *ConfigError that unwraps to one
// of ErrInvalidPrecision, ErrInvalidScale or ErrScaleNotLessThanPrecision.
// Matching never fails: malformed input is reported as false, or as a Reason
// by Inspect.
package numvalidator
