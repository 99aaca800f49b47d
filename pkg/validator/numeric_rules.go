package validator

import "fmt"

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// LessThan validates that value is strictly below a bound held by another field.
func LessThan[T Numeric](field string, value T, otherField string, other T) Rule {
	return Rule{
		Check: func() bool {
			return value < other
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be less than %s", otherField),
			TranslationKey: "validation.less_than_field",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
		},
	}
}
