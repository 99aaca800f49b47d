package validator

import (
	"fmt"

	"github.com/dmitrymomot/numvalid/pkg/numvalidator"
)

var decimalMessages = map[numvalidator.Reason]string{
	numvalidator.ReasonEmpty:              "field is required",
	numvalidator.ReasonWhitespace:         "must not contain whitespace",
	numvalidator.ReasonMalformed:          "must be a decimal number",
	numvalidator.ReasonPrecisionExceeded:  "must have at most %d digits",
	numvalidator.ReasonScaleExceeded:      "must have at most %d digits after the separator",
	numvalidator.ReasonNegativeNotAllowed: "must not be negative",
}

// DecimalString validates that value is a decimal number accepted by v.
// The rejection reason is resolved eagerly, so the returned Rule carries the
// precise message and translation key.
func DecimalString(field, value string, v *numvalidator.Validator) Rule {
	reason := v.Inspect(value)
	cfg := v.Config()

	message := "must be a decimal number"
	switch reason {
	case numvalidator.ReasonNone:
	case numvalidator.ReasonPrecisionExceeded:
		message = fmt.Sprintf(decimalMessages[reason], cfg.Precision)
	case numvalidator.ReasonScaleExceeded:
		message = fmt.Sprintf(decimalMessages[reason], cfg.Scale)
	default:
		if m, ok := decimalMessages[reason]; ok {
			message = m
		}
	}

	return Rule{
		Check: func() bool {
			return reason.Valid()
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.decimal." + reason.String(),
			TranslationValues: map[string]any{
				"field":     field,
				"precision": cfg.Precision,
				"scale":     cfg.Scale,
			},
		},
	}
}

// DecimalConfig returns rules mirroring the numvalidator constructor invariant
// for request-supplied precision and scale.
func DecimalConfig(precision, scale int) []Rule {
	return []Rule{
		MinNum("precision", precision, 1),
		MinNum("scale", scale, 0),
		LessThan("scale", scale, "precision", precision),
	}
}
