// Package validator provides composable field validation rules with
// translation-friendly error metadata.
//
// A Rule pairs a boolean Check with a ValidationError describing the failure.
// Apply evaluates any number of rules and aggregates failures into a
// ValidationErrors slice that satisfies the error interface, so a handler can
// report every field problem in one response.
//
// # Decimal strings
//
// DecimalString adapts a numvalidator.Validator into a Rule. The rejection
// reason becomes part of the translation key (validation.decimal.<reason>),
// which lets callers render precise messages such as "too many digits after
// the separator" instead of a generic "invalid number".
//
// DecimalConfig produces rules that mirror the validator constructor
// invariant, so precision and scale coming from a request body are reported
// as field errors rather than as a single constructor error.
//
// # Usage
//
//	v := numvalidator.MustNew(17, 2, true)
//	err := validator.Apply(
//	    validator.DecimalString("amount", form.Amount, v),
//	    validator.MaxNum("items", len(form.Items), 100),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("amount"), verrs.Fields(), ...
//	}
//
// The package holds no state and every helper is safe for concurrent use.
package validator
