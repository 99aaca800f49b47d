package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numvalid/pkg/numvalidator"
	"github.com/dmitrymomot/numvalid/pkg/validator"
)

func TestDecimalString(t *testing.T) {
	t.Parallel()

	v := numvalidator.MustNew(5, 2, true)

	tests := []struct {
		name    string
		value   string
		valid   bool
		key     string
		message string
	}{
		{"valid", "123.45", true, "validation.decimal.ok", "must be a decimal number"},
		{"empty", "", false, "validation.decimal.empty", "field is required"},
		{"whitespace", "1 2", false, "validation.decimal.whitespace", "must not contain whitespace"},
		{"malformed", "1..2", false, "validation.decimal.malformed", "must be a decimal number"},
		{"precision", "1234.56", false, "validation.decimal.precision_exceeded", "must have at most 5 digits"},
		{"scale", "1.234", false, "validation.decimal.scale_exceeded", "must have at most 2 digits after the separator"},
		{"negative", "-1", false, "validation.decimal.negative_not_allowed", "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rule := validator.DecimalString("amount", tt.value, v)
			assert.Equal(t, tt.valid, rule.Check())
			assert.Equal(t, "amount", rule.Error.Field)
			assert.Equal(t, tt.key, rule.Error.TranslationKey)
			assert.Equal(t, tt.message, rule.Error.Message)
			assert.Equal(t, map[string]any{"field": "amount", "precision": 5, "scale": 2}, rule.Error.TranslationValues)
		})
	}
}

func TestDecimalConfig(t *testing.T) {
	t.Parallel()

	t.Run("accepts constructor-valid values", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.DecimalConfig(17, 2)...))
		assert.NoError(t, validator.Apply(validator.DecimalConfig(1, 0)...))
	})

	t.Run("matches constructor rejections", func(t *testing.T) {
		cases := [][2]int{{0, 0}, {-1, 2}, {17, -1}, {17, 17}, {17, 18}}
		for _, c := range cases {
			rulesErr := validator.Apply(validator.DecimalConfig(c[0], c[1])...)
			_, ctorErr := numvalidator.New(c[0], c[1], false)
			assert.Error(t, rulesErr, "precision=%d scale=%d", c[0], c[1])
			assert.Error(t, ctorErr, "precision=%d scale=%d", c[0], c[1])
		}
	})

	t.Run("reports field errors", func(t *testing.T) {
		err := validator.Apply(validator.DecimalConfig(0, -1)...)
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("precision"))
		assert.True(t, verrs.Has("scale"))
	})

	t.Run("works with Apply alongside decimal strings", func(t *testing.T) {
		v := numvalidator.MustNew(17, 2, false)
		err := validator.Apply(append(validator.DecimalConfig(17, 2),
			validator.DecimalString("amount", "-10,50", v),
		)...)
		assert.NoError(t, err)
	})
}
