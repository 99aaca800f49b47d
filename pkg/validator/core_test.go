package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numvalid/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "amount", Message: "must be a decimal number"})
		assert.Equal(t, "validation failed: amount: must be a decimal number", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "precision", Message: "must be at least 1"})
		errs.Add(validator.ValidationError{Field: "scale", Message: "must be less than precision"})

		msg := errs.Error()
		assert.Contains(t, msg, "precision: must be at least 1")
		assert.Contains(t, msg, "scale: must be less than precision")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "scale", Message: "must be at least 0"},
		{Field: "precision", Message: "must be at least 1"},
		{Field: "scale", Message: "must be less than precision"},
	}

	assert.True(t, errs.Has("scale"))
	assert.False(t, errs.Has("values"))
	assert.Equal(t, []string{"must be at least 0", "must be less than precision"}, errs.Get("scale"))
	assert.Len(t, errs.GetErrors("precision"), 1)
	assert.Equal(t, []string{"scale", "precision"}, errs.Fields())
	assert.Equal(t, map[string][]string{
		"scale":     {"must be at least 0", "must be less than precision"},
		"precision": {"must be at least 1"},
	}, errs.Map())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.MinNum("precision", 17, 1),
			validator.MaxNum("values", 3, 10),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failed rule", func(t *testing.T) {
		err := validator.Apply(
			validator.MinNum("precision", 0, 1),
			validator.MinNum("scale", -1, 0),
			validator.MaxNum("values", 3, 10),
		)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"precision", "scale"}, verrs.Fields())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))

	wrapped := fmt.Errorf("check request: %w", validator.ValidationErrors{{Field: "values", Message: "required"}})
	verrs := validator.ExtractValidationErrors(wrapped)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("values"))

	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
	assert.True(t, validator.IsValidationError(wrapped))
}
