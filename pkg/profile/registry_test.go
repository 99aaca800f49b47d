package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numvalid/pkg/numvalidator"
	"github.com/dmitrymomot/numvalid/pkg/profile"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("builds validators for every profile", func(t *testing.T) {
		t.Parallel()
		content := []byte(`
profiles:
  money:
    description: Signed monetary amount
    precision: 17
    scale: 2
  price:
    precision: 17
    scale: 2
    only_positive: true
`)
		r, err := profile.Parse(context.Background(), content)
		require.NoError(t, err)
		assert.Equal(t, []string{"money", "price"}, r.Names())

		money, err := r.Get("money")
		require.NoError(t, err)
		assert.Equal(t, "Signed monetary amount", money.Description)
		assert.True(t, money.Validator().IsValidNumber("-123,45"))

		price, err := r.Get("price")
		require.NoError(t, err)
		assert.False(t, price.Validator().IsValidNumber("-1"))
	})

	t.Run("rejects impossible configuration", func(t *testing.T) {
		t.Parallel()
		content := []byte("profiles:\n  broken:\n    precision: 2\n    scale: 2\n")
		_, err := profile.Parse(context.Background(), content)
		require.Error(t, err)
		assert.ErrorIs(t, err, profile.ErrInvalidProfile)
		assert.ErrorIs(t, err, numvalidator.ErrScaleNotLessThanPrecision)
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("missing precision is invalid", func(t *testing.T) {
		t.Parallel()
		_, err := profile.Parse(context.Background(), []byte("profiles:\n  empty:\n    scale: 0\n"))
		assert.ErrorIs(t, err, numvalidator.ErrInvalidPrecision)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()
		_, err := profile.Parse(context.Background(), []byte("profiles: [unterminated"))
		assert.ErrorIs(t, err, profile.ErrFailedToParseYAML)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		t.Parallel()
		_, err := profile.Parse(context.Background(), []byte("profiles: {}"))
		assert.ErrorIs(t, err, profile.ErrNoProfiles)
	})

	t.Run("rejects names equal after case folding", func(t *testing.T) {
		t.Parallel()
		content := []byte("profiles:\n  Money:\n    precision: 5\n  money:\n    precision: 5\n")
		_, err := profile.Parse(context.Background(), content)
		assert.ErrorIs(t, err, profile.ErrDuplicateProfile)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := profile.Parse(ctx, []byte("profiles: {}"))
		assert.ErrorIs(t, err, profile.ErrParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	r, err := profile.LoadFile(context.Background(), "testdata/profiles.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	p, err := r.Get("MONEY")
	require.NoError(t, err)
	assert.Equal(t, "Money", p.Name)

	q, err := r.Get("quantity")
	require.NoError(t, err)
	assert.True(t, q.Validator().IsValidNumber("42"))
	assert.False(t, q.Validator().IsValidNumber("4.2"))

	_, err = profile.LoadFile(context.Background(), "testdata/missing.yaml")
	assert.ErrorIs(t, err, profile.ErrFailedToReadFile)
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("default profiles", func(t *testing.T) {
		t.Parallel()
		r := profile.Default()
		assert.Equal(t, []string{"integer", "money", "percent", "price"}, r.Names())

		all := r.All()
		require.Len(t, all, 4)
		assert.Equal(t, "integer", all[0].Name)

		percent, err := r.Get("Percent")
		require.NoError(t, err)
		assert.True(t, percent.Validator().IsValidNumber("100.00"))
		assert.False(t, percent.Validator().IsValidNumber("1000.00"))
	})

	t.Run("unknown profile", func(t *testing.T) {
		t.Parallel()
		_, err := profile.Default().Get("bitcoin")
		assert.ErrorIs(t, err, profile.ErrProfileNotFound)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		_, err := profile.New(profile.Profile{Precision: 5})
		assert.ErrorIs(t, err, profile.ErrInvalidProfile)
	})

	t.Run("no profiles", func(t *testing.T) {
		t.Parallel()
		_, err := profile.New()
		assert.ErrorIs(t, err, profile.ErrNoProfiles)
	})
}
