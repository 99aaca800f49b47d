package environment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/numvalid/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"production", environment.Production},
		{"prod", environment.Production},
		{" PROD ", environment.Production},
		{"staging", environment.Staging},
		{"stage", environment.Staging},
		{"development", environment.Development},
		{"dev", environment.Development},
		{"", environment.Development},
		{"qa", environment.Development},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, environment.Parse(tt.in), tt.in)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := environment.WithContext(context.Background(), environment.Production)
	assert.Equal(t, environment.Production, environment.FromContext(ctx))
	assert.True(t, environment.IsProduction(ctx))

	assert.Empty(t, environment.FromContext(context.Background()))
	assert.False(t, environment.IsProduction(context.Background()))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got environment.Environment
	handler := environment.Middleware(environment.Staging)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, environment.Staging, got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := environment.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(environment.WithContext(context.Background(), environment.Development))
	assert.True(t, ok)
	assert.Equal(t, "env", attr.Key)
	assert.Equal(t, "development", attr.Value.String())
}
