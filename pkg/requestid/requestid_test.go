package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numvalid/pkg/requestid"
)

func serve(t *testing.T, header string) (string, *httptest.ResponseRecorder) {
	t.Helper()
	var seen string
	handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return seen, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates UUID when header is missing", func(t *testing.T) {
		t.Parallel()
		id, rec := serve(t, "")
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, rec.Header().Get(requestid.Header))
	})

	t.Run("keeps valid incoming ID", func(t *testing.T) {
		t.Parallel()
		id, rec := serve(t, "check-batch_42")
		assert.Equal(t, "check-batch_42", id)
		assert.Equal(t, "check-batch_42", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces invalid IDs", func(t *testing.T) {
		t.Parallel()
		for _, invalid := range []string{"a b", "a/b", "<script>", strings.Repeat("a", 129)} {
			id, _ := serve(t, invalid)
			assert.NotEqual(t, invalid, id)
			assert.NotEmpty(t, id)
		}
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()
	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}
