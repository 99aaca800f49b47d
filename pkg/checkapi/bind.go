package checkapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// bindJSON decodes a strict JSON body into v.
func bindJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf("%w: expected application/json", ErrUnsupportedMediaType)
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if decoder.More() {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}
	return nil
}
