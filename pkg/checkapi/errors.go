package checkapi

import "errors"

var (
	ErrInvalidJSON          = errors.New("invalid JSON body")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrNotFound             = errors.New("not found")
)
