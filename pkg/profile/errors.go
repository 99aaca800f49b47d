package profile

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse profiles YAML")
	ErrFailedToReadFile  = errors.New("failed to read profiles file")
	ErrNoProfiles        = errors.New("no profiles defined")
	ErrInvalidProfile    = errors.New("invalid profile")
	ErrDuplicateProfile  = errors.New("duplicate profile name")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrParsingCancelled  = errors.New("profile parsing cancelled")
)
