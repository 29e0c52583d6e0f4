package manifest

import "errors"

// Sentinel errors for manifest operations.
var (
	// ErrEmpty is returned when the manifest contains no data.
	ErrEmpty = errors.New("manifest is empty")

	// ErrDecode is returned when the manifest fails to decode.
	ErrDecode = errors.New("manifest decode error")

	// ErrInvalid is returned when a decoded manifest fails validation.
	ErrInvalid = errors.New("manifest is invalid")

	// ErrUnsupported is returned for file extensions other than
	// .yaml, .yml, and .toml.
	ErrUnsupported = errors.New("unsupported manifest format")
)
