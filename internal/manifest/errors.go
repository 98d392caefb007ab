package manifest

import "errors"

var (
	ErrVersionMissing = errors.New("manifest version missing")
	ErrVersionInvalid = errors.New("manifest version invalid")
)
