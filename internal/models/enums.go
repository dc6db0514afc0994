package models

import "errors"

// ErrInvalidEnumValue is returned by the ParseX helpers when a string
// does not match any member of the closed set. Matching is exact and
// case sensitive.
var ErrInvalidEnumValue = errors.New("invalid enum value")
