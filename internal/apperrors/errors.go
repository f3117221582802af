package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed a domain validation rule.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrArgument indicates a required input was absent or unusable (e.g. a nil stream).
var ErrArgument = errors.New("invalid argument")

// ErrFormat indicates a field's characters cannot be interpreted as the declared type.
var ErrFormat = errors.New("format error")

// ErrLength indicates a CNAB record does not have the expected length.
var ErrLength = errors.New("length error")
