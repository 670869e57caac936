package parse

import "errors"

// The closed set of parse failures. Every error returned by Parse
// matches exactly one of these under errors.Is.
var (
	// ErrExpectValue: input ended where a value token was required.
	ErrExpectValue = errors.New("expect value")
	// ErrInvalidValue: a token is present but grammatically malformed.
	ErrInvalidValue = errors.New("invalid value")
	// ErrRootNotSingular: a valid value parsed but non-whitespace
	// content remains.
	ErrRootNotSingular = errors.New("root not singular")
	// ErrNumberTooBig: a numeric lexeme exceeds the representable
	// int64 or float64 range.
	ErrNumberTooBig = errors.New("number too big")
	// ErrTooDeep: container nesting exceeds the configured maximum.
	ErrTooDeep = errors.New("exceeds max nesting depth")
)
