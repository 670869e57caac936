package ir

import "errors"

var (
	ErrNotObject       = errors.New("not an object")
	ErrNotArray        = errors.New("not an array")
	ErrKeyNotFound     = errors.New("key not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)
