package util

import "errors"

var (
	ErrContextValueNotFound = errors.New("context value not found")
)
