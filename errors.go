package toolspec

import "errors"

// Sentinel errors for toolspec. Use errors.Is to check.
var (
	// ErrNotStruct is returned by CallableFor when the argument type is not a
	// struct (or a pointer to one) and therefore carries no named parameters.
	ErrNotStruct = errors.New("argument type is not a struct")
)
