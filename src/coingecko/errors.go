package coingecko

import "errors"

var (
	// ErrCoinNotFound reports a syntactically valid identifier the API
	// does not recognize.
	ErrCoinNotFound = errors.New("coin not found")

	// ErrUnexpectedShape reports a payload missing a field the caller
	// requires.
	ErrUnexpectedShape = errors.New("unexpected response shape")
)
