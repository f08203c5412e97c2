package reverse

import "github.com/pkg/errors"

var (
	// Returned when a value handed to ReverseValue or ReverseJSON is not text.
	ErrInvalidInputType = errors.New("invalid input type: expected a text sequence")

	ErrUnknownStrategy = errors.New("unknown reversal strategy")
)
