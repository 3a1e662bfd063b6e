package proxyrule

import "errors"

var (
	// ErrUnknownRule is returned by the factory for names it cannot produce.
	ErrUnknownRule = errors.New("unknown proxy rule")

	// ErrInvalidArgument is returned when a rule or refinement gets unusable arguments.
	ErrInvalidArgument = errors.New("invalid proxy rule argument")
)
