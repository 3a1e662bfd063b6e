package rule

import "errors"

var (
	// ErrUnresolvableCall is returned when a call is neither a local rule, a
	// proxy rule nor a refinement of the latest proxy rule.
	ErrUnresolvableCall = errors.New("unable to handle or proxy the method")

	// ErrInvalidArgument is returned when a rule receives arguments it cannot use.
	ErrInvalidArgument = errors.New("invalid rule argument")

	// ErrNoFactory is returned when a proxy rule is requested from a builder
	// that has no rule factory.
	ErrNoFactory = errors.New("no rule factory configured")

	// ErrUnresolvableEntity is returned when a table name cannot be derived
	// from the given entity.
	ErrUnresolvableEntity = errors.New("unable to resolve table for entity")
)
