package ruleset

import "errors"

var (
	// ErrInvalidDocument is returned when a rule set document has an unexpected shape.
	ErrInvalidDocument = errors.New("invalid rule set document")

	// ErrFailedToParseYAML is returned when the content is not valid YAML.
	ErrFailedToParseYAML = errors.New("failed to parse rule set yaml")

	// ErrCompileField is returned when a field's calls cannot be applied.
	ErrCompileField = errors.New("failed to compile field rules")
)
