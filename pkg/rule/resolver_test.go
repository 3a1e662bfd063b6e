package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

func TestStripPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "is prefix", input: "isString", expected: "string"},
		{name: "allowed prefix", input: "allowedMimes", expected: "mimes"},
		{name: "has prefix", input: "hasSize", expected: "size"},
		{name: "matches prefix", input: "matchesRegex", expected: "regex"},
		{name: "no prefix", input: "required", expected: "required"},
		{name: "prefix is case sensitive", input: "IsString", expected: "IsString"},
		{name: "prefix only", input: "is", expected: ""},
		{name: "no word boundary check", input: "hashed", expected: "ed"},
		{name: "trims the prefix letter set", input: "isset", expected: "et"},
		{name: "trims repeated prefix letters", input: "hasHash", expected: "hash"},
		{name: "stops at a letter outside the set", input: "matchesTest", expected: "test"},
		{name: "first match wins", input: "isallowedThing", expected: "allowedThing"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, rule.StripPrefix(tt.input))
		})
	}
}

func TestSnake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already lowercase", input: "required", expected: "required"},
		{name: "camel case", input: "activeUrl", expected: "active_url"},
		{name: "pascal case", input: "RequiredWithAll", expected: "required_with_all"},
		{name: "snake case passes through", input: "not_in", expected: "not_in"},
		{name: "acronym splits per letter", input: "ActiveURL", expected: "active_u_r_l"},
		{name: "words with spaces", input: "date format", expected: "date_format"},
		{name: "digits", input: "base64Encoded", expected: "base64_encoded"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, rule.Snake(tt.input))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	calls := []string{"string", "isString", "String"}
	for _, call := range calls {
		_, identifier := rule.Resolve(call)
		assert.Equal(t, "string", identifier, call)
	}

	method, identifier := rule.Resolve("isRequiredIf")
	assert.Equal(t, "requiredIf", method)
	assert.Equal(t, "required_if", identifier)
}
