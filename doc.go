// Package rulekit builds validation rule specifications with a fluent,
// name-dispatched builder and renders them in the pipe-delimited form
// understood by a rule-interpretation engine. It never validates data itself.
//
// This package wires the core builder from pkg/rule to the default proxy rule
// factory from pkg/proxyrule:
//
//	r := rulekit.Call("required").
//	    IsString(1, 255).
//	    Unique("users", "email").
//	    Ignore(userID)
//	if err := r.Err(); err != nil {
//	    return err
//	}
//	rules := r.String() // required|string|min:1|max:255|unique:users,email,"7",id
//
// Rule names are not fixed: Call accepts any name. Extend registers extra
// rules for the whole process:
//
//	rulekit.Extend("slug", "phone")
//	rulekit.Call("required").Call("slug").String() // required|slug
//
// Packages:
//   - pkg/rule       builder, dispatch, overrides, extension registry
//   - pkg/proxyrule  chainable dimensions, exists, in, not_in and unique rules
//   - pkg/ruleset    YAML rule set documents
//   - pkg/logger     slog factory and attribute helpers
//   - pkg/config     environment configuration loader
//
// The rulekit command (cmd/rulekit) compiles YAML rule sets from the shell.
package rulekit
