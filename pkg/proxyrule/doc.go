// Package proxyrule provides the chainable rules that rule.Builder delegates
// to its Factory: dimensions, exists, in, not_in and unique.
//
// Each rule renders itself through String and exposes named refinements that
// the builder applies when a call follows the rule directly:
//
//	b := rule.New(rule.WithFactory(proxyrule.NewFactory())).
//	    Call("exists", "users", "id").
//	    Call("whereNull", "deleted_at")
//	fmt.Println(b) // exists:users,id,deleted_at,NULL
//
// The rules can also be built directly with the typed constructors and methods,
// e.g. NewUnique("users", "email").Ignore(42). Both forms render identically.
package proxyrule
