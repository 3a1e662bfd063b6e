// Package rule builds validation rule specifications through a fluent,
// name-dispatched builder and renders them in the pipe-delimited form
// consumed by a rule-interpretation engine. The package never validates data.
//
// # Dispatch
//
// Every call goes through Builder.Call(name, args...). The name is resolved in
// two steps: a leading chaining prefix (is, allowed, has, matches) is removed,
// then the remaining method name is converted to a snake_case identifier, so
// "isString", "string" and "String" all resolve to "string". The identifier is
// then classified, in this order:
//
//  1. local: a built-in rule or one registered in the Registry. The rule is
//     rendered by the builder, through a custom Override when one exists.
//  2. proxy: dimensions, exists, in and not_in are produced by the Factory as
//     opaque rules that render themselves.
//  3. chain: the latest entry is an opaque rule exposing a refinement of that
//     method name, e.g. ignore on a unique rule. The entry is mutated in place.
//
// Anything else fails with ErrUnresolvableCall. Errors are sticky and a failing
// call leaves the entries untouched.
//
// # Usage
//
//	b := rule.New(rule.WithFactory(proxyrule.NewFactory())).
//	    Required().
//	    IsString(1, 255).
//	    Call("unique", "users", "email").
//	    Call("ignore", 42)
//	if err := b.Err(); err != nil {
//	    return err
//	}
//	fmt.Println(b) // required|string|min:1|max:255|unique:users,email,"42",id
//
// # Arguments
//
// Arguments may be spread or grouped in slices; Flatten removes every wrapper,
// so Call("between", 1, 10) and Call("between", []int{1, 10}) are the same.
//
// # Extensions
//
// Extend registers additional local rules in DefaultRegistry for every
// builder in the process. Tests and embedders can isolate registrations with
// NewRegistry and WithRegistry.
package rule
