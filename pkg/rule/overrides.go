package rule

import "fmt"

// Override renders a local rule in place of the default "identifier:args" form.
type Override func(b *Builder, args []any) error

var overrides map[string]Override

func init() {
	overrides = map[string]Override{
		"active_url":  withMax("active_url"),
		"alpha":       withMinMax("alpha"),
		"alpha_dash":  withMinMax("alpha_dash"),
		"alpha_num":   withMinMax("alpha_num"),
		"array":       withMinMax("array"),
		"character":   characterRule,
		"email":       withMax("email"),
		"file":        withSize("file"),
		"foreign_key": foreignKeyRule,
		"image":       withSize("image"),
		"integer":     withMinMax("integer"),
		"json":        withMax("json"),
		"numeric":     withMinMax("numeric"),
		"optional":    optionalRule,
		"raw":         rawRule,
		"string":      withMinMax("string"),
		"unique":      uniqueRule,
		"url":         withMax("url"),
		"when":        whenRule,
	}
}

// HasOverride reports whether identifier has a custom renderer.
func HasOverride(identifier string) bool {
	_, ok := overrides[identifier]
	return ok
}

func withMax(base string) Override {
	return func(b *Builder, args []any) error {
		b.push(base)
		return b.setBound("max", nth(args, 0))
	}
}

func withSize(base string) Override {
	return func(b *Builder, args []any) error {
		b.push(base)
		return b.setBound("size", nth(args, 0))
	}
}

func withMinMax(base string) Override {
	return func(b *Builder, args []any) error {
		b.push(base)
		if err := b.setBound("min", nth(args, 0)); err != nil {
			return err
		}
		return b.setBound("max", nth(args, 1))
	}
}

// setBound applies rule with v only when v was supplied.
func (b *Builder) setBound(rule string, v any) error {
	if !present(v) {
		return nil
	}
	return b.dispatch(rule, []any{v})
}

func characterRule(b *Builder, _ []any) error {
	return b.dispatch("alpha", []any{1, 1})
}

func optionalRule(b *Builder, _ []any) error {
	return b.dispatch("nullable", nil)
}

func rawRule(b *Builder, args []any) error {
	for _, v := range Flatten(args...) {
		if s := FormatArg(v); s != "" {
			b.push(s)
		}
	}
	return nil
}

// entityArgs flattens grouped arguments but keeps Model values whole.
func entityArgs(args []any) []any {
	out := make([]any, 0, len(args))
	for _, arg := range args {
		if _, ok := arg.(Model); ok {
			out = append(out, arg)
			continue
		}
		out = appendFlat(out, arg)
	}
	return out
}

func foreignKeyRule(b *Builder, args []any) error {
	args = entityArgs(args)
	if len(args) == 0 {
		return fmt.Errorf("%w: foreign_key requires an entity", ErrInvalidArgument)
	}
	table, key, err := ResolveTable(args[0])
	if err != nil {
		return err
	}
	return b.dispatch("exists", []any{table, key})
}

func uniqueRule(b *Builder, args []any) error {
	args = entityArgs(args)
	if len(args) == 0 {
		return fmt.Errorf("%w: unique requires a table", ErrInvalidArgument)
	}
	table, _, err := ResolveTable(args[0])
	if err != nil {
		return err
	}
	column := any("NULL")
	if len(args) > 1 && present(args[1]) {
		column = args[1]
	}
	return b.produce("unique", table, column)
}

func whenRule(b *Builder, args []any) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: when requires a condition and a callback", ErrInvalidArgument)
	}

	var ok bool
	switch cond := args[0].(type) {
	case bool:
		ok = cond
	case func() bool:
		ok = cond()
	default:
		return fmt.Errorf("%w: when condition must be bool or func() bool, got %T", ErrInvalidArgument, args[0])
	}

	fn, isFunc := args[1].(func(*Builder))
	if !isFunc || fn == nil {
		return fmt.Errorf("%w: when callback must be func(*Builder), got %T", ErrInvalidArgument, args[1])
	}

	if ok {
		fn(b)
		return b.err
	}
	return nil
}
