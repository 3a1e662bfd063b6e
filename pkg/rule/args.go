package rule

import (
	"fmt"
	"reflect"
	"strings"
)

// Flatten returns the arguments as a single ordered list with every nested
// slice or array unwrapped depth-first. Strings, byte slices, byte arrays,
// maps and values implementing fmt.Stringer are scalars. Flattening an
// already flat list returns an equal list.
func Flatten(args ...any) []any {
	out := make([]any, 0, len(args))
	for _, arg := range args {
		out = appendFlat(out, arg)
	}
	return out
}

func appendFlat(out []any, arg any) []any {
	switch v := arg.(type) {
	case nil, string, []byte, fmt.Stringer:
		return append(out, arg)
	case []any:
		for _, item := range v {
			out = appendFlat(out, item)
		}
		return out
	}

	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return append(out, arg)
		}
		for i := range rv.Len() {
			out = appendFlat(out, rv.Index(i).Interface())
		}
		return out
	}
	return append(out, arg)
}

// FormatArg renders a single argument the way the rule engine expects:
// nil and false render empty, true renders "1".
func FormatArg(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return ""
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// JoinArgs flattens the arguments and joins them with commas.
func JoinArgs(args ...any) string {
	flat := Flatten(args...)
	parts := make([]string, len(flat))
	for i, v := range flat {
		parts[i] = FormatArg(v)
	}
	return strings.Join(parts, ",")
}

// argumentSuffix renders ":a,b,c" for a non-empty flattened list.
func argumentSuffix(args []any) string {
	if len(Flatten(args...)) == 0 {
		return ""
	}
	return ":" + JoinArgs(args...)
}

// present reports whether an optional argument was supplied.
// Zero numbers count as supplied.
func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	}
	return true
}

// nth returns the i-th flattened argument or nil.
func nth(args []any, i int) any {
	flat := Flatten(args...)
	if i < len(flat) {
		return flat[i]
	}
	return nil
}
