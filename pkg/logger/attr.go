package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Call records the method name a builder was invoked with under the key "call".
func Call(name string) slog.Attr {
	return slog.String("call", name)
}

// Rule records a canonical rule identifier under the key "rule".
func Rule(identifier string) slog.Attr {
	return slog.String("rule", identifier)
}

// Kind records how a call was classified (local, proxy, chain) under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Field records a rule set field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
