package rule

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Delimiter separates entries in the serialized form.
const Delimiter = "|"

// localRules are rendered by the builder itself.
var localRules = map[string]struct{}{
	"accepted": {}, "active_url": {}, "alpha": {}, "alpha_dash": {}, "alpha_num": {},
	"array": {}, "boolean": {}, "character": {}, "confirmed": {}, "date": {},
	"distinct": {}, "email": {}, "file": {}, "filled": {}, "image": {},
	"integer": {}, "ip": {}, "json": {}, "nullable": {}, "numeric": {},
	"optional": {}, "present": {}, "required": {}, "string": {}, "timezone": {},
	"url":   {},
	"after": {}, "before": {}, "between": {}, "date_format": {}, "different": {},
	"digits": {}, "digits_between": {}, "foreign_key": {}, "in_array": {}, "max": {},
	"mimetypes": {}, "mimes": {}, "min": {}, "raw": {}, "regex": {},
	"required_with": {}, "required_with_all": {}, "required_without": {},
	"required_without_all": {}, "same": {}, "size": {}, "unique": {}, "when": {},
	"required_if": {}, "required_unless": {},
	"bail": {}, "sometimes": {},
}

// proxyRules are produced by the Factory and stay chainable.
var proxyRules = map[string]struct{}{
	"dimensions": {}, "exists": {}, "in": {}, "not_in": {},
}

// IsBuiltinLocal reports whether identifier is a built-in local rule.
func IsBuiltinLocal(identifier string) bool {
	_, ok := localRules[identifier]
	return ok
}

// IsProxy reports whether identifier is produced by the rule factory.
func IsProxy(identifier string) bool {
	_, ok := proxyRules[identifier]
	return ok
}

// Builder accumulates rules in call order. A builder is owned by a single
// call chain and is not safe for concurrent use.
//
// The first failing call is kept: Err returns it and every later call is a
// no-op. A failing call never changes the entries.
type Builder struct {
	entries  []Entry
	registry *Registry
	factory  Factory
	log      *slog.Logger
	err      error
}

// Option configures a Builder.
type Option func(*Builder)

// WithRegistry sets the extension registry. Nil is ignored.
func WithRegistry(r *Registry) Option {
	return func(b *Builder) {
		if r != nil {
			b.registry = r
		}
	}
}

// WithFactory sets the factory producing proxy rules.
func WithFactory(f Factory) Option {
	return func(b *Builder) {
		b.factory = f
	}
}

// WithLogger sets the logger receiving dispatch decisions at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates an empty builder backed by DefaultRegistry.
func New(opts ...Option) *Builder {
	b := &Builder{
		registry: DefaultRegistry,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.With(logger.Component("rule"))
	return b
}

// Call creates a builder with no factory and applies a single call to it.
func Call(name string, args ...any) *Builder {
	return New().Call(name, args...)
}

// Call applies the rule or refinement named by name. The name may use any
// casing and an optional chaining prefix (is, allowed, has, matches).
func (b *Builder) Call(name string, args ...any) *Builder {
	if b.err != nil {
		return b
	}

	mark := len(b.entries)
	snapshot := b.snapshotLatest()
	if err := b.dispatch(name, args); err != nil {
		clear(b.entries[mark:])
		b.entries = b.entries[:mark]
		if snapshot != nil {
			b.entries[mark-1] = Entry{opaque: snapshot}
		}
		b.err = err
		b.log.Debug("call rejected", logger.Call(name), logger.Error(err))
	}
	return b
}

// Apply is Call for callers that want the error directly.
func (b *Builder) Apply(name string, args ...any) error {
	return b.Call(name, args...).Err()
}

// Err returns the first error met by the builder.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) dispatch(name string, args []any) error {
	method, identifier := Resolve(name)

	if b.isLocal(identifier) {
		b.log.Debug("apply rule", logger.Call(name), logger.Rule(identifier), logger.Kind("local"))
		return b.applyLocal(identifier, args)
	}

	if IsProxy(identifier) {
		b.log.Debug("apply rule", logger.Call(name), logger.Rule(identifier), logger.Kind("proxy"))
		return b.produce(method, args...)
	}

	if refine, ok := b.latestRefinement(method); ok {
		b.log.Debug("apply rule", logger.Call(name), logger.Rule(identifier), logger.Kind("chain"))
		if err := refine(args...); err != nil {
			return fmt.Errorf("%w: %s(): %w", ErrInvalidArgument, name, err)
		}
		return nil
	}

	return fmt.Errorf("%w %s(): if it is to be applied to a proxy rule, ensure it is called directly after the original proxy rule",
		ErrUnresolvableCall, name)
}

func (b *Builder) isLocal(identifier string) bool {
	return IsBuiltinLocal(identifier) || b.registry.Has(identifier)
}

func (b *Builder) applyLocal(identifier string, args []any) error {
	if override, ok := overrides[identifier]; ok {
		return override(b, args)
	}
	b.push(identifier + argumentSuffix(args))
	return nil
}

// produce asks the factory for an opaque rule and appends it.
func (b *Builder) produce(method string, args ...any) error {
	if b.factory == nil {
		return fmt.Errorf("%w %s(): %w", ErrUnresolvableCall, method, ErrNoFactory)
	}
	r, err := b.factory.Make(method, args...)
	if err != nil {
		return fmt.Errorf("%w: %s(): %w", ErrInvalidArgument, method, err)
	}
	b.entries = append(b.entries, Entry{opaque: r})
	return nil
}

func (b *Builder) latestRefinement(method string) (Refinement, bool) {
	if len(b.entries) == 0 {
		return nil, false
	}
	latest := b.entries[len(b.entries)-1].opaque
	if latest == nil {
		return nil, false
	}
	return latest.Refinement(method)
}

// snapshotLatest copies the latest opaque rule. A call may refine it several
// times (through when) before failing.
func (b *Builder) snapshotLatest() Opaque {
	if len(b.entries) == 0 {
		return nil
	}
	latest := b.entries[len(b.entries)-1].opaque
	if latest == nil {
		return nil
	}
	return latest.Clone()
}

func (b *Builder) push(rule string) {
	b.entries = append(b.entries, Entry{text: rule})
}

// Get returns a snapshot of the entries in call order.
func (b *Builder) Get() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Strings renders every entry in call order.
func (b *Builder) Strings() []string {
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.String()
	}
	return out
}

// Len returns the number of entries.
func (b *Builder) Len() int {
	return len(b.entries)
}

// String renders the pipe-delimited rule string.
func (b *Builder) String() string {
	return strings.Join(b.Strings(), Delimiter)
}

// MarshalJSON encodes the rules as an array of strings.
func (b *Builder) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Strings())
}

// MarshalYAML encodes the rules as a sequence of strings.
func (b *Builder) MarshalYAML() (any, error) {
	return b.Strings(), nil
}

// Required appends the required rule.
func (b *Builder) Required() *Builder { return b.Call("required") }

// Nullable appends the nullable rule.
func (b *Builder) Nullable() *Builder { return b.Call("nullable") }

// Sometimes appends the sometimes flag.
func (b *Builder) Sometimes() *Builder { return b.Call("sometimes") }

// Bail appends the bail flag.
func (b *Builder) Bail() *Builder { return b.Call("bail") }

// IsString appends string with optional min and max lengths.
func (b *Builder) IsString(bounds ...any) *Builder { return b.Call("isString", bounds...) }

// Integer appends integer with optional min and max values.
func (b *Builder) Integer(bounds ...any) *Builder { return b.Call("integer", bounds...) }

// Numeric appends numeric with optional min and max values.
func (b *Builder) Numeric(bounds ...any) *Builder { return b.Call("numeric", bounds...) }

// Email appends email with an optional max length.
func (b *Builder) Email(max ...any) *Builder { return b.Call("email", max...) }

// Min appends min:v.
func (b *Builder) Min(v any) *Builder { return b.Call("min", v) }

// Max appends max:v.
func (b *Builder) Max(v any) *Builder { return b.Call("max", v) }

// Between appends between:min,max.
func (b *Builder) Between(min, max any) *Builder { return b.Call("between", min, max) }

// In appends the proxied in rule.
func (b *Builder) In(values ...any) *Builder { return b.Call("in", values...) }

// NotIn appends the proxied not_in rule.
func (b *Builder) NotIn(values ...any) *Builder { return b.Call("notIn", values...) }

// Exists appends the proxied exists rule.
func (b *Builder) Exists(table any, column ...any) *Builder {
	return b.Call("exists", append([]any{table}, column...)...)
}

// Unique appends the proxied unique rule. table may be a name, a Model or a
// reflect.Type of a Model.
func (b *Builder) Unique(table any, column ...any) *Builder {
	return b.Call("unique", append([]any{table}, column...)...)
}

// Ignore refines the latest unique rule.
func (b *Builder) Ignore(id any, idColumn ...any) *Builder {
	return b.Call("ignore", append([]any{id}, idColumn...)...)
}

// When runs fn against the builder if condition holds. condition is a bool or
// a func() bool.
func (b *Builder) When(condition any, fn func(*Builder)) *Builder {
	return b.Call("when", condition, fn)
}

// Raw appends pre-rendered rule strings verbatim.
func (b *Builder) Raw(rules ...string) *Builder {
	args := make([]any, len(rules))
	for i, r := range rules {
		args[i] = r
	}
	return b.Call("raw", args...)
}
