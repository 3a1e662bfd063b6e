package ruleset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/proxyrule"
	"github.com/dmitrymomot/rulekit/pkg/rule"
)

// Result is the serialized rule string of one field.
type Result struct {
	Field string   `json:"field" yaml:"field"`
	Rules string   `json:"rules" yaml:"rules"`
	List  []string `json:"list" yaml:"list"`
}

// Compiler turns documents into rule strings.
type Compiler struct {
	registry *rule.Registry
	factory  rule.Factory
	log      *slog.Logger
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithRegistry sets the registry document extensions are added to.
func WithRegistry(r *rule.Registry) Option {
	return func(c *Compiler) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithFactory replaces the proxy rule factory.
func WithFactory(f rule.Factory) Option {
	return func(c *Compiler) {
		if f != nil {
			c.factory = f
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Compiler) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCompiler creates a compiler using rule.DefaultRegistry and the proxyrule factory.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		registry: rule.DefaultRegistry,
		factory:  proxyrule.NewFactory(),
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile registers the document's extensions and builds every field in order.
func (c *Compiler) Compile(ctx context.Context, doc *Document) ([]Result, error) {
	if len(doc.Extensions) > 0 {
		c.registry.Extend(doc.Extensions)
		c.log.DebugContext(ctx, "extensions registered", logger.Count(len(doc.Extensions)))
	}

	results := make([]Result, 0, len(doc.Fields))
	for _, field := range doc.Fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		b := rule.New(
			rule.WithRegistry(c.registry),
			rule.WithFactory(c.factory),
			rule.WithLogger(c.log),
		)
		for _, call := range field.Calls {
			b.Call(call.Name, call.Args...)
		}
		if err := b.Err(); err != nil {
			c.log.ErrorContext(ctx, "field rejected", logger.Field(field.Name), logger.Error(err))
			return nil, fmt.Errorf("%w %q: %w", ErrCompileField, field.Name, err)
		}

		c.log.DebugContext(ctx, "field compiled", logger.Field(field.Name), logger.Count(b.Len()))
		results = append(results, Result{Field: field.Name, Rules: b.String(), List: b.Strings()})
	}
	return results, nil
}

// CompileBytes parses and compiles a document in one step.
func (c *Compiler) CompileBytes(ctx context.Context, content []byte) ([]Result, error) {
	doc, err := Parse(ctx, content)
	if err != nil {
		return nil, err
	}
	return c.Compile(ctx, doc)
}
