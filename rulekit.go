package rulekit

import (
	"github.com/dmitrymomot/rulekit/pkg/proxyrule"
	"github.com/dmitrymomot/rulekit/pkg/rule"
)

// New creates a builder backed by rule.DefaultRegistry and the proxyrule
// factory. Options are applied after the defaults and may replace them.
func New(opts ...rule.Option) *rule.Builder {
	defaults := []rule.Option{rule.WithFactory(proxyrule.NewFactory())}
	return rule.New(append(defaults, opts...)...)
}

// Call creates a builder and applies a single call to it.
func Call(name string, args ...any) *rule.Builder {
	return New().Call(name, args...)
}

// Extend registers extension rules for every builder in the process.
func Extend(rules ...any) {
	rule.Extend(rules...)
}
