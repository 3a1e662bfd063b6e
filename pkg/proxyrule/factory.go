package proxyrule

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

// Factory produces the chainable rules dimensions, exists, in, notIn and
// unique. Method names are matched case-insensitively.
type Factory struct{}

// NewFactory returns the default rule factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Make implements rule.Factory.
func (f *Factory) Make(method string, args ...any) (rule.Opaque, error) {
	switch strings.ToLower(method) {
	case "dimensions":
		return dimensionsFromArgs(args)
	case "exists":
		table, column, err := tableArgs(method, args)
		if err != nil {
			return nil, err
		}
		return NewExists(table, column), nil
	case "unique":
		table, column, err := tableArgs(method, args)
		if err != nil {
			return nil, err
		}
		return NewUnique(table, column), nil
	case "in":
		return NewIn(args...), nil
	case "notin":
		return NewNotIn(args...), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownRule, method)
}

// tableArgs reads (table, column = "NULL").
func tableArgs(method string, args []any) (table, column string, err error) {
	if len(args) == 0 || rule.FormatArg(args[0]) == "" {
		return "", "", fmt.Errorf("%w: %s requires a table", ErrInvalidArgument, method)
	}
	column = "NULL"
	if len(args) > 1 {
		if c := rule.FormatArg(args[1]); c != "" {
			column = c
		}
	}
	return rule.FormatArg(args[0]), column, nil
}

func dimensionsFromArgs(args []any) (*Dimensions, error) {
	switch len(args) {
	case 0:
		return NewDimensions(nil), nil
	case 1:
		switch c := args[0].(type) {
		case map[string]any:
			return NewDimensions(c), nil
		case map[string]int:
			m := make(map[string]any, len(c))
			for k, v := range c {
				m[k] = v
			}
			return NewDimensions(m), nil
		}
	}
	return nil, fmt.Errorf("%w: dimensions expects a single constraints map", ErrInvalidArgument)
}

// refinements maps lowercased method names to bound refinements.
type refinements map[string]rule.Refinement

func (r refinements) lookup(name string) (rule.Refinement, bool) {
	fn, ok := r[strings.ToLower(name)]
	return fn, ok
}
