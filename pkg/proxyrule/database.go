package proxyrule

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

type where struct {
	column string
	value  string
}

// Constraint is a query constraint that is kept on the rule but does not
// appear in its string form (whereIn, whereNotIn).
type Constraint struct {
	Column string
	Values []string
	Negate bool
}

// database holds the parts shared by the exists and unique rules.
type database struct {
	table  string
	column string
	wheres []where
	using  []Constraint
}

func (d *database) where(column string, value any) {
	switch {
	case value == nil:
		d.whereNull(column)
	case isList(value):
		d.whereIn(column, value)
	default:
		d.wheres = append(d.wheres, where{column: column, value: rule.FormatArg(value)})
	}
}

func (d *database) whereNot(column string, value any) {
	if isList(value) {
		d.whereNotIn(column, value)
		return
	}
	d.where(column, "!"+rule.FormatArg(value))
}

func (d *database) whereNull(column string) {
	d.where(column, "NULL")
}

func (d *database) whereNotNull(column string) {
	d.where(column, "NOT_NULL")
}

func (d *database) whereIn(column string, values any) {
	d.using = append(d.using, Constraint{Column: column, Values: formatAll(values)})
}

func (d *database) whereNotIn(column string, values any) {
	d.using = append(d.using, Constraint{Column: column, Values: formatAll(values), Negate: true})
}

func (d *database) clone() database {
	using := make([]Constraint, len(d.using))
	for i, c := range d.using {
		using[i] = Constraint{Column: c.Column, Values: append([]string(nil), c.Values...), Negate: c.Negate}
	}
	return database{
		table:  d.table,
		column: d.column,
		wheres: append([]where(nil), d.wheres...),
		using:  using,
	}
}

// Constraints returns the whereIn and whereNotIn constraints.
func (d *database) Constraints() []Constraint {
	return append([]Constraint(nil), d.using...)
}

func (d *database) formatWheres() string {
	parts := make([]string, len(d.wheres))
	for i, w := range d.wheres {
		parts[i] = w.column + "," + w.value
	}
	return strings.Join(parts, ",")
}

// refinements returns the where* refinements bound to d.
func (d *database) refinements() refinements {
	return refinements{
		"where": func(args ...any) error {
			column, value, err := columnAndValue("where", args, false)
			if err != nil {
				return err
			}
			d.where(column, value)
			return nil
		},
		"wherenot": func(args ...any) error {
			column, value, err := columnAndValue("whereNot", args, true)
			if err != nil {
				return err
			}
			d.whereNot(column, value)
			return nil
		},
		"wherenull": func(args ...any) error {
			column, _, err := columnAndValue("whereNull", args[:min(len(args), 1)], false)
			if err != nil {
				return err
			}
			d.whereNull(column)
			return nil
		},
		"wherenotnull": func(args ...any) error {
			column, _, err := columnAndValue("whereNotNull", args[:min(len(args), 1)], false)
			if err != nil {
				return err
			}
			d.whereNotNull(column)
			return nil
		},
		"wherein": func(args ...any) error {
			column, values, err := columnAndValue("whereIn", args, true)
			if err != nil {
				return err
			}
			d.whereIn(column, values)
			return nil
		},
		"wherenotin": func(args ...any) error {
			column, values, err := columnAndValue("whereNotIn", args, true)
			if err != nil {
				return err
			}
			d.whereNotIn(column, values)
			return nil
		},
	}
}

// columnAndValue reads (column[, value]). Extra arguments are grouped into the
// value so whereIn("status", "a", "b") works like whereIn("status", []string{"a", "b"}).
func columnAndValue(name string, args []any, valueRequired bool) (string, any, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: %s requires a column", ErrInvalidArgument, name)
	}
	column, ok := args[0].(string)
	if !ok || column == "" {
		return "", nil, fmt.Errorf("%w: %s column must be a non-empty string, got %T", ErrInvalidArgument, name, args[0])
	}
	switch len(args) {
	case 1:
		if valueRequired {
			return "", nil, fmt.Errorf("%w: %s requires a value", ErrInvalidArgument, name)
		}
		return column, nil, nil
	case 2:
		return column, args[1], nil
	}
	return column, args[1:], nil
}

func isList(v any) bool {
	switch v.(type) {
	case string, []byte, fmt.Stringer:
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func formatAll(values any) []string {
	flat := rule.Flatten(values)
	out := make([]string, len(flat))
	for i, v := range flat {
		out[i] = rule.FormatArg(v)
	}
	return out
}
