package proxyrule

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

// keyedModel is an entity that can be ignored by its own key.
type keyedModel interface {
	rule.Keyed
	KeyName() string
}

// Unique requires the value to be unique in a table column, optionally
// ignoring one row.
type Unique struct {
	database
	ignore   string
	idColumn string
	refine   refinements
}

// NewUnique creates a unique rule. An empty column renders as NULL.
func NewUnique(table, column string) *Unique {
	if column == "" {
		column = "NULL"
	}
	return newUnique(database{table: table, column: column}, "", rule.DefaultKeyName)
}

func newUnique(db database, ignore, idColumn string) *Unique {
	u := &Unique{database: db, ignore: ignore, idColumn: idColumn}
	u.refine = u.database.refinements()
	u.refine["ignore"] = u.ignoreArgs
	return u
}

// Ignore skips the row whose idColumn equals id. id may be an entity with
// Key() and KeyName(), in which case idColumn defaults to its key name.
func (u *Unique) Ignore(id any, idColumn ...string) *Unique {
	column := ""
	if len(idColumn) > 0 {
		column = idColumn[0]
	}
	u.setIgnore(id, column)
	return u
}

func (u *Unique) setIgnore(id any, idColumn string) {
	if m, ok := id.(keyedModel); ok {
		id = m.Key()
		if idColumn == "" {
			idColumn = m.KeyName()
		}
	}
	if idColumn == "" {
		idColumn = rule.DefaultKeyName
	}
	u.ignore = rule.FormatArg(id)
	u.idColumn = idColumn
}

func (u *Unique) ignoreArgs(args ...any) error {
	switch len(args) {
	case 1:
		u.setIgnore(args[0], "")
		return nil
	case 2:
		column, ok := args[1].(string)
		if !ok && args[1] != nil {
			return fmt.Errorf("%w: ignore id column must be a string, got %T", ErrInvalidArgument, args[1])
		}
		u.setIgnore(args[0], column)
		return nil
	}
	return fmt.Errorf("%w: ignore expects an id and an optional id column, got %d arguments", ErrInvalidArgument, len(args))
}

func (u *Unique) Where(column string, value any) *Unique    { u.where(column, value); return u }
func (u *Unique) WhereNot(column string, value any) *Unique { u.whereNot(column, value); return u }
func (u *Unique) WhereNull(column string) *Unique           { u.whereNull(column); return u }
func (u *Unique) WhereNotNull(column string) *Unique        { u.whereNotNull(column); return u }
func (u *Unique) WhereIn(column string, values any) *Unique { u.whereIn(column, values); return u }
func (u *Unique) WhereNotIn(column string, values any) *Unique {
	u.whereNotIn(column, values)
	return u
}

// Refinement implements rule.Opaque.
func (u *Unique) Refinement(name string) (rule.Refinement, bool) {
	return u.refine.lookup(name)
}

// Clone implements rule.Opaque.
func (u *Unique) Clone() rule.Opaque {
	return newUnique(u.database.clone(), u.ignore, u.idColumn)
}

func (u *Unique) String() string {
	ignore := "NULL"
	if u.ignore != "" {
		ignore = `"` + u.ignore + `"`
	}
	return strings.TrimRight(
		fmt.Sprintf("unique:%s,%s,%s,%s,%s", u.table, u.column, ignore, u.idColumn, u.formatWheres()),
		",",
	)
}
