package proxyrule

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

// Exists requires the value to exist in a table column.
type Exists struct {
	database
	refine refinements
}

// NewExists creates an exists rule. An empty column renders as NULL.
func NewExists(table, column string) *Exists {
	if column == "" {
		column = "NULL"
	}
	return newExists(database{table: table, column: column})
}

func newExists(db database) *Exists {
	e := &Exists{database: db}
	e.refine = e.database.refinements()
	return e
}

func (e *Exists) Where(column string, value any) *Exists    { e.where(column, value); return e }
func (e *Exists) WhereNot(column string, value any) *Exists { e.whereNot(column, value); return e }
func (e *Exists) WhereNull(column string) *Exists           { e.whereNull(column); return e }
func (e *Exists) WhereNotNull(column string) *Exists        { e.whereNotNull(column); return e }
func (e *Exists) WhereIn(column string, values any) *Exists { e.whereIn(column, values); return e }
func (e *Exists) WhereNotIn(column string, values any) *Exists {
	e.whereNotIn(column, values)
	return e
}

// Refinement implements rule.Opaque.
func (e *Exists) Refinement(name string) (rule.Refinement, bool) {
	return e.refine.lookup(name)
}

// Clone implements rule.Opaque.
func (e *Exists) Clone() rule.Opaque {
	return newExists(e.database.clone())
}

func (e *Exists) String() string {
	return strings.TrimRight(fmt.Sprintf("exists:%s,%s,%s", e.table, e.column, e.formatWheres()), ",")
}
