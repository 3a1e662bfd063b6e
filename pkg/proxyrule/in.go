package proxyrule

import (
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

// In requires the value to be one of a fixed list.
type In struct {
	name   string
	values []string
}

// NewIn creates an in rule. Values may be spread or grouped in slices.
func NewIn(values ...any) *In {
	return &In{name: "in", values: formatAll(values)}
}

// NewNotIn creates a not_in rule.
func NewNotIn(values ...any) *In {
	return &In{name: "not_in", values: formatAll(values)}
}

// Values returns the rendered values.
func (r *In) Values() []string {
	return append([]string(nil), r.values...)
}

// Refinement implements rule.Opaque. In rules have no refinements.
func (r *In) Refinement(string) (rule.Refinement, bool) {
	return nil, false
}

// Clone implements rule.Opaque.
func (r *In) Clone() rule.Opaque {
	return &In{name: r.name, values: r.Values()}
}

func (r *In) String() string {
	return r.name + ":" + strings.Join(r.values, ",")
}
