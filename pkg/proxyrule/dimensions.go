package proxyrule

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

// Dimensions constrains image dimensions. Constraints keep the order they were
// first set in; the initial map is applied in key order.
type Dimensions struct {
	keys   []string
	values map[string]string
	refine refinements
}

// NewDimensions creates a dimensions rule from a constraints map such as
// {"min_width": 100, "ratio": "3/2"}.
func NewDimensions(constraints map[string]any) *Dimensions {
	d := newDimensions(nil, make(map[string]string, len(constraints)))
	keys := make([]string, 0, len(constraints))
	for k := range constraints {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		d.set(k, constraints[k])
	}
	return d
}

func newDimensions(keys []string, values map[string]string) *Dimensions {
	d := &Dimensions{keys: keys, values: values}
	d.refine = refinements{
		"width":     d.constraint("width"),
		"height":    d.constraint("height"),
		"minwidth":  d.constraint("min_width"),
		"minheight": d.constraint("min_height"),
		"maxwidth":  d.constraint("max_width"),
		"maxheight": d.constraint("max_height"),
		"ratio":     d.constraint("ratio"),
	}
	return d
}

func (d *Dimensions) set(key string, value any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = rule.FormatArg(value)
}

func (d *Dimensions) constraint(key string) rule.Refinement {
	return func(args ...any) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: %s expects one value, got %d", ErrInvalidArgument, key, len(args))
		}
		d.set(key, args[0])
		return nil
	}
}

func (d *Dimensions) Width(v int) *Dimensions     { d.set("width", v); return d }
func (d *Dimensions) Height(v int) *Dimensions    { d.set("height", v); return d }
func (d *Dimensions) MinWidth(v int) *Dimensions  { d.set("min_width", v); return d }
func (d *Dimensions) MinHeight(v int) *Dimensions { d.set("min_height", v); return d }
func (d *Dimensions) MaxWidth(v int) *Dimensions  { d.set("max_width", v); return d }
func (d *Dimensions) MaxHeight(v int) *Dimensions { d.set("max_height", v); return d }

// Ratio sets the width/height ratio, e.g. 1.5 or "3/2".
func (d *Dimensions) Ratio(v any) *Dimensions { d.set("ratio", v); return d }

// Refinement implements rule.Opaque.
func (d *Dimensions) Refinement(name string) (rule.Refinement, bool) {
	return d.refine.lookup(name)
}

// Clone implements rule.Opaque.
func (d *Dimensions) Clone() rule.Opaque {
	return newDimensions(slices.Clone(d.keys), maps.Clone(d.values))
}

func (d *Dimensions) String() string {
	parts := make([]string, len(d.keys))
	for i, k := range d.keys {
		parts[i] = k + "=" + d.values[k]
	}
	return "dimensions:" + strings.Join(parts, ",")
}
