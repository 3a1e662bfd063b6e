package rule

import "fmt"

// Opaque is a rule produced by a Factory. It renders itself and exposes the
// refinements it supports by name. Refinements mutate the rule in place.
// Clone returns an independent copy; builders keep one to restore the latest
// rule when a call fails after refining it.
type Opaque interface {
	fmt.Stringer
	Refinement(name string) (Refinement, bool)
	Clone() Opaque
}

// Refinement mutates an opaque rule. It must validate its arguments before
// changing anything.
type Refinement func(args ...any) error

// Factory produces opaque rules keyed by the bare method name.
type Factory interface {
	Make(method string, args ...any) (Opaque, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(method string, args ...any) (Opaque, error)

func (f FactoryFunc) Make(method string, args ...any) (Opaque, error) {
	return f(method, args...)
}

// Entry is a single rule in a builder: either a rendered string rule or an
// opaque rule that renders itself on demand.
type Entry struct {
	text   string
	opaque Opaque
}

// String renders the entry.
func (e Entry) String() string {
	if e.opaque != nil {
		return e.opaque.String()
	}
	return e.text
}

// Opaque returns the underlying rule object for proxy entries.
func (e Entry) Opaque() (Opaque, bool) {
	return e.opaque, e.opaque != nil
}
