package rule_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

// stubRule is a minimal opaque rule: name:args[,ignore=id].
type stubRule struct {
	name    string
	args    []any
	ignored string
}

func (s *stubRule) String() string {
	out := s.name
	if len(s.args) > 0 {
		out += ":" + rule.JoinArgs(s.args...)
	}
	if s.ignored != "" {
		out += ",ignore=" + s.ignored
	}
	return out
}

func (s *stubRule) Clone() rule.Opaque {
	c := *s
	c.args = append([]any(nil), s.args...)
	return &c
}

func (s *stubRule) Refinement(name string) (rule.Refinement, bool) {
	if name != "ignore" {
		return nil, false
	}
	return func(args ...any) error {
		if len(args) != 1 {
			return errors.New("ignore expects one id")
		}
		s.ignored = rule.FormatArg(args[0])
		return nil
	}, true
}

var stubFactory = rule.FactoryFunc(func(method string, args ...any) (rule.Opaque, error) {
	if strings.HasPrefix(method, "broken") {
		return nil, fmt.Errorf("cannot build %s", method)
	}
	return &stubRule{name: rule.Snake(method), args: args}, nil
})

// newBuilder returns a builder with an isolated registry holding basic rules.
func newBuilder(extra ...any) *rule.Builder {
	reg := rule.NewRegistry("basic", "basic_alternative", extra)
	return rule.New(rule.WithRegistry(reg), rule.WithFactory(stubFactory))
}

type user struct{}

func (user) TableName() string { return "users" }
func (user) KeyName() string   { return "uuid" }

type account struct{ id int }

func (*account) TableName() string { return "accounts" }
func (*account) KeyName() string   { return "account_id" }
