package rule_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

func TestRegistryExtend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []any
		expected []string
	}{
		{name: "individual names", input: []any{"one", "two"}, expected: []string{"one", "two"}},
		{name: "slice", input: []any{[]string{"one", "two"}}, expected: []string{"one", "two"}},
		{name: "nested lists", input: []any{[]any{"one", []string{"two"}}, "three"}, expected: []string{"one", "two", "three"}},
		{name: "duplicates kept once", input: []any{"one", "one"}, expected: []string{"one"}},
		{name: "empty names skipped", input: []any{"", nil, "one"}, expected: []string{"one"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reg := rule.NewRegistry()
			reg.Extend(tt.input...)
			assert.Equal(t, tt.expected, reg.Rules())
			for _, name := range tt.expected {
				assert.True(t, reg.Has(name))
			}
		})
	}
}

func TestRegistryOnlyGrows(t *testing.T) {
	t.Parallel()

	reg := rule.NewRegistry("one")
	rules := reg.Rules()
	reg.Extend("two")

	assert.Equal(t, []string{"one"}, rules)
	assert.Equal(t, []string{"one", "two"}, reg.Rules())
	assert.False(t, reg.Has("three"))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := rule.NewRegistry()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.Extend(fmt.Sprintf("rule_%d", i))
		}()
		go func() {
			defer wg.Done()
			_ = reg.Has(fmt.Sprintf("rule_%d", i))
			_ = rule.New(rule.WithRegistry(reg)).Call("required").String()
		}()
	}
	wg.Wait()

	assert.Len(t, reg.Rules(), 16)
}
