package proxyrule_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/proxyrule"
	"github.com/dmitrymomot/rulekit/pkg/rule"
)

type post struct{ id int }

func (p post) Key() any        { return p.id }
func (post) KeyName() string   { return "post_id" }
func (post) TableName() string { return "posts" }

func newBuilder() *rule.Builder {
	return rule.New(
		rule.WithRegistry(rule.NewRegistry()),
		rule.WithFactory(proxyrule.NewFactory()),
	)
}

func TestProxiedRulesMatchDirectConstruction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		builder *rule.Builder
		direct  string
	}{
		{
			name:    "dimensions",
			builder: newBuilder().Call("dimensions", map[string]any{"width": 100, "height": 100}),
			direct:  proxyrule.NewDimensions(map[string]any{"height": 100, "width": 100}).String(),
		},
		{
			name:    "exists",
			builder: newBuilder().Exists("table_name", "column_name"),
			direct:  proxyrule.NewExists("table_name", "column_name").String(),
		},
		{
			name:    "in",
			builder: newBuilder().In(1, 2, 3),
			direct:  proxyrule.NewIn(1, 2, 3).String(),
		},
		{
			name:    "not in",
			builder: newBuilder().NotIn(1, 2, 3),
			direct:  proxyrule.NewNotIn(1, 2, 3).String(),
		},
		{
			name:    "unique with ignore",
			builder: newBuilder().Unique("table_name", "column_name").Ignore(23),
			direct:  proxyrule.NewUnique("table_name", "column_name").Ignore(23).String(),
		},
		{
			name:    "unique by call name",
			builder: newBuilder().Call("unique", "table_name").Call("ignore", 23),
			direct:  proxyrule.NewUnique("table_name", "").Ignore(23).String(),
		},
		{
			name:    "unique resolves entity",
			builder: newBuilder().Unique(post{}, "slug"),
			direct:  proxyrule.NewUnique("posts", "slug").String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.NoError(t, tt.builder.Err())
			assert.Equal(t, tt.direct, tt.builder.String())
		})
	}
}

func TestRendering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rule     interface{ String() string }
		expected string
	}{
		{name: "dimensions sorted keys", rule: proxyrule.NewDimensions(map[string]any{"width": 100, "height": 50}), expected: "dimensions:height=50,width=100"},
		{name: "dimensions refinements keep order", rule: proxyrule.NewDimensions(nil).MinWidth(10).Ratio("3/2").MinWidth(20), expected: "dimensions:min_width=20,ratio=3/2"},
		{name: "exists default column", rule: proxyrule.NewExists("users", ""), expected: "exists:users,NULL"},
		{name: "exists with wheres", rule: proxyrule.NewExists("users", "id").Where("active", 1).WhereNot("role", "admin"), expected: "exists:users,id,active,1,role,!admin"},
		{name: "exists null checks", rule: proxyrule.NewExists("users", "id").WhereNull("deleted_at").WhereNotNull("verified_at"), expected: "exists:users,id,deleted_at,NULL,verified_at,NOT_NULL"},
		{name: "where nil is where null", rule: proxyrule.NewExists("users", "id").Where("deleted_at", nil), expected: "exists:users,id,deleted_at,NULL"},
		{name: "where in does not render", rule: proxyrule.NewExists("users", "id").WhereIn("status", []string{"a", "b"}), expected: "exists:users,id"},
		{name: "unique default", rule: proxyrule.NewUnique("users", "email"), expected: "unique:users,email,NULL,id"},
		{name: "unique ignore", rule: proxyrule.NewUnique("users", "email").Ignore(5), expected: `unique:users,email,"5",id`},
		{name: "unique ignore column", rule: proxyrule.NewUnique("users", "email").Ignore(5, "user_id"), expected: `unique:users,email,"5",user_id`},
		{name: "unique ignore model", rule: proxyrule.NewUnique("posts", "slug").Ignore(post{id: 9}), expected: `unique:posts,slug,"9",post_id`},
		{name: "unique with wheres", rule: proxyrule.NewUnique("users", "email").Where("account_id", 1), expected: "unique:users,email,NULL,id,account_id,1"},
		{name: "in flattens", rule: proxyrule.NewIn([]string{"a", "b"}, "c"), expected: "in:a,b,c"},
		{name: "not in", rule: proxyrule.NewNotIn(1, 2), expected: "not_in:1,2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.rule.String())
		})
	}
}

func TestIgnoreUUID(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("9b2f8f3e-6a44-4d2a-9f4e-0c5a3f1d2b7a")
	b := newBuilder().Unique("users", "email").Ignore(id)
	require.NoError(t, b.Err())
	assert.Equal(t, `unique:users,email,"9b2f8f3e-6a44-4d2a-9f4e-0c5a3f1d2b7a",id`, b.String())
}

func TestChainedRefinements(t *testing.T) {
	t.Parallel()

	b := newBuilder().
		Required().
		Exists("users", "id").
		Call("whereNull", "deleted_at").
		Call("where", "account_id", 7).
		Call("whereNotIn", "status", "banned", "closed").
		Call("dimensions").
		Call("maxWidth", 800).
		Call("ratio", 1.5)
	require.NoError(t, b.Err())
	assert.Equal(t,
		"required|exists:users,id,deleted_at,NULL,account_id,7|dimensions:max_width=800,ratio=1.5",
		b.String(),
	)

	entries := b.Get()
	require.Len(t, entries, 3)
	opaque, ok := entries[1].Opaque()
	require.True(t, ok)
	exists, ok := opaque.(*proxyrule.Exists)
	require.True(t, ok)
	assert.Equal(t, []proxyrule.Constraint{{Column: "status", Values: []string{"banned", "closed"}, Negate: true}}, exists.Constraints())
}

func TestRefinementNamesAreCaseInsensitive(t *testing.T) {
	t.Parallel()

	b := newBuilder().Unique("users", "email").Call("Ignore", 1)
	require.NoError(t, b.Err())
	assert.Equal(t, `unique:users,email,"1",id`, b.String())
}

func TestInvalidRefinementArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call string
		args []any
	}{
		{name: "where without column", call: "where"},
		{name: "where with non string column", call: "where", args: []any{1, 2}},
		{name: "where not without value", call: "whereNot", args: []any{"role"}},
		{name: "ignore with too many args", call: "ignore", args: []any{1, "id", "x"}},
		{name: "ignore with bad column", call: "ignore", args: []any{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newBuilder().Unique("users", "email").Call(tt.call, tt.args...)
			assert.ErrorIs(t, b.Err(), rule.ErrInvalidArgument)
			assert.ErrorIs(t, b.Err(), proxyrule.ErrInvalidArgument)
			assert.Equal(t, "unique:users,email,NULL,id", b.String())
		})
	}
}

func TestFactory(t *testing.T) {
	t.Parallel()

	f := proxyrule.NewFactory()

	r, err := f.Make("NotIn", 1)
	require.NoError(t, err)
	assert.Equal(t, "not_in:1", r.String())

	_, err = f.Make("not_in", 1)
	assert.ErrorIs(t, err, proxyrule.ErrUnknownRule)

	_, err = f.Make("exists")
	assert.ErrorIs(t, err, proxyrule.ErrInvalidArgument)

	_, err = f.Make("dimensions", "width", 10)
	assert.ErrorIs(t, err, proxyrule.ErrInvalidArgument)

	r, err = f.Make("dimensions", map[string]int{"width": 10})
	require.NoError(t, err)
	assert.Equal(t, "dimensions:width=10", r.String())
}

func TestInHasNoRefinements(t *testing.T) {
	t.Parallel()

	b := newBuilder().In(1).Call("ignore", 2)
	assert.ErrorIs(t, b.Err(), rule.ErrUnresolvableCall)
	assert.Equal(t, "in:1", b.String())
	assert.Equal(t, []string{"1"}, proxyrule.NewIn(1).Values())
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rule   rule.Opaque
		refine string
		args   []any
	}{
		{name: "dimensions", rule: proxyrule.NewDimensions(map[string]any{"width": 10}), refine: "height", args: []any{20}},
		{name: "exists", rule: proxyrule.NewExists("users", "id").WhereIn("role", []string{"a"}), refine: "where", args: []any{"active", 1}},
		{name: "unique", rule: proxyrule.NewUnique("users", "email").Ignore(3), refine: "ignore", args: []any{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			before := tt.rule.String()
			clone := tt.rule.Clone()
			assert.Equal(t, before, clone.String())

			refine, ok := clone.Refinement(tt.refine)
			require.True(t, ok)
			require.NoError(t, refine(tt.args...))
			assert.NotEqual(t, before, clone.String())
			assert.Equal(t, before, tt.rule.String())
		})
	}

	in := proxyrule.NewNotIn("a", "b")
	assert.Equal(t, in.String(), in.Clone().String())
}

func TestFailedWhenRestoresProxiedRule(t *testing.T) {
	t.Parallel()

	b := newBuilder().Call("unique", "users", "email").Call("where", "active", 1)
	before := b.String()

	b.When(true, func(b *rule.Builder) {
		b.Call("ignore", 5).Call("whereNull", "deleted_at").Call("notARule")
	})
	assert.ErrorIs(t, b.Err(), rule.ErrUnresolvableCall)
	assert.Equal(t, before, b.String())
	assert.Equal(t, "unique:users,email,NULL,id,active,1", b.String())
}
