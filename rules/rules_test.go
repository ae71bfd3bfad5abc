package rules_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	govalid "github.com/reoring/govalid"
	"github.com/reoring/govalid/rules"
)

func TestNotNil(t *testing.T) {
	r := rules.NotNil[instance, int]()

	n := 1
	assert.Empty(t, r.Validate(instance{}, &n))

	iss := r.Validate(instance{}, nil)
	require.Len(t, iss, 1)
	assert.Equal(t, govalid.CodeRequired, iss[0].Code)
	assert.Equal(t, "is required", iss[0].Message)
}

func TestNotEmptySliceAndMaxItems(t *testing.T) {
	ne := rules.NotEmptySlice[instance, string]()
	assert.Len(t, ne.Validate(instance{}, nil), 1)
	assert.Empty(t, ne.Validate(instance{}, []string{"a"}))

	mi := rules.MaxItems[instance, string](2)
	assert.Empty(t, mi.Validate(instance{}, []string{"a", "b"}))
	assert.Len(t, mi.Validate(instance{}, []string{"a", "b", "c"}), 1)
}

func TestMustAndMustCtx(t *testing.T) {
	m := rules.Must[instance](func(v int) bool { return v%2 == 0 }, "even", "must be even")
	assert.Empty(t, m.Validate(instance{}, 4))
	iss := m.Validate(instance{}, 3)
	require.Len(t, iss, 1)
	assert.Equal(t, "even", iss[0].Code)
	assert.Equal(t, "must be even", iss[0].Message)

	boom := errors.New("lookup failed")
	mc := rules.MustCtx[instance](func(ctx context.Context, v string) (bool, error) {
		if v == "fault" {
			return false, boom
		}
		return v == "known", nil
	}, "exists", "must exist")

	iss, err := mc.ValidateCtx(context.Background(), instance{}, "known")
	require.NoError(t, err)
	assert.Empty(t, iss)

	iss, err = mc.ValidateCtx(context.Background(), instance{}, "unknown")
	require.NoError(t, err)
	assert.Len(t, iss, 1)

	_, err = mc.ValidateCtx(context.Background(), instance{}, "fault")
	assert.ErrorIs(t, err, boom)
}

func TestAnd(t *testing.T) {
	r := rules.And(
		rules.MinLength[instance](3),
		rules.Matches[instance](`^[a-z]+$`),
	)

	assert.Empty(t, r.Validate(instance{}, "abc"))

	// Both branches report; issues concatenate in order.
	iss := r.Validate(instance{}, "A")
	require.Len(t, iss, 2)
	assert.Equal(t, govalid.CodeTooShort, iss[0].Code)
	assert.Equal(t, govalid.CodePattern, iss[1].Code)
}

func TestOr(t *testing.T) {
	r := rules.Or(
		rules.Matches[instance](`^\d+$`),
		rules.Email[instance](),
	)

	assert.Empty(t, r.Validate(instance{}, "12345"))
	assert.Empty(t, r.Validate(instance{}, "user@example.com"))

	// All branches fail: the smallest issue set is reported.
	iss := r.Validate(instance{}, "???")
	assert.Len(t, iss, 1)
}

func TestRulesInsideValidator(t *testing.T) {
	type user struct {
		Name string
		Card string
	}
	v := govalid.New[user]()
	govalid.RuleFor(v, "Name", func(u user) string { return u.Name }).
		Add(rules.NotEmpty[user]()).
		Add(rules.MaxLength[user](8))
	govalid.RuleFor(v, "Card", func(u user) string { return u.Card }).
		Add(rules.CreditCard[user]())

	res := v.Validate(user{Name: "verylongname", Card: "4532015112830366"})
	require.Len(t, res.Issues(), 1)
	assert.Equal(t, "Name", res.Issues()[0].Path)
	assert.Equal(t, govalid.CodeTooLong, res.Issues()[0].Code)
}
