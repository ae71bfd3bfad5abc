package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	govalid "github.com/reoring/govalid"
	"github.com/reoring/govalid/rules"
)

func TestBetween(t *testing.T) {
	r := rules.Between[instance](18, 65)

	t.Run("both boundaries are inclusive", func(t *testing.T) {
		assert.Len(t, r.Validate(instance{}, 17), 1)
		assert.Empty(t, r.Validate(instance{}, 18))
		assert.Empty(t, r.Validate(instance{}, 65))
		assert.Len(t, r.Validate(instance{}, 66), 1)
	})

	t.Run("carries code and bounds", func(t *testing.T) {
		iss := r.Validate(instance{}, 17)
		assert.Equal(t, govalid.CodeOutOfRange, iss[0].Code)
		assert.Equal(t, "must be between 18 and 65", iss[0].Message)
		assert.Equal(t, 18, iss[0].Params["min"])
		assert.Equal(t, 65, iss[0].Params["max"])
	})

	t.Run("inverted bounds panic", func(t *testing.T) {
		assert.Panics(t, func() { rules.Between[instance](65, 18) })
	})
}

func TestComparisons(t *testing.T) {
	gt := rules.GreaterThan[instance](10)
	assert.Len(t, gt.Validate(instance{}, 10), 1)
	assert.Empty(t, gt.Validate(instance{}, 11))
	assert.Equal(t, govalid.CodeTooSmall, gt.Validate(instance{}, 1)[0].Code)

	gte := rules.GreaterThanOrEqual[instance](10)
	assert.Empty(t, gte.Validate(instance{}, 10))
	assert.Len(t, gte.Validate(instance{}, 9), 1)

	lt := rules.LessThan[instance](10)
	assert.Len(t, lt.Validate(instance{}, 10), 1)
	assert.Empty(t, lt.Validate(instance{}, 9))
	assert.Equal(t, govalid.CodeTooBig, lt.Validate(instance{}, 11)[0].Code)

	lte := rules.LessThanOrEqual[instance](10)
	assert.Empty(t, lte.Validate(instance{}, 10))
	assert.Len(t, lte.Validate(instance{}, 11), 1)
}

func TestComparisonsOnFloatsAndStrings(t *testing.T) {
	assert.Empty(t, rules.GreaterThan[instance](0.5).Validate(instance{}, 0.6))
	assert.Len(t, rules.GreaterThan[instance](0.5).Validate(instance{}, 0.5), 1)

	assert.Empty(t, rules.Between[instance]("a", "c").Validate(instance{}, "b"))
	assert.Len(t, rules.Between[instance]("a", "c").Validate(instance{}, "d"), 1)
}

func TestOneOf(t *testing.T) {
	r := rules.OneOf[instance]("red", "green", "blue")

	assert.Empty(t, r.Validate(instance{}, "green"))
	iss := r.Validate(instance{}, "yellow")
	assert.Len(t, iss, 1)
	assert.Equal(t, govalid.CodeInvalidEnum, iss[0].Code)
}
