package rules

import (
	govalid "github.com/reoring/govalid"
)

// NotNil fails on a nil pointer. Pair it with govalid.Nested when an
// optional nested object must in fact be present.
func NotNil[T, N any]() govalid.Rule[T, *N] {
	return newCheckRule[T](govalid.CodeRequired, "is required", func(v *N) (bool, map[string]any) {
		return v != nil, nil
	})
}

// NotEmptySlice fails on an empty or nil slice.
func NotEmptySlice[T, E any]() govalid.Rule[T, []E] {
	return newCheckRule[T](govalid.CodeNotEmpty, "must contain at least one element", func(v []E) (bool, map[string]any) {
		return len(v) > 0, nil
	})
}

// MaxItems fails when the slice has more than max elements.
func MaxItems[T, E any](max int) govalid.Rule[T, []E] {
	return newCheckRule[T](govalid.CodeTooLong, "must contain at most {max} elements", func(v []E) (bool, map[string]any) {
		return len(v) <= max, map[string]any{"max": max}
	})
}
