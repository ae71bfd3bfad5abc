package rules

import (
	"cmp"

	govalid "github.com/reoring/govalid"
)

// GreaterThan fails unless value > min.
func GreaterThan[T any, P cmp.Ordered](min P) govalid.Rule[T, P] {
	return newCheckRule[T](govalid.CodeTooSmall, "must be greater than {min}", func(v P) (bool, map[string]any) {
		return v > min, map[string]any{"min": min}
	})
}

// GreaterThanOrEqual fails unless value >= min.
func GreaterThanOrEqual[T any, P cmp.Ordered](min P) govalid.Rule[T, P] {
	return newCheckRule[T](govalid.CodeTooSmall, "must be greater than or equal to {min}", func(v P) (bool, map[string]any) {
		return v >= min, map[string]any{"min": min}
	})
}

// LessThan fails unless value < max.
func LessThan[T any, P cmp.Ordered](max P) govalid.Rule[T, P] {
	return newCheckRule[T](govalid.CodeTooBig, "must be less than {max}", func(v P) (bool, map[string]any) {
		return v < max, map[string]any{"max": max}
	})
}

// LessThanOrEqual fails unless value <= max.
func LessThanOrEqual[T any, P cmp.Ordered](max P) govalid.Rule[T, P] {
	return newCheckRule[T](govalid.CodeTooBig, "must be less than or equal to {max}", func(v P) (bool, map[string]any) {
		return v <= max, map[string]any{"max": max}
	})
}

// Between fails when the value lies outside [min, max]; both bounds are
// inclusive.
func Between[T any, P cmp.Ordered](min, max P) govalid.Rule[T, P] {
	if min > max {
		panic("govalid/rules: Between requires min <= max")
	}
	return newCheckRule[T](govalid.CodeOutOfRange, "must be between {min} and {max}", func(v P) (bool, map[string]any) {
		return v >= min && v <= max, map[string]any{"min": min, "max": max}
	})
}

// OneOf fails when the value equals none of the allowed values.
func OneOf[T any, P comparable](allowed ...P) govalid.Rule[T, P] {
	set := make(map[P]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return newCheckRule[T](govalid.CodeInvalidEnum, "must be one of the allowed values", func(v P) (bool, map[string]any) {
		_, ok := set[v]
		return ok, map[string]any{"allowed": allowed}
	})
}
