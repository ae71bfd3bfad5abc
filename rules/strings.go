package rules

import (
	"net/mail"
	"regexp"
	"strings"

	govalid "github.com/reoring/govalid"
)

// NotEmpty fails on the empty string.
func NotEmpty[T any]() govalid.Rule[T, string] {
	return newCheckRule[T](govalid.CodeNotEmpty, "must not be empty", func(v string) (bool, map[string]any) {
		return v != "", nil
	})
}

// MinLength fails when the string is shorter than min bytes.
func MinLength[T any](min int) govalid.Rule[T, string] {
	return newCheckRule[T](govalid.CodeTooShort, "must be at least {min} characters long", func(v string) (bool, map[string]any) {
		return len(v) >= min, map[string]any{"min": min}
	})
}

// MaxLength fails when the string is longer than max bytes.
func MaxLength[T any](max int) govalid.Rule[T, string] {
	return newCheckRule[T](govalid.CodeTooLong, "must be at most {max} characters long", func(v string) (bool, map[string]any) {
		return len(v) <= max, map[string]any{"max": max}
	})
}

// Length fails when the string length lies outside [min, max].
func Length[T any](min, max int) govalid.Rule[T, string] {
	if min > max {
		panic("govalid/rules: Length requires min <= max")
	}
	return newCheckRule[T](govalid.CodeOutOfRange, "must be between {min} and {max} characters long", func(v string) (bool, map[string]any) {
		return len(v) >= min && len(v) <= max, map[string]any{"min": min, "max": max}
	})
}

// Matches fails when the string does not match the pattern. An invalid
// pattern is a configuration error and panics at registration time.
func Matches[T any](pattern string) govalid.Rule[T, string] {
	re := regexp.MustCompile(pattern)
	return newCheckRule[T](govalid.CodePattern, "must match the pattern {pattern}", func(v string) (bool, map[string]any) {
		return re.MatchString(v), map[string]any{"pattern": pattern}
	})
}

// Email fails when the string is not a plain addr-spec email address.
func Email[T any]() govalid.Rule[T, string] {
	return newCheckRule[T](govalid.CodeInvalidFormat, "must be a valid email address", func(v string) (bool, map[string]any) {
		return isEmail(v), nil
	})
}

func isEmail(v string) bool {
	if strings.TrimSpace(v) == "" {
		return false
	}
	addr, err := mail.ParseAddress(v)
	if err != nil {
		return false
	}
	// Reject display-name forms and anything the parser normalized away.
	if addr.Address != v {
		return false
	}
	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	// Require a dotted domain for typical web use.
	return strings.Contains(domain, ".")
}
