// Package rules provides the built-in predicate rules registered through the
// govalid builder, plus And/Or combinators. Every rule is parameter-bound at
// construction and reusable across validation calls.
package rules

import (
	"context"

	govalid "github.com/reoring/govalid"
)

// checkRule adapts a value check into a govalid.Rule. The check reports
// success and, on failure, the params embedded in the issue and its message
// template.
type checkRule[T, P any] struct {
	govalid.RuleBase
	check func(P) (bool, map[string]any)
}

func newCheckRule[T, P any](code, template string, check func(P) (bool, map[string]any)) govalid.Rule[T, P] {
	return &checkRule[T, P]{RuleBase: govalid.NewRuleBase(code, template), check: check}
}

func (r *checkRule[T, P]) Validate(_ T, value P) []govalid.Issue {
	if ok, params := r.check(value); !ok {
		return []govalid.Issue{r.Fail(params)}
	}
	return nil
}

func (r *checkRule[T, P]) ValidateCtx(_ context.Context, instance T, value P) ([]govalid.Issue, error) {
	return r.Validate(instance, value), nil
}

// Must adapts a plain value predicate into a rule (see govalid.NewRule).
func Must[T, P any](pred func(P) bool, code, msg string) govalid.Rule[T, P] {
	return govalid.NewRule[T](code, msg, pred)
}

// MustCtx adapts a context-aware predicate into a rule for checks that
// suspend (see govalid.NewRuleCtx).
func MustCtx[T, P any](pred func(context.Context, P) (bool, error), code, msg string) govalid.Rule[T, P] {
	return govalid.NewRuleCtx[T](code, msg, pred)
}

// ---------- combinators ----------

type andRule[T, P any] struct{ rules []govalid.Rule[T, P] }

// And executes all rules and concatenates their issues.
func And[T, P any](rules ...govalid.Rule[T, P]) govalid.Rule[T, P] {
	for _, r := range rules {
		if r == nil {
			panic("govalid/rules: And requires non-nil rules")
		}
	}
	return &andRule[T, P]{rules: rules}
}

func (a *andRule[T, P]) Validate(instance T, value P) []govalid.Issue {
	var out []govalid.Issue
	for _, r := range a.rules {
		out = append(out, r.Validate(instance, value)...)
	}
	return out
}

func (a *andRule[T, P]) ValidateCtx(ctx context.Context, instance T, value P) ([]govalid.Issue, error) {
	var out []govalid.Issue
	for _, r := range a.rules {
		iss, err := r.ValidateCtx(ctx, instance, value)
		if err != nil {
			return nil, err
		}
		out = append(out, iss...)
	}
	return out, nil
}

func (a *andRule[T, P]) SetMessageProvider(p govalid.MessageProvider) {
	for _, r := range a.rules {
		r.SetMessageProvider(p)
	}
}

func (a *andRule[T, P]) SetMessage(msg string) {
	for _, r := range a.rules {
		r.SetMessage(msg)
	}
}

func (a *andRule[T, P]) SetPropertyName(name string) {
	for _, r := range a.rules {
		r.SetPropertyName(name)
	}
}

type orRule[T, P any] struct{ rules []govalid.Rule[T, P] }

// Or succeeds if any rule returns no issues; when all fail it reports the
// branch with the fewest issues.
func Or[T, P any](rules ...govalid.Rule[T, P]) govalid.Rule[T, P] {
	for _, r := range rules {
		if r == nil {
			panic("govalid/rules: Or requires non-nil rules")
		}
	}
	return &orRule[T, P]{rules: rules}
}

func (o *orRule[T, P]) Validate(instance T, value P) []govalid.Issue {
	var best []govalid.Issue
	bestSet := false
	for _, r := range o.rules {
		iss := r.Validate(instance, value)
		if len(iss) == 0 {
			return nil
		}
		if !bestSet || len(iss) < len(best) {
			best = iss
			bestSet = true
		}
	}
	if bestSet {
		return best
	}
	return nil
}

func (o *orRule[T, P]) ValidateCtx(ctx context.Context, instance T, value P) ([]govalid.Issue, error) {
	var best []govalid.Issue
	bestSet := false
	for _, r := range o.rules {
		iss, err := r.ValidateCtx(ctx, instance, value)
		if err != nil {
			return nil, err
		}
		if len(iss) == 0 {
			return nil, nil
		}
		if !bestSet || len(iss) < len(best) {
			best = iss
			bestSet = true
		}
	}
	if bestSet {
		return best, nil
	}
	return nil, nil
}

func (o *orRule[T, P]) SetMessageProvider(p govalid.MessageProvider) {
	for _, r := range o.rules {
		r.SetMessageProvider(p)
	}
}

func (o *orRule[T, P]) SetMessage(msg string) {
	for _, r := range o.rules {
		r.SetMessage(msg)
	}
}

func (o *orRule[T, P]) SetPropertyName(name string) {
	for _, r := range o.rules {
		r.SetPropertyName(name)
	}
}
