package govalid

import "context"

// conditionalRule gates exactly one inner rule by a predicate over the whole
// instance. Polarity decides whether the inner rule runs when the predicate
// is true (When) or false (Unless). When skipped, the inner rule is not
// invoked at all, so side effects of custom inner rules cannot occur.
// Conditional rules nest: wrapping a conditional in another conditional
// requires both gates to pass.
type conditionalRule[T, P any] struct {
	inner Rule[T, P]
	cond  func(T) bool
	when  bool
}

func newConditionalRule[T, P any](inner Rule[T, P], cond func(T) bool, when bool) *conditionalRule[T, P] {
	if inner == nil {
		panic("govalid: conditional rule requires a non-nil inner rule")
	}
	if cond == nil {
		panic("govalid: conditional rule requires a non-nil condition")
	}
	return &conditionalRule[T, P]{inner: inner, cond: cond, when: when}
}

func (r *conditionalRule[T, P]) Validate(instance T, value P) []Issue {
	if r.cond(instance) != r.when {
		return nil
	}
	return r.inner.Validate(instance, value)
}

func (r *conditionalRule[T, P]) ValidateCtx(ctx context.Context, instance T, value P) ([]Issue, error) {
	if r.cond(instance) != r.when {
		return nil, nil
	}
	return r.inner.ValidateCtx(ctx, instance, value)
}

func (r *conditionalRule[T, P]) SetMessageProvider(p MessageProvider) { r.inner.SetMessageProvider(p) }
func (r *conditionalRule[T, P]) SetMessage(msg string)                { r.inner.SetMessage(msg) }
func (r *conditionalRule[T, P]) SetPropertyName(name string)          { r.inner.SetPropertyName(name) }
