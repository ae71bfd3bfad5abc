package govalid

import "context"

// nestedRule delegates a property of type *N to a child validator for N.
// A nil value is skipped, not an error: absence of an optional nested object
// is never itself a validation failure at this layer — add rules.NotNil when
// presence is required. Child issue paths come back property-relative and
// the owning property validator roots them, so "City" under property
// "Address" surfaces as "Address.City", recursively for deeper nesting.
type nestedRule[T, N any] struct {
	child *Validator[N]
}

func newNestedRule[T, N any](child *Validator[N]) *nestedRule[T, N] {
	if child == nil {
		panic("govalid: nested rule requires a non-nil child validator")
	}
	return &nestedRule[T, N]{child: child}
}

func (r *nestedRule[T, N]) Validate(_ T, value *N) []Issue {
	if value == nil {
		return nil
	}
	return r.child.Validate(*value).Issues()
}

func (r *nestedRule[T, N]) ValidateCtx(ctx context.Context, _ T, value *N) ([]Issue, error) {
	if value == nil {
		return nil, nil
	}
	res, err := r.child.ValidateCtx(ctx, *value)
	if err != nil {
		return nil, err
	}
	return res.Issues(), nil
}

// The child validator owns its message configuration; nothing to propagate.
func (r *nestedRule[T, N]) SetMessageProvider(MessageProvider) {}
func (r *nestedRule[T, N]) SetMessage(string)                  {}
func (r *nestedRule[T, N]) SetPropertyName(string)             {}
