package govalid

import "context"

// Validator owns an ordered list of per-property rule sets for instances of
// T. Declaration order of RuleFor calls determines both validation order and
// error-reporting order, so results are fully deterministic for a given
// validator and instance.
//
// A validator is expected to be configured once, during single-threaded
// setup, and is then safe for concurrent reuse across independent Validate
// calls: each call only reads registered configuration and writes to its own
// Result. UseMessageProvider mutates registered rules in place and therefore
// must not race with in-flight validation.
type Validator[T any] struct {
	props    []propertyExecutor[T]
	provider MessageProvider
}

// New returns an empty validator for T. Register properties with RuleFor.
func New[T any]() *Validator[T] { return &Validator[T]{} }

// UseMessageProvider attaches p to this validator and propagates it to every
// rule registered so far; rules registered afterwards pick it up at
// registration, so a provider set at any point covers all rules.
func (v *Validator[T]) UseMessageProvider(p MessageProvider) *Validator[T] {
	v.provider = p
	for _, pr := range v.props {
		pr.setMessageProvider(p)
	}
	return v
}

// Validate runs every property's rules against instance in declaration
// order and returns the aggregate result. A nil instance is a structural
// error and panics; invalid data never panics.
func (v *Validator[T]) Validate(instance T) Result {
	if isNilInstance(instance) {
		panic("govalid: Validate called with a nil instance")
	}
	var res Result
	for _, pr := range v.props {
		res.append(pr.validate(instance)...)
	}
	return res
}

// ValidateCtx mirrors Validate for rules that suspend. Properties are still
// processed strictly sequentially, never fanned out, so ordering stays
// deterministic. Cancellation is cooperative: the engine hands ctx to each
// rule and it is up to the rule to observe it. A non-nil error reports a
// fault of a rule itself (not invalid data) and is fatal to this call.
func (v *Validator[T]) ValidateCtx(ctx context.Context, instance T) (Result, error) {
	if isNilInstance(instance) {
		panic("govalid: ValidateCtx called with a nil instance")
	}
	var res Result
	for _, pr := range v.props {
		iss, err := pr.validateCtx(ctx, instance)
		if err != nil {
			return Result{}, err
		}
		res.append(iss...)
	}
	return res, nil
}
