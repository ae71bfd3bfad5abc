package govalid

import "context"

// Builder is the fluent configuration surface for one property. It is only
// meaningful during validator construction; misuse (When with no prior rule,
// nil arguments) panics immediately at configuration time rather than being
// deferred to validation time.
type Builder[T, P any] struct {
	v  *Validator[T]
	pr *propertyRules[T, P]
	// last is the slot of the most recently appended rule; -1 when none.
	// When/Unless/WithMessage address exactly this slot, so wrapping replaces
	// the rule in place and further conditionals nest around the wrapper.
	last int
}

// RuleFor registers a property of v under the given display name and returns
// the builder used to chain rules against it. The accessor extracts the
// property value from an instance; the name is what issue paths and messages
// refer to.
func RuleFor[T, P any](v *Validator[T], name string, get func(T) P) *Builder[T, P] {
	if v == nil {
		panic("govalid: RuleFor requires a non-nil validator")
	}
	if name == "" {
		panic("govalid: RuleFor requires a property name")
	}
	if get == nil {
		panic("govalid: RuleFor requires a non-nil accessor")
	}
	pr := &propertyRules[T, P]{prop: name, get: get}
	v.props = append(v.props, pr)
	return &Builder[T, P]{v: v, pr: pr, last: -1}
}

// Add appends a rule to the property. The rule is bound to the property name
// and, when the validator already carries a message provider, receives it
// immediately.
func (b *Builder[T, P]) Add(r Rule[T, P]) *Builder[T, P] {
	if r == nil {
		panic("govalid: Add requires a non-nil rule")
	}
	r.SetPropertyName(b.pr.prop)
	if b.v.provider != nil {
		r.SetMessageProvider(b.v.provider)
	}
	b.pr.rules = append(b.pr.rules, r)
	b.last = len(b.pr.rules) - 1
	return b
}

// Must appends an ad-hoc predicate rule failing with the given code and
// message when pred returns false.
func (b *Builder[T, P]) Must(pred func(P) bool, code, msg string) *Builder[T, P] {
	return b.Add(NewRule[T](code, msg, pred))
}

// MustCtx appends a context-aware predicate rule for checks that suspend.
func (b *Builder[T, P]) MustCtx(pred func(context.Context, P) (bool, error), code, msg string) *Builder[T, P] {
	return b.Add(NewRuleCtx[T](code, msg, pred))
}

// When gates the most recently added rule: it only runs when cond holds for
// the instance under validation.
func (b *Builder[T, P]) When(cond func(T) bool) *Builder[T, P] {
	return b.wrapLast(cond, true)
}

// Unless gates the most recently added rule with inverted polarity: it only
// runs when cond does not hold.
func (b *Builder[T, P]) Unless(cond func(T) bool) *Builder[T, P] {
	return b.wrapLast(cond, false)
}

func (b *Builder[T, P]) wrapLast(cond func(T) bool, when bool) *Builder[T, P] {
	if b.last < 0 {
		panic("govalid: When/Unless requires a previously registered rule")
	}
	b.pr.rules[b.last] = newConditionalRule(b.pr.rules[b.last], cond, when)
	return b
}

// WithMessage overrides the message of the most recently added rule. The
// custom message always wins over the provider and the default template; it
// may reference {property} and the rule's params.
func (b *Builder[T, P]) WithMessage(msg string) *Builder[T, P] {
	if b.last < 0 {
		panic("govalid: WithMessage requires a previously registered rule")
	}
	b.pr.rules[b.last].SetMessage(msg)
	return b
}

// Cascade sets the failure policy for this property's rule list.
func (b *Builder[T, P]) Cascade(mode CascadeMode) *Builder[T, P] {
	b.pr.cascade = mode
	return b
}

// Nested delegates a pointer-valued property to a child validator. A nil
// value skips the child entirely; child issue paths are re-rooted under this
// property's name.
func Nested[T, N any](b *Builder[T, *N], child *Validator[N]) *Builder[T, *N] {
	return b.Add(newNestedRule[T](child))
}

// Each applies pred to every element of a slice property, emitting one issue
// per failing element at the index-tagged path Name[i].
func Each[T, E any](b *Builder[T, []E], pred func(E) bool, code, msg string) *Builder[T, []E] {
	r := newEachRule[T](code, msg, pred)
	return b.Add(r)
}

// EachNested runs a child validator against every element of a slice
// property; child issue paths surface as Name[i].Child.
func EachNested[T, E any](b *Builder[T, []E], child *Validator[E]) *Builder[T, []E] {
	return b.Add(newEachNestedRule[T](child))
}
