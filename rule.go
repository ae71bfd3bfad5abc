package govalid

import "context"

// Rule is the unit of validation bound to one property of T with value type P.
// A rule never holds per-instance state; configuration is captured at
// registration time and the same rule value is reused across calls.
//
// Validate reports validation failures as Issues and never returns an error:
// data-quality problems are values, not faults. ValidateCtx is the
// suspension-capable mirror for rules that perform genuinely asynchronous
// work (an external existence check, for example); its error return signals
// a fault of the rule itself, which is fatal to the whole validation call.
// Rules without asynchronous logic delegate ValidateCtx to Validate so that
// every rule behaves identically in either pipeline.
//
// The three setters are explicit capability methods: the engine calls them
// uniformly instead of inspecting rule types. Wrappers delegate them to the
// wrapped rule; rules that have no use for one implement it as a no-op.
type Rule[T, P any] interface {
	Validate(instance T, value P) []Issue
	ValidateCtx(ctx context.Context, instance T, value P) ([]Issue, error)

	SetMessageProvider(p MessageProvider)
	SetMessage(msg string)
	SetPropertyName(name string)
}

// RuleBase carries the configuration shared by parameter-bound rules: an
// issue code, a default message template, an optional custom message, the
// propagated message provider and the bound property name. Concrete rules
// embed it by pointer-receiver promotion and call Fail to build issues.
type RuleBase struct {
	code     string
	template string
	custom   string
	provider MessageProvider
	property string
}

// NewRuleBase builds the base for a rule producing issues with the given
// code and default message template. Templates may reference {property} and
// any key later passed through Fail's params.
func NewRuleBase(code, template string) RuleBase {
	return RuleBase{code: code, template: template}
}

// Code returns the stable identifier of issues produced by this rule.
func (b *RuleBase) Code() string { return b.code }

// SetMessageProvider attaches the provider consulted for message text.
func (b *RuleBase) SetMessageProvider(p MessageProvider) { b.provider = p }

// SetMessage installs a caller-supplied message that always wins over the
// provider and the default template.
func (b *RuleBase) SetMessage(msg string) { b.custom = msg }

// SetPropertyName binds the display name used in message resolution.
func (b *RuleBase) SetPropertyName(name string) { b.property = name }

// Fail constructs an issue with the rule's code and the resolved message.
// The path is left empty; the owning property validator stamps it.
func (b *RuleBase) Fail(params map[string]any) Issue {
	return Issue{Code: b.code, Message: b.resolveMessage(params), Params: params}
}

func (b *RuleBase) resolveMessage(params map[string]any) string {
	if b.custom != "" {
		return RenderMessage(b.custom, b.property, params)
	}
	if b.provider != nil {
		if msg := b.provider.Message(b.code, b.property, params); msg != "" {
			return msg
		}
	}
	return RenderMessage(b.template, b.property, params)
}

// ---- generic predicate rules (custom-rule entry points) ----

type predicateRule[T, P any] struct {
	RuleBase
	pred func(P) bool
}

// NewRule adapts a value predicate into a Rule. The rule fails exactly when
// pred returns false, producing one issue with the given code and template.
func NewRule[T, P any](code, template string, pred func(P) bool) Rule[T, P] {
	if pred == nil {
		panic("govalid: NewRule requires a non-nil predicate")
	}
	return &predicateRule[T, P]{RuleBase: NewRuleBase(code, template), pred: pred}
}

func (r *predicateRule[T, P]) Validate(_ T, value P) []Issue {
	if !r.pred(value) {
		return []Issue{r.Fail(nil)}
	}
	return nil
}

func (r *predicateRule[T, P]) ValidateCtx(_ context.Context, instance T, value P) ([]Issue, error) {
	return r.Validate(instance, value), nil
}

type ctxPredicateRule[T, P any] struct {
	RuleBase
	pred func(context.Context, P) (bool, error)
}

// NewRuleCtx adapts a context-aware predicate into a Rule, for checks that
// suspend (external lookups). The predicate's error is fatal to the
// validation call; cancellation is observed only if the predicate observes
// its context. In the synchronous pipeline the predicate runs with
// context.Background() and a fault escalates to a panic, so genuinely
// asynchronous rules belong in ValidateCtx pipelines.
func NewRuleCtx[T, P any](code, template string, pred func(context.Context, P) (bool, error)) Rule[T, P] {
	if pred == nil {
		panic("govalid: NewRuleCtx requires a non-nil predicate")
	}
	return &ctxPredicateRule[T, P]{RuleBase: NewRuleBase(code, template), pred: pred}
}

func (r *ctxPredicateRule[T, P]) Validate(instance T, value P) []Issue {
	iss, err := r.ValidateCtx(context.Background(), instance, value)
	if err != nil {
		panic("govalid: rule " + r.Code() + " faulted in the synchronous pipeline: " + err.Error())
	}
	return iss
}

func (r *ctxPredicateRule[T, P]) ValidateCtx(ctx context.Context, _ T, value P) ([]Issue, error) {
	ok, err := r.pred(ctx, value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Issue{r.Fail(nil)}, nil
	}
	return nil, nil
}
