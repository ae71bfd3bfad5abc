package govalid

import "context"

// CascadeMode is the policy for whether the rules of one property continue
// executing after a failure.
type CascadeMode int

const (
	// Continue executes every rule and accumulates all of their issues.
	Continue CascadeMode = iota
	// Stop halts at the first rule that yields issues; the property reports
	// exactly that rule's issues and nothing from later rules.
	Stop
)

// propertyExecutor is the type-erased view of a property's rule list held by
// the engine, which cannot name the per-property value type P.
type propertyExecutor[T any] interface {
	validate(instance T) []Issue
	validateCtx(ctx context.Context, instance T) ([]Issue, error)
	setMessageProvider(p MessageProvider)
	propertyName() string
}

// propertyRules binds a property accessor and display name to an ordered
// rule list plus the cascade mode. Rules execute in registration order in
// both pipelines; the cascade policy applies uniformly to both.
type propertyRules[T, P any] struct {
	prop    string
	get     func(T) P
	rules   []Rule[T, P]
	cascade CascadeMode
}

func (p *propertyRules[T, P]) propertyName() string { return p.prop }

func (p *propertyRules[T, P]) setMessageProvider(mp MessageProvider) {
	for _, r := range p.rules {
		r.SetMessageProvider(mp)
	}
}

func (p *propertyRules[T, P]) validate(instance T) []Issue {
	value := p.get(instance)
	var out []Issue
	for _, r := range p.rules {
		iss := r.Validate(instance, value)
		if len(iss) == 0 {
			continue
		}
		out = append(out, p.stamp(iss)...)
		if p.cascade == Stop {
			break
		}
	}
	return out
}

func (p *propertyRules[T, P]) validateCtx(ctx context.Context, instance T) ([]Issue, error) {
	value := p.get(instance)
	var out []Issue
	for _, r := range p.rules {
		iss, err := r.ValidateCtx(ctx, instance, value)
		if err != nil {
			return nil, err
		}
		if len(iss) == 0 {
			continue
		}
		out = append(out, p.stamp(iss)...)
		if p.cascade == Stop {
			break
		}
	}
	return out, nil
}

// stamp roots rule-relative paths at this property: "" becomes Name,
// "[2]" becomes Name[2], "City" becomes Name.City. Composition wrappers
// produce the relative forms, so paths accumulate naturally through
// arbitrarily deep nesting.
func (p *propertyRules[T, P]) stamp(iss []Issue) []Issue {
	for i := range iss {
		switch {
		case iss[i].Path == "":
			iss[i].Path = p.prop
		case iss[i].Path[0] == '[':
			iss[i].Path = p.prop + iss[i].Path
		default:
			iss[i].Path = p.prop + "." + iss[i].Path
		}
	}
	return iss
}
