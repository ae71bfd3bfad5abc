package govalid

import (
	"context"
	"strconv"
)

// eachRule applies a predicate across a slice and emits one issue per
// failing element at the relative path "[i]". An absent (nil) collection is
// success. Every element is inspected even after a failure, in both
// pipelines: element indices require a full ordered pass and no
// element-level suspension is supported, so the ctx path wraps the
// synchronous one.
type eachRule[T, E any] struct {
	RuleBase
	pred func(E) bool
}

func newEachRule[T, E any](code, template string, pred func(E) bool) *eachRule[T, E] {
	if pred == nil {
		panic("govalid: each rule requires a non-nil predicate")
	}
	return &eachRule[T, E]{RuleBase: NewRuleBase(code, template), pred: pred}
}

func (r *eachRule[T, E]) Validate(_ T, values []E) []Issue {
	var out []Issue
	for i, e := range values {
		if r.pred(e) {
			continue
		}
		it := r.Fail(map[string]any{"index": i})
		it.Path = "[" + strconv.Itoa(i) + "]"
		out = append(out, it)
	}
	return out
}

func (r *eachRule[T, E]) ValidateCtx(_ context.Context, instance T, values []E) ([]Issue, error) {
	return r.Validate(instance, values), nil
}

// eachNestedRule runs a child validator against every element of a slice,
// index-tagging the child paths: a "City" issue from element 2 comes back as
// "[2].City" and is rooted by the owning property into "Items[2].City".
// Like eachRule it inspects every element; like nestedRule it leaves message
// configuration to the child validator.
type eachNestedRule[T, E any] struct {
	child *Validator[E]
}

func newEachNestedRule[T, E any](child *Validator[E]) *eachNestedRule[T, E] {
	if child == nil {
		panic("govalid: each-nested rule requires a non-nil child validator")
	}
	return &eachNestedRule[T, E]{child: child}
}

func indexPath(i int, childPath string) string {
	p := "[" + strconv.Itoa(i) + "]"
	if childPath == "" {
		return p
	}
	return p + "." + childPath
}

func (r *eachNestedRule[T, E]) Validate(_ T, values []E) []Issue {
	var out []Issue
	for i, e := range values {
		for _, it := range r.child.Validate(e).Issues() {
			it.Path = indexPath(i, it.Path)
			out = append(out, it)
		}
	}
	return out
}

func (r *eachNestedRule[T, E]) ValidateCtx(ctx context.Context, _ T, values []E) ([]Issue, error) {
	var out []Issue
	for i, e := range values {
		res, err := r.child.ValidateCtx(ctx, e)
		if err != nil {
			return nil, err
		}
		for _, it := range res.Issues() {
			it.Path = indexPath(i, it.Path)
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *eachNestedRule[T, E]) SetMessageProvider(MessageProvider) {}
func (r *eachNestedRule[T, E]) SetMessage(string)                  {}
func (r *eachNestedRule[T, E]) SetPropertyName(string)             {}
