// Package govalid provides:
//
// - Fluent, strongly-typed object validation (RuleFor/When/Unless/Cascade)
// - A stable error model via Issues (property path, code, message)
// - Composition wrappers: conditional rules, nested-validator delegation,
//   and element-wise collection rules with index-tagged paths
// - A single rule abstraction shared by the synchronous and the
//   context-aware (suspension-capable) pipelines
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place built-in rules under rules/, message catalogs under i18n/,
//   the error-idiom adapter under outcome/, and the CLI under cmd/govalid.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v := govalid.New[User]()
//	govalid.RuleFor(v, "Name", func(u User) string { return u.Name }).
//	    Add(rules.NotEmpty[User]()).
//	    Add(rules.MaxLength[User](50))
//	govalid.RuleFor(v, "Age", func(u User) int { return u.Age }).
//	    Add(rules.Between[User](18, 65))
//
//	res := v.Validate(user)
//	if !res.IsValid() { ... }
//
// Validation failures are never raised as panics; they are collected as
// Issue entries inside a Result. Panics are reserved for configuration
// mistakes by the validator's author (nil accessor, When with no prior
// rule, nil instance), which signal a programming error, not a data error.
package govalid
