// Package outcome maps a completed govalid.Result onto Go's error idiom:
// one joined error, or one error per issue. It is a pure post-processing
// view and never feeds back into rule execution.
package outcome

import (
	"errors"
	"fmt"
	"strings"

	govalid "github.com/reoring/govalid"
)

// segment renders one issue as "{code-or-property}: {message}".
func segment(it govalid.Issue) string {
	label := it.Code
	if label == "" {
		label = it.Path
	}
	return fmt.Sprintf("%s: %s", label, it.Message)
}

// Error combines all issues into a single error whose message joins the
// per-issue segments with "; ". A valid result maps to nil.
func Error(r govalid.Result) error {
	if r.IsValid() {
		return nil
	}
	segs := make([]string, 0, len(r.Issues()))
	for _, it := range r.Issues() {
		segs = append(segs, segment(it))
	}
	return errors.New(strings.Join(segs, "; "))
}

// Errors explodes the result into one error per issue, preserving order.
// A valid result maps to nil.
func Errors(r govalid.Result) []error {
	if r.IsValid() {
		return nil
	}
	out := make([]error, 0, len(r.Issues()))
	for _, it := range r.Issues() {
		out = append(out, errors.New(segment(it)))
	}
	return out
}

// Join explodes the result and folds it with errors.Join, so callers can
// walk individual failures through the standard error chain.
func Join(r govalid.Result) error {
	return errors.Join(Errors(r)...)
}
