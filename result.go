package govalid

import (
	json "github.com/goccy/go-json"
)

// Result is the aggregate outcome of one validation call. It is created per
// call and owned by the caller once returned; the same validator instance may
// be reused concurrently because each call writes only to its own Result.
type Result struct {
	issues Issues
}

// IsValid reports whether the validated instance satisfied every rule.
func (r Result) IsValid() bool { return len(r.issues) == 0 }

// Issues returns the collected entries in deterministic order: property
// declaration order first, rule registration order within a property.
func (r Result) Issues() Issues { return r.issues }

// Err projects the result into the error idiom: nil when valid, the Issues
// collection otherwise. See the outcome package for joined/exploded views.
func (r Result) Err() error {
	if len(r.issues) == 0 {
		return nil
	}
	return r.issues
}

// MarshalJSON renders the result as {"valid":bool,"issues":[...]}.
func (r Result) MarshalJSON() ([]byte, error) {
	out := struct {
		Valid  bool   `json:"valid"`
		Issues Issues `json:"issues"`
	}{Valid: r.IsValid(), Issues: r.issues}
	if out.Issues == nil {
		out.Issues = Issues{}
	}
	return json.Marshal(out)
}

func (r *Result) append(more ...Issue) {
	if len(more) == 0 {
		return
	}
	r.issues = AppendIssues(r.issues, more...)
}
