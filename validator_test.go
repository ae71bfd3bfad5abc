package govalid_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	govalid "github.com/reoring/govalid"
)

type account struct {
	Name string
	Age  int
}

func newAccountValidator() *govalid.Validator[account] {
	v := govalid.New[account]()
	govalid.RuleFor(v, "Name", func(a account) string { return a.Name }).
		Must(func(s string) bool { return s != "" }, "not_empty", "must not be empty")
	govalid.RuleFor(v, "Age", func(a account) int { return a.Age }).
		Must(func(n int) bool { return n >= 18 }, "too_small", "must be at least 18")
	return v
}

func TestValidator_ValidInstance(t *testing.T) {
	v := newAccountValidator()
	res := v.Validate(account{Name: "ada", Age: 30})
	if !res.IsValid() {
		t.Fatalf("expected valid, got issues: %v", res.Issues())
	}
	if len(res.Issues()) != 0 {
		t.Fatalf("expected no issues, got %d", len(res.Issues()))
	}
}

func TestValidator_DeclarationOrder(t *testing.T) {
	v := newAccountValidator()
	res := v.Validate(account{Name: "", Age: 3})
	iss := res.Issues()
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", iss)
	}
	if iss[0].Path != "Name" || iss[1].Path != "Age" {
		t.Fatalf("expected Name before Age, got %q then %q", iss[0].Path, iss[1].Path)
	}
}

func TestValidator_Idempotent(t *testing.T) {
	v := newAccountValidator()
	bad := account{Name: "", Age: 3}
	first := v.Validate(bad)
	second := v.Validate(bad)
	if !reflect.DeepEqual(first.Issues(), second.Issues()) {
		t.Fatalf("expected structurally equal results, got %v vs %v", first.Issues(), second.Issues())
	}
}

func TestValidator_NilInstancePanics(t *testing.T) {
	v := govalid.New[*account]()
	govalid.RuleFor(v, "Name", func(a *account) string { return a.Name }).
		Must(func(s string) bool { return s != "" }, "not_empty", "must not be empty")

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil instance")
		}
	}()
	v.Validate(nil)
}

func TestValidator_CtxMirrorsSync(t *testing.T) {
	v := newAccountValidator()
	bad := account{Name: "", Age: 3}

	sync := v.Validate(bad)
	async, err := v.ValidateCtx(context.Background(), bad)
	if err != nil {
		t.Fatalf("unexpected fault: %v", err)
	}
	if !reflect.DeepEqual(sync.Issues(), async.Issues()) {
		t.Fatalf("sync/ctx divergence: %v vs %v", sync.Issues(), async.Issues())
	}
}

func TestValidator_CtxRuleFaultIsFatal(t *testing.T) {
	boom := errors.New("backend down")
	v := govalid.New[account]()
	govalid.RuleFor(v, "Name", func(a account) string { return a.Name }).
		MustCtx(func(ctx context.Context, s string) (bool, error) { return false, boom }, "exists", "must exist")

	_, err := v.ValidateCtx(context.Background(), account{Name: "ada"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected rule fault to propagate unmodified, got %v", err)
	}
}

func TestValidator_CtxRuleObservesContext(t *testing.T) {
	v := govalid.New[account]()
	govalid.RuleFor(v, "Name", func(a account) string { return a.Name }).
		MustCtx(func(ctx context.Context, s string) (bool, error) {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			return true, nil
		}, "exists", "must exist")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := v.ValidateCtx(ctx, account{Name: "ada"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation to surface, got %v", err)
	}
}

func TestValidator_CtxRuleFaultPanicsInSyncPipeline(t *testing.T) {
	v := govalid.New[account]()
	govalid.RuleFor(v, "Name", func(a account) string { return a.Name }).
		MustCtx(func(ctx context.Context, s string) (bool, error) {
			return false, errors.New("backend down")
		}, "exists", "must exist")

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when a faulting ctx rule runs synchronously")
		}
	}()
	v.Validate(account{Name: "ada"})
}

// recordingProvider answers every known code with a fixed marker.
type recordingProvider struct{ known map[string]bool }

func (p recordingProvider) Message(code, property string, params map[string]any) string {
	if p.known != nil && !p.known[code] {
		return ""
	}
	return "provided " + code + " for " + property
}

func TestValidator_MessageProviderPropagation(t *testing.T) {
	v := govalid.New[account]()
	govalid.RuleFor(v, "Name", func(a account) string { return a.Name }).
		Must(func(s string) bool { return s != "" }, "not_empty", "must not be empty")

	// Retroactive propagation to already-registered rules.
	v.UseMessageProvider(recordingProvider{})

	// Rules registered afterwards pick the provider up at registration.
	govalid.RuleFor(v, "Age", func(a account) int { return a.Age }).
		Must(func(n int) bool { return n >= 18 }, "too_small", "must be at least 18")

	res := v.Validate(account{})
	iss := res.Issues()
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", iss)
	}
	if iss[0].Message != "provided not_empty for Name" {
		t.Fatalf("provider not applied retroactively: %q", iss[0].Message)
	}
	if iss[1].Message != "provided too_small for Age" {
		t.Fatalf("provider not applied at registration: %q", iss[1].Message)
	}
}

func TestValidator_ProviderFallsBackToDefaultTemplate(t *testing.T) {
	v := govalid.New[account]()
	govalid.RuleFor(v, "Name", func(a account) string { return a.Name }).
		Must(func(s string) bool { return s != "" }, "custom_code", "default wording")
	v.UseMessageProvider(recordingProvider{known: map[string]bool{"not_empty": true}})

	res := v.Validate(account{})
	if got := res.Issues()[0].Message; got != "default wording" {
		t.Fatalf("expected default template when provider has no entry, got %q", got)
	}
}

func TestResult_Err(t *testing.T) {
	v := newAccountValidator()
	if err := v.Validate(account{Name: "ada", Age: 30}).Err(); err != nil {
		t.Fatalf("expected nil error for valid result, got %v", err)
	}
	err := v.Validate(account{}).Err()
	iss, ok := govalid.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected Issues error, got %v", err)
	}
}
