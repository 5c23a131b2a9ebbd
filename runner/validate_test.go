package runner

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jeffrom/commitlint/commit"
	"github.com/jeffrom/commitlint/config"
	"github.com/jeffrom/commitlint/rule"
)

type fakeRules struct {
	violations []rule.Violation
	err        error
	calls      int
}

func (f *fakeRules) Validate(ctx context.Context, msg *commit.Message) ([]rule.Violation, error) {
	f.calls++
	return f.violations, f.err
}

func TestValidatePassthrough(t *testing.T) {
	vs := []rule.Violation{
		{Rule: "b", Level: rule.LevelWarning, Message: "second"},
		{Rule: "a", Level: rule.LevelError, Message: "first"},
		{Rule: "a", Level: rule.LevelError, Message: "first"},
	}
	rules := &fakeRules{violations: vs}
	msg := commit.Parse("fix: x")

	res, err := Validate(context.Background(), msg, rules)
	if err != nil {
		t.Fatal(err)
	}
	if rules.calls != 1 {
		t.Errorf("expected rules to be called once, got %d", rules.calls)
	}
	if res.Message != msg {
		t.Error("expected result to carry the message")
	}
	if !reflect.DeepEqual(res.Violations, vs) {
		t.Fatalf("expected violations unchanged:\n%+v\ngot:\n%+v", vs, res.Violations)
	}
	if n := len(res.Errors()); n != 2 {
		t.Errorf("expected 2 errors, got %d", n)
	}
	if n := len(res.Warnings()); n != 1 {
		t.Errorf("expected 1 warning, got %d", n)
	}
}

func TestValidateError(t *testing.T) {
	expectErr := errors.New("rules exploded")
	_, err := Validate(context.Background(), commit.Parse("fix: x"), &fakeRules{err: expectErr})
	if err != expectErr {
		t.Fatalf("expected error %v, got %v", expectErr, err)
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := config.New(nil)
	tcs := []struct {
		name   string
		msg    string
		expect []string
	}{
		{name: "conventional", msg: "feat(parser): add support"},
		{name: "unstructured", msg: "update docs", expect: []string{"type-empty", "description-empty"}},
		{name: "empty", msg: "", expect: []string{"subject-empty", "type-empty", "description-empty"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Validate(context.Background(), commit.Parse(tc.msg), &cfg.Rules)
			if err != nil {
				t.Fatal(err)
			}
			var names []string
			for _, v := range res.Violations {
				names = append(names, v.Rule)
			}
			if !reflect.DeepEqual(names, tc.expect) {
				t.Fatalf("expected violations %q, got %q", tc.expect, names)
			}
		})
	}
}
