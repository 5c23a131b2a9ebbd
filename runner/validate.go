package runner

import (
	"context"

	"github.com/jeffrom/commitlint/commit"
	"github.com/jeffrom/commitlint/rule"
)

// RuleSet is anything that can check a commit message. *rule.Rules is the
// usual implementation.
type RuleSet interface {
	Validate(ctx context.Context, msg *commit.Message) ([]rule.Violation, error)
}

// Result holds the violations found in one message.
type Result struct {
	Message    *commit.Message  `json:"message"`
	CommitID   string           `json:"commit,omitempty"`
	Violations []rule.Violation `json:"violations"`
}

// Validate checks msg against rules. Violations are returned exactly as the
// rule set produced them, and rule set errors are returned unchanged.
func Validate(ctx context.Context, msg *commit.Message, rules RuleSet) (*Result, error) {
	violations, err := rules.Validate(ctx, msg)
	if err != nil {
		return nil, err
	}
	return &Result{Message: msg, Violations: violations}, nil
}

// Errors returns the violations at error level.
func (r *Result) Errors() []rule.Violation {
	return r.byLevel(rule.LevelError)
}

func (r *Result) Warnings() []rule.Violation {
	return r.byLevel(rule.LevelWarning)
}

func (r *Result) byLevel(lvl rule.Level) []rule.Violation {
	var vs []rule.Violation
	for _, v := range r.Violations {
		if v.Level == lvl {
			vs = append(vs, v)
		}
	}
	return vs
}
