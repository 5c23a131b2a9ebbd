package rule

import (
	"strings"

	"github.com/jeffrom/commitlint/commit"
)

type ScopeEmpty struct {
	Severity Level `json:"level,omitempty"`
}

func (r *ScopeEmpty) Name() string { return "scope-empty" }
func (r *ScopeEmpty) Level() Level { return r.Severity.orDefault() }

func (r *ScopeEmpty) Validate(msg *commit.Message) *Violation {
	if _, ok := msg.Scope(); !ok {
		return violation(r, "scope is empty or missing")
	}
	return nil
}

// Scope restricts scopes to Options. A commit without a scope only passes
// when Optional is set.
type Scope struct {
	Severity Level    `json:"level,omitempty"`
	Options  []string `json:"options"`
	Optional bool     `json:"optional,omitempty"`
}

func (r *Scope) Name() string { return "scope" }
func (r *Scope) Level() Level { return r.Severity.orDefault() }

func (r *Scope) Validate(msg *commit.Message) *Violation {
	scope, ok := msg.Scope()
	if !ok {
		if r.Optional {
			return nil
		}
		return violation(r, "scope is required")
	}
	if !oneOf(scope, r.Options) {
		if len(r.Options) == 0 {
			return violation(r, "scope %q is disallowed", scope)
		}
		return violation(r, "scope %q is disallowed, must be one of: %s", scope, strings.Join(r.Options, ", "))
	}
	return nil
}

type ScopeFormat struct {
	Severity Level  `json:"level,omitempty"`
	Format   string `json:"format"`
	re       pattern
}

func (r *ScopeFormat) Name() string { return "scope-format" }
func (r *ScopeFormat) Level() Level { return r.Severity.orDefault() }

func (r *ScopeFormat) Validate(msg *commit.Message) *Violation {
	scope, ok := msg.Scope()
	if !ok {
		return nil
	}
	return checkFormat(r, &r.re, r.Format, "scope", scope)
}

type ScopeMaxLength struct {
	Severity Level `json:"level,omitempty"`
	Length   int   `json:"length"`
}

func (r *ScopeMaxLength) Name() string { return "scope-max-length" }
func (r *ScopeMaxLength) Level() Level { return r.Severity.orDefault() }

func (r *ScopeMaxLength) Validate(msg *commit.Message) *Violation {
	scope, ok := msg.Scope()
	if !ok {
		return nil
	}
	return checkMaxLength(r, r.Length, "scope", scope)
}
