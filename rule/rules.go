package rule

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeffrom/commitlint/commit"
)

// Rules is the configurable rule set. A nil field disables its rule. Rules are
// evaluated in field order.
type Rules struct {
	SubjectEmpty         *SubjectEmpty         `json:"subject-empty,omitempty"`
	SubjectMaxLength     *SubjectMaxLength     `json:"subject-max-length,omitempty"`
	TypeEmpty            *TypeEmpty            `json:"type-empty,omitempty"`
	Type                 *Type                 `json:"type,omitempty"`
	TypeFormat           *TypeFormat           `json:"type-format,omitempty"`
	TypeMaxLength        *TypeMaxLength        `json:"type-max-length,omitempty"`
	ScopeEmpty           *ScopeEmpty           `json:"scope-empty,omitempty"`
	Scope                *Scope                `json:"scope,omitempty"`
	ScopeFormat          *ScopeFormat          `json:"scope-format,omitempty"`
	ScopeMaxLength       *ScopeMaxLength       `json:"scope-max-length,omitempty"`
	DescriptionEmpty     *DescriptionEmpty     `json:"description-empty,omitempty"`
	DescriptionFormat    *DescriptionFormat    `json:"description-format,omitempty"`
	DescriptionCase      *DescriptionCase      `json:"description-case,omitempty"`
	DescriptionMaxLength *DescriptionMaxLength `json:"description-max-length,omitempty"`
	BodyEmpty            *BodyEmpty            `json:"body-empty,omitempty"`
	BodyMaxLineLength    *BodyMaxLineLength    `json:"body-max-line-length,omitempty"`
	FootersEmpty         *FootersEmpty         `json:"footers-empty,omitempty"`
	BreakingChangeFooter *BreakingChangeFooter `json:"breaking-change-footer,omitempty"`
	ReleaseAs            *ReleaseAs            `json:"release-as,omitempty"`
}

// List returns the enabled rules in evaluation order. Rules at LevelIgnore
// are left out.
func (rs *Rules) List() []Rule {
	var rules []Rule
	add := func(r Rule, enabled bool) {
		if enabled && r.Level() != LevelIgnore {
			rules = append(rules, r)
		}
	}

	add(rs.SubjectEmpty, rs.SubjectEmpty != nil)
	add(rs.SubjectMaxLength, rs.SubjectMaxLength != nil)
	add(rs.TypeEmpty, rs.TypeEmpty != nil)
	add(rs.Type, rs.Type != nil)
	add(rs.TypeFormat, rs.TypeFormat != nil)
	add(rs.TypeMaxLength, rs.TypeMaxLength != nil)
	add(rs.ScopeEmpty, rs.ScopeEmpty != nil)
	add(rs.Scope, rs.Scope != nil)
	add(rs.ScopeFormat, rs.ScopeFormat != nil)
	add(rs.ScopeMaxLength, rs.ScopeMaxLength != nil)
	add(rs.DescriptionEmpty, rs.DescriptionEmpty != nil)
	add(rs.DescriptionFormat, rs.DescriptionFormat != nil)
	add(rs.DescriptionCase, rs.DescriptionCase != nil)
	add(rs.DescriptionMaxLength, rs.DescriptionMaxLength != nil)
	add(rs.BodyEmpty, rs.BodyEmpty != nil)
	add(rs.BodyMaxLineLength, rs.BodyMaxLineLength != nil)
	add(rs.FootersEmpty, rs.FootersEmpty != nil)
	add(rs.BreakingChangeFooter, rs.BreakingChangeFooter != nil)
	add(rs.ReleaseAs, rs.ReleaseAs != nil)
	return rules
}

// Validate runs every enabled rule against msg and returns the violations in
// rule order. A message without violations gets an empty, non-nil slice.
func (rs *Rules) Validate(ctx context.Context, msg *commit.Message) ([]Violation, error) {
	violations := []Violation{}
	for _, r := range rs.List() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if v := r.Validate(msg); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations, nil
}

// Check reports configuration mistakes, such as formats that don't compile.
// It also compiles formats ahead of time.
func (rs *Rules) Check() error {
	var errs []error
	checkLength := func(name string, n int) {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("rule %s: length must be greater than 0, got %d", name, n))
		}
	}
	checkFormat := func(name string, p *pattern, src string) {
		if _, err := p.get(src); err != nil {
			errs = append(errs, fmt.Errorf("rule %s: %w", name, err))
		}
	}

	if r := rs.SubjectMaxLength; r != nil {
		checkLength(r.Name(), r.Length)
	}
	if r := rs.TypeFormat; r != nil {
		checkFormat(r.Name(), &r.re, r.Format)
	}
	if r := rs.TypeMaxLength; r != nil {
		checkLength(r.Name(), r.Length)
	}
	if r := rs.ScopeFormat; r != nil {
		checkFormat(r.Name(), &r.re, r.Format)
	}
	if r := rs.ScopeMaxLength; r != nil {
		checkLength(r.Name(), r.Length)
	}
	if r := rs.DescriptionFormat; r != nil {
		checkFormat(r.Name(), &r.re, r.Format)
	}
	if r := rs.DescriptionCase; r != nil {
		if err := r.check(); err != nil {
			errs = append(errs, err)
		}
	}
	if r := rs.DescriptionMaxLength; r != nil {
		checkLength(r.Name(), r.Length)
	}
	if r := rs.BodyMaxLineLength; r != nil {
		checkLength(r.Name(), r.Length)
	}
	return errors.Join(errs...)
}
