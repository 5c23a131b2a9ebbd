package rule

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeffrom/commitlint/commit"
)

type DescriptionEmpty struct {
	Severity Level `json:"level,omitempty"`
}

func (r *DescriptionEmpty) Name() string { return "description-empty" }
func (r *DescriptionEmpty) Level() Level { return r.Severity.orDefault() }

func (r *DescriptionEmpty) Validate(msg *commit.Message) *Violation {
	if desc, ok := msg.Description(); !ok || desc == "" {
		return violation(r, "description is empty or missing")
	}
	return nil
}

type DescriptionFormat struct {
	Severity Level  `json:"level,omitempty"`
	Format   string `json:"format"`
	re       pattern
}

func (r *DescriptionFormat) Name() string { return "description-format" }
func (r *DescriptionFormat) Level() Level { return r.Severity.orDefault() }

func (r *DescriptionFormat) Validate(msg *commit.Message) *Violation {
	desc, ok := msg.Description()
	if !ok {
		return nil
	}
	return checkFormat(r, &r.re, r.Format, "description", desc)
}

type DescriptionMaxLength struct {
	Severity Level `json:"level,omitempty"`
	Length   int   `json:"length"`
}

func (r *DescriptionMaxLength) Name() string { return "description-max-length" }
func (r *DescriptionMaxLength) Level() Level { return r.Severity.orDefault() }

func (r *DescriptionMaxLength) Validate(msg *commit.Message) *Violation {
	desc, ok := msg.Description()
	if !ok {
		return nil
	}
	return checkMaxLength(r, r.Length, "description", desc)
}

// Case names accepted by DescriptionCase.
const (
	LowerCase    = "lower-case"
	UpperCase    = "upper-case"
	SentenceCase = "sentence-case"
	TitleCase    = "title-case"
)

// Casers aren't safe for concurrent use, so each check builds its own.
var caseChecks = map[string]func(s string) bool{
	LowerCase: func(s string) bool {
		return cases.Lower(language.Und).String(s) == s
	},
	UpperCase: func(s string) bool {
		return cases.Upper(language.Und).String(s) == s
	},
	TitleCase: func(s string) bool {
		return cases.Title(language.Und, cases.NoLower).String(s) == s
	},
	SentenceCase: func(s string) bool {
		_, size := utf8.DecodeRuneInString(s)
		first := s[:size]
		return cases.Upper(language.Und).String(first) == first
	},
}

// DescriptionCase requires the description to be written in Case.
type DescriptionCase struct {
	Severity Level  `json:"level,omitempty"`
	Case     string `json:"case"`
}

func (r *DescriptionCase) Name() string { return "description-case" }
func (r *DescriptionCase) Level() Level { return r.Severity.orDefault() }

func (r *DescriptionCase) Validate(msg *commit.Message) *Violation {
	desc, ok := msg.Description()
	if !ok {
		return nil
	}
	check, ok := caseChecks[r.Case]
	if !ok {
		return violation(r, "unknown case %q", r.Case)
	}
	if !check(desc) {
		return violation(r, "description %q must be %s", desc, r.Case)
	}
	return nil
}

func (r *DescriptionCase) check() error {
	if _, ok := caseChecks[r.Case]; !ok {
		return fmt.Errorf("rule %s: unknown case %q", r.Name(), r.Case)
	}
	return nil
}
