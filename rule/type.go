package rule

import (
	"strings"

	"github.com/jeffrom/commitlint/commit"
)

type TypeEmpty struct {
	Severity Level `json:"level,omitempty"`
}

func (r *TypeEmpty) Name() string { return "type-empty" }
func (r *TypeEmpty) Level() Level { return r.Severity.orDefault() }

func (r *TypeEmpty) Validate(msg *commit.Message) *Violation {
	if typ, ok := msg.Type(); !ok || typ == "" {
		return violation(r, "type is empty or missing")
	}
	return nil
}

// Type restricts commit types to Options.
type Type struct {
	Severity Level    `json:"level,omitempty"`
	Options  []string `json:"options"`
}

func (r *Type) Name() string { return "type" }
func (r *Type) Level() Level { return r.Severity.orDefault() }

func (r *Type) Validate(msg *commit.Message) *Violation {
	typ, ok := msg.Type()
	if !ok {
		return nil
	}
	if !oneOf(typ, r.Options) {
		if len(r.Options) == 0 {
			return violation(r, "commit type %q is disallowed", typ)
		}
		return violation(r, "commit type %q is disallowed, must be one of: %s", typ, strings.Join(r.Options, ", "))
	}
	return nil
}

type TypeFormat struct {
	Severity Level  `json:"level,omitempty"`
	Format   string `json:"format"`
	re       pattern
}

func (r *TypeFormat) Name() string { return "type-format" }
func (r *TypeFormat) Level() Level { return r.Severity.orDefault() }

func (r *TypeFormat) Validate(msg *commit.Message) *Violation {
	typ, ok := msg.Type()
	if !ok {
		return nil
	}
	return checkFormat(r, &r.re, r.Format, "type", typ)
}

type TypeMaxLength struct {
	Severity Level `json:"level,omitempty"`
	Length   int   `json:"length"`
}

func (r *TypeMaxLength) Name() string { return "type-max-length" }
func (r *TypeMaxLength) Level() Level { return r.Severity.orDefault() }

func (r *TypeMaxLength) Validate(msg *commit.Message) *Violation {
	typ, ok := msg.Type()
	if !ok {
		return nil
	}
	return checkMaxLength(r, r.Length, "type", typ)
}
