package rule

import (
	"strings"
	"unicode/utf8"

	"github.com/jeffrom/commitlint/commit"
)

type BodyEmpty struct {
	Severity Level `json:"level,omitempty"`
}

func (r *BodyEmpty) Name() string { return "body-empty" }
func (r *BodyEmpty) Level() Level { return r.Severity.orDefault() }

func (r *BodyEmpty) Validate(msg *commit.Message) *Violation {
	if _, ok := msg.Body(); !ok {
		return violation(r, "body is empty")
	}
	return nil
}

// BodyMaxLineLength limits each line of the body, which keeps messages
// readable in git log.
type BodyMaxLineLength struct {
	Severity Level `json:"level,omitempty"`
	Length   int   `json:"length"`
}

func (r *BodyMaxLineLength) Name() string { return "body-max-line-length" }
func (r *BodyMaxLineLength) Level() Level { return r.Severity.orDefault() }

func (r *BodyMaxLineLength) Validate(msg *commit.Message) *Violation {
	body, ok := msg.Body()
	if !ok {
		return nil
	}
	for i, line := range strings.Split(body, "\n") {
		if n := utf8.RuneCountInString(line); n > r.Length {
			return violation(r, "body line %d is longer than %d characters (%d)", i+1, r.Length, n)
		}
	}
	return nil
}
