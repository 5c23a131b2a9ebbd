package rule

import "github.com/jeffrom/commitlint/commit"

// SubjectEmpty fails when the message has no subject at all.
type SubjectEmpty struct {
	Severity Level `json:"level,omitempty"`
}

func (r *SubjectEmpty) Name() string { return "subject-empty" }
func (r *SubjectEmpty) Level() Level { return r.Severity.orDefault() }

func (r *SubjectEmpty) Validate(msg *commit.Message) *Violation {
	if msg.Header() == "" {
		return violation(r, "subject is empty")
	}
	return nil
}

// SubjectMaxLength limits the length of the whole subject, including type and
// scope.
type SubjectMaxLength struct {
	Severity Level `json:"level,omitempty"`
	Length   int   `json:"length"`
}

func (r *SubjectMaxLength) Name() string { return "subject-max-length" }
func (r *SubjectMaxLength) Level() Level { return r.Severity.orDefault() }

func (r *SubjectMaxLength) Validate(msg *commit.Message) *Violation {
	return checkMaxLength(r, r.Length, "subject", msg.Header())
}
