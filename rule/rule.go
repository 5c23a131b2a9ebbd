// Package rule contains the rules commit messages are checked against.
package rule

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jeffrom/commitlint/commit"
)

type Level int

const (
	_ Level = iota

	LevelIgnore
	LevelWarning
	LevelError
)

var ErrInvalidLevel = errors.New("rule: invalid level")

func (l Level) String() string {
	switch l {
	case LevelIgnore:
		return "ignore"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case 0:
		return "<UNSET>"
	default:
		return "<UNKNOWN>"
	}
}

func LevelFromString(s string) (Level, error) {
	switch s {
	case "ignore", "off":
		return LevelIgnore, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

func (l Level) MarshalJSON() ([]byte, error) {
	if l == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLevel, b)
	}
	lvl, err := LevelFromString(s)
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

// orDefault treats an unset level as an error, so a rule configured with only
// its options is enforced.
func (l Level) orDefault() Level {
	if l == 0 {
		return LevelError
	}
	return l
}

// Violation is a single rule failure.
type Violation struct {
	Rule    string `json:"rule"`
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s [%s] %s", v.Level, v.Rule, v.Message)
}

// Rule checks one property of a commit message.
type Rule interface {
	Name() string
	Level() Level

	// Validate returns nil when msg satisfies the rule.
	Validate(msg *commit.Message) *Violation
}

func violation(r Rule, format string, args ...interface{}) *Violation {
	return &Violation{
		Rule:    r.Name(),
		Level:   r.Level(),
		Message: fmt.Sprintf(format, args...),
	}
}
