package rule

import (
	"strings"

	"github.com/blang/semver/v4"

	"github.com/jeffrom/commitlint/commit"
)

type FootersEmpty struct {
	Severity Level `json:"level,omitempty"`
}

func (r *FootersEmpty) Name() string { return "footers-empty" }
func (r *FootersEmpty) Level() Level { return r.Severity.orDefault() }

func (r *FootersEmpty) Validate(msg *commit.Message) *Violation {
	if len(msg.Footers()) == 0 {
		return violation(r, "footers are empty")
	}
	return nil
}

// BreakingChangeFooter requires a subject with a "!" marker to explain itself
// in a BREAKING CHANGE footer.
type BreakingChangeFooter struct {
	Severity Level `json:"level,omitempty"`
}

func (r *BreakingChangeFooter) Name() string { return "breaking-change-footer" }
func (r *BreakingChangeFooter) Level() Level { return r.Severity.orDefault() }

func (r *BreakingChangeFooter) Validate(msg *commit.Message) *Violation {
	s, ok := msg.Structured()
	if !ok || !s.Breaking {
		return nil
	}
	if !msg.Footers().HasBreakingChange() {
		return violation(r, "breaking change marker requires a %q footer", commit.BreakingChangeToken)
	}
	return nil
}

const ReleaseAsToken = "Release-As"

// ReleaseAs checks that Release-As footers name a semantic version. A leading
// "v" is allowed.
type ReleaseAs struct {
	Severity Level `json:"level,omitempty"`
}

func (r *ReleaseAs) Name() string { return "release-as" }
func (r *ReleaseAs) Level() Level { return r.Severity.orDefault() }

func (r *ReleaseAs) Validate(msg *commit.Message) *Violation {
	for _, f := range msg.Footers() {
		if !strings.EqualFold(f.Token, ReleaseAsToken) {
			continue
		}
		v := strings.TrimPrefix(strings.TrimSpace(f.Value), "v")
		if _, err := semver.Parse(v); err != nil {
			return violation(r, "%s %q is not a valid version: %v", f.Token, f.Value, err)
		}
	}
	return nil
}
