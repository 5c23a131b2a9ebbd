// Package runner manages command-line execution
package runner

import (
	"github.com/charmbracelet/log"

	"github.com/jeffrom/commitlint/config"
	"github.com/jeffrom/commitlint/vcs"
)

type Runner struct {
	cfg   config.Config
	vcs   vcs.Interface
	rules RuleSet
	log   *log.Logger
}

func New(cfg config.Config, vcs vcs.Interface) *Runner {
	return &Runner{
		cfg:   cfg,
		vcs:   vcs,
		rules: &cfg.Rules,
		log:   cfg.Logger(),
	}
}

// WithRules replaces the configured rules.
func (r *Runner) WithRules(rules RuleSet) *Runner {
	r.rules = rules
	return r
}

// revRange builds a git revision range. to defaults to HEAD, and an empty from
// selects all of to's history.
func revRange(from, to string) string {
	if to == "" {
		to = "HEAD"
	}
	if from == "" {
		return to
	}
	return from + ".." + to
}
