// Package commitlint checks commit messages against the Conventional Commits
// format and a configurable set of rules.
//
// Related packages: commit, rule, config, runner, model, vcs, vcs/gitcli
package commitlint

import (
	"github.com/jeffrom/commitlint/commit"
	"github.com/jeffrom/commitlint/config"
)

// Config holds the rule set and output settings for commitlint.
//
// See "go doc github.com/jeffrom/commitlint/config Config" for more information.
type Config = config.Config

// Message is a parsed commit message.
type Message = commit.Message
