package gitcli

import (
	"fmt"
	"strings"
	"time"
)

// GIT_ISO8601 is the date format of git log's %ai and %ci
// 2020-08-17 16:26:10 -0700
const GIT_ISO8601 = "2006-01-02 15:04:05 -0700"

// ParseGitISO8601 parses an author or committer date from git log.
func ParseGitISO8601(s string) (time.Time, error) {
	t, err := time.Parse(GIT_ISO8601, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("gitcli: invalid commit date: %w", err)
	}
	return t, nil
}
