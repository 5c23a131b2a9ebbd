// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jeffrom/commitlint/config"
	"github.com/jeffrom/commitlint/model"
	"github.com/jeffrom/commitlint/vcs"
)

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg config.Config
	wd  string
	log *log.Logger
}

func New(cfg config.Config, wd string) *Git {
	return &Git{
		cfg: cfg,
		wd:  wd,
		log: cfg.Logger(),
	}
}

const EXPECTED_LOG_PARTS = 8

// Records are framed with control characters, which can't be typed into a
// commit message by accident.
const (
	logStart = "\x00"
	logSep   = "\x01"
	logEnd   = "\x02"
)

const logFormat = "--pretty=tformat:%x00%H%x01%aN%x01%ae%x01%ai%x01%cN%x01%ce%x01%ci%x01%B%x02"

func (g *Git) ReadCommits(ctx context.Context, query string) ([]*model.Commit, error) {
	args := []string{"log", logFormat}
	if query != "" {
		args = append(args, query)
	}
	b, err := g.call(ctx, args)
	if err != nil {
		if isUnknownRevision(err) {
			return nil, vcs.NotFoundError{Ref: query}
		}
		return nil, err
	}
	commits, err := parseLog(string(b))
	if err != nil {
		return nil, err
	}
	g.log.Debug("read commits", "query", query, "count", len(commits))
	return commits, nil
}

// parseLog reads the output of git log formatted with logFormat. Messages can
// span multiple lines, so records are split on their markers instead of on
// newlines.
func parseLog(out string) ([]*model.Commit, error) {
	var commits []*model.Commit
	records := strings.Split(out, logStart)
	if strings.TrimSpace(records[0]) != "" {
		return nil, fmt.Errorf("gitcli: unexpected git log output: %q", records[0])
	}

	for _, rec := range records[1:] {
		rec = strings.TrimRight(rec, "\n")
		if !strings.HasSuffix(rec, logEnd) {
			return nil, fmt.Errorf("gitcli: unterminated git log record: %q", rec)
		}
		rec = strings.TrimSuffix(rec, logEnd)

		parts := strings.SplitN(rec, logSep, EXPECTED_LOG_PARTS)
		if len(parts) != EXPECTED_LOG_PARTS {
			return nil, fmt.Errorf("gitcli: expected %d parts from git log, got %d", EXPECTED_LOG_PARTS, len(parts))
		}

		authorDate, err := ParseGitISO8601(parts[3])
		if err != nil {
			return nil, err
		}
		committerDate, err := ParseGitISO8601(parts[6])
		if err != nil {
			return nil, err
		}

		commits = append(commits, &model.Commit{
			ID:             parts[0],
			Author:         parts[1],
			AuthorEmail:    parts[2],
			AuthorDate:     authorDate,
			Committer:      parts[4],
			CommitterEmail: parts[5],
			CommitterDate:  committerDate,
			Message:        parts[7],
		})
	}
	return commits, nil
}

func (g *Git) GitDir(ctx context.Context) (string, error) {
	b, err := g.call(ctx, []string{"rev-parse", "--git-dir"})
	if err != nil {
		return "", err
	}
	dir := strings.TrimSpace(string(b))
	if !filepath.IsAbs(dir) && g.wd != "" {
		dir = filepath.Join(g.wd, dir)
	}
	return dir, nil
}
