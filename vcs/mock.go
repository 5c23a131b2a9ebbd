package vcs

import (
	"context"
	"time"

	"github.com/jeffrom/commitlint/model"
)

type Mock struct {
	t       time.Time
	gitDir  string
	commits []*model.Commit
	missing map[string]bool

	// Queries records every query passed to ReadCommits.
	Queries []string
}

func NewMock() *Mock {
	return &Mock{
		t:      time.Now(),
		gitDir: ".git",
	}
}

func (m *Mock) SetCommits(commits ...*model.Commit) *Mock {
	finalCommits := make([]*model.Commit, len(commits))
	for i, commit := range commits {
		c := *commit
		if c.CommitterDate.IsZero() {
			c.CommitterDate = m.t
			m.t = m.t.Add(-time.Minute)
		}
		finalCommits[i] = &c
	}
	m.commits = finalCommits
	return m
}

func (m *Mock) SetGitDir(dir string) *Mock {
	m.gitDir = dir
	return m
}

// SetMissing makes ReadCommits fail with NotFoundError for the given queries.
func (m *Mock) SetMissing(queries ...string) *Mock {
	m.missing = make(map[string]bool)
	for _, q := range queries {
		m.missing[q] = true
	}
	return m
}

func (m *Mock) ReadCommits(ctx context.Context, query string) ([]*model.Commit, error) {
	m.Queries = append(m.Queries, query)
	if m.missing[query] {
		return nil, NotFoundError{Ref: query}
	}
	return m.commits, nil
}

func (m *Mock) GitDir(ctx context.Context) (string, error) {
	return m.gitDir, nil
}
