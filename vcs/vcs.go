// Package vcs abstracts version control systems. Currently just git.
package vcs

import (
	"context"
	"fmt"

	"github.com/jeffrom/commitlint/model"
)

type NotFoundError struct {
	Ref string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("vcs: ref %q not found", e.Ref)
}

type Interface interface {
	// ReadCommits returns the commits selected by query, which is anything
	// git log accepts as a revision range, newest first.
	ReadCommits(ctx context.Context, query string) ([]*model.Commit, error)

	// GitDir returns the path of the repository's git directory.
	GitDir(ctx context.Context) (string, error)
}
