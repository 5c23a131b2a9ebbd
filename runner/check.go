package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeffrom/commitlint/commit"
)

// CheckFailure is returned when at least one message has an error level
// violation. It carries every result so the whole report can be written.
type CheckFailure struct {
	Results Results
}

func (cf CheckFailure) Error() string {
	errs, _ := cf.Results.Counts()
	return fmt.Sprintf("%d check(s) failed", errs)
}

func (cf CheckFailure) Is(other error) bool {
	_, ok := other.(CheckFailure)
	return ok
}

func (cf CheckFailure) WriteFailure(w io.Writer) error {
	return cf.Results.WriteSummary(w)
}

// EditMessageFile is the file git hands to commit-msg hooks, relative to the
// git directory.
const EditMessageFile = "COMMIT_EDITMSG"

const scissorsLine = "# ------------------------ >8 ------------------------"

// CheckMessages checks each raw commit message.
func (r *Runner) CheckMessages(ctx context.Context, raws []string) (Results, error) {
	var results Results
	for _, raw := range raws {
		res, err := r.validate(ctx, "", raw)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, results.Err()
}

// CheckReadMessage reads a single message from rdr. Git comment lines are
// removed first, as git does when committing.
func (r *Runner) CheckReadMessage(ctx context.Context, rdr io.Reader) (Results, error) {
	raw, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}
	return r.CheckMessages(ctx, []string{cleanupMessage(string(raw))})
}

// CheckEditFile checks the message file of a commit-msg hook. An empty path
// means COMMIT_EDITMSG in the repository's git directory.
func (r *Runner) CheckEditFile(ctx context.Context, p string) (Results, error) {
	if p == "" {
		gitDir, err := r.vcs.GitDir(ctx)
		if err != nil {
			return nil, err
		}
		p = filepath.Join(gitDir, EditMessageFile)
	}
	r.log.Debug("reading edit file", "path", p)

	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return r.CheckReadMessage(ctx, f)
}

// CheckCommits checks the messages of the commits in from..to.
func (r *Runner) CheckCommits(ctx context.Context, from, to string) (Results, error) {
	commits, err := r.vcs.ReadCommits(ctx, revRange(from, to))
	if err != nil {
		return nil, err
	}

	var results Results
	for _, c := range commits {
		r.log.Debug("checking commit", "commit", c.ShortID(), "title", c.Title())
		res, err := r.validate(ctx, c.ID, c.Message)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, results.Err()
}

func (r *Runner) validate(ctx context.Context, commitID, raw string) (*Result, error) {
	res, err := Validate(ctx, commit.Parse(raw), r.rules)
	if err != nil {
		return nil, err
	}
	res.CommitID = commitID
	r.log.Debug("validated", "commit", shortID(commitID), "subject", res.Message.Header(), "count", len(res.Violations))
	return res, nil
}

// cleanupMessage drops comment lines and everything below the scissors line.
func cleanupMessage(s string) string {
	var cleaned []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimRight(line, "\r") == scissorsLine {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return strings.Join(cleaned, "\n")
}

func shortID(id string) string {
	if len(id) < 8 {
		return id
	}
	return id[:8]
}
