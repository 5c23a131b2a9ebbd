package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jeffrom/commitlint/model"
	"github.com/jeffrom/commitlint/vcs"
)

func TestStats(t *testing.T) {
	m := vcs.NewMock().SetCommits(
		&model.Commit{ID: "aaaaaaaaaaaa", Message: "feat(parser): cool feature"},
		&model.Commit{ID: "bbbbbbbbbbbb", Message: "fix(parser): cool fix"},
		&model.Commit{ID: "cccccccccccc", Message: "fix: another fix"},
		&model.Commit{ID: "dddddddddddd", Message: "cool thing"},
	)
	rnr := New(newTestConfig(nil), m)

	stats, err := rnr.Stats(context.Background(), "", "main")
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Queries) != 1 || m.Queries[0] != "main" {
		t.Errorf("expected query main, got %q", m.Queries)
	}
	if stats.Commits != 4 {
		t.Errorf("expected 4 commits, got %d", stats.Commits)
	}

	tcs := []struct {
		bucket string
		name   string
		expect int64
	}{
		{bucket: "commit_type", name: "fix", expect: 2},
		{bucket: "commit_type", name: "feat", expect: 1},
		{bucket: "commit_type", name: "", expect: 1},
		{bucket: "scope", name: "parser", expect: 2},
		{bucket: "scope", name: "", expect: 2},
		{bucket: "violation", name: "type-empty", expect: 1},
		{bucket: "violation", name: "description-empty", expect: 1},
		{bucket: "violation", name: "subject-empty", expect: 0},
	}
	for _, tc := range tcs {
		if n := stats.Get(tc.bucket, tc.name); n != tc.expect {
			t.Errorf("%s/%q: expected %d, got %d", tc.bucket, tc.name, tc.expect, n)
		}
	}

	b := &bytes.Buffer{}
	if err := stats.TextSummary(b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	t.Logf("summary:\n%s", out)
	for _, expect := range []string{"4 commits", "Commit Type:", "Scope:", "Violation:", "n/a"} {
		if !strings.Contains(out, expect) {
			t.Errorf("expected summary to contain %q", expect)
		}
	}
	if strings.Index(out, "Commit Type:") > strings.Index(out, "Scope:") {
		t.Error("expected buckets to be sorted")
	}
}

func TestStatsNotFound(t *testing.T) {
	rnr := New(newTestConfig(nil), vcs.NewMock().SetMissing("v9..HEAD"))
	if _, err := rnr.Stats(context.Background(), "v9", ""); err == nil {
		t.Fatal("expected error")
	}
}
