package commit

import "testing"

func TestParseSubject(t *testing.T) {
	tcs := []struct {
		name   string
		in     string
		ok     bool
		expect Structured
	}{
		{
			name:   "type",
			in:     "fix: correct bug",
			ok:     true,
			expect: Structured{Type: "fix", Description: "correct bug"},
		},
		{
			name:   "scope",
			in:     "feat(parser): add support",
			ok:     true,
			expect: Structured{Type: "feat", Scope: "parser", Description: "add support"},
		},
		{
			name:   "breaking",
			in:     "feat!: drop node 12",
			ok:     true,
			expect: Structured{Type: "feat", Breaking: true, Description: "drop node 12"},
		},
		{
			name:   "breaking-scope",
			in:     "refactor(api)!: rename endpoints",
			ok:     true,
			expect: Structured{Type: "refactor", Scope: "api", Breaking: true, Description: "rename endpoints"},
		},
		{
			name:   "scope-with-spaces",
			in:     "docs(read me): fix typo",
			ok:     true,
			expect: Structured{Type: "docs", Scope: "read me", Description: "fix typo"},
		},
		{
			name:   "colon-in-description",
			in:     "chore: bump: again",
			ok:     true,
			expect: Structured{Type: "chore", Description: "bump: again"},
		},
		{name: "no-colon", in: "update docs"},
		{name: "no-space", in: "fix:correct bug"},
		{name: "empty-description", in: "fix: "},
		{name: "empty-type", in: ": nothing"},
		{name: "empty-scope", in: "feat(): nothing"},
		{name: "unclosed-scope", in: "feat(parser: nothing"},
		{name: "nested-scope", in: "feat(a(b)): nothing"},
		{name: "space-in-type", in: "new feature: nothing"},
		{name: "bang-after-colon", in: "feat:! nothing"},
		{name: "empty", in: ""},
		{name: "multiline", in: "feat: one\ntwo"},
		{name: "case-sensitive-separator", in: "feat :x"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			s, ok := ParseSubject(tc.in)
			if ok != tc.ok {
				t.Fatalf("expected match %v, got %v (%+v)", tc.ok, ok, s)
			}
			if !ok {
				return
			}
			tc.expect.Raw = tc.in
			if s != tc.expect {
				t.Errorf("expected %+v, got %+v", tc.expect, s)
			}
			if s.Text() != tc.in {
				t.Errorf("expected text %q, got %q", tc.in, s.Text())
			}
		})
	}
}

func TestSubjectText(t *testing.T) {
	var s Subject = Unstructured("update docs")
	if s.Text() != "update docs" {
		t.Fatalf("expected %q, got %q", "update docs", s.Text())
	}
	if _, ok := parseSubject("update docs").(Unstructured); !ok {
		t.Fatal("expected unstructured subject")
	}
	if _, ok := parseSubject("fix: it").(Structured); !ok {
		t.Fatal("expected structured subject")
	}
}
