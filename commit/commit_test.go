package commit

import (
	"encoding/json"
	"reflect"
	"testing"
)

type expectMessage struct {
	subject     string
	typ         string
	scope       string
	description string
	structured  bool
	hasScope    bool
	body        string
	footers     Footers
	breaking    bool
}

func checkMessage(t *testing.T, m *Message, expect expectMessage) {
	t.Helper()
	if m.Subject() == nil {
		t.Fatal("expected subject to always be set")
	}
	if m.Header() != expect.subject {
		t.Errorf("expected subject %q, got %q", expect.subject, m.Header())
	}

	typ, tok := m.Type()
	desc, dok := m.Description()
	scope, sok := m.Scope()
	if tok != expect.structured || dok != expect.structured {
		t.Fatalf("expected structured=%v, got type=%v description=%v", expect.structured, tok, dok)
	}
	if typ != expect.typ {
		t.Errorf("expected type %q, got %q", expect.typ, typ)
	}
	if desc != expect.description {
		t.Errorf("expected description %q, got %q", expect.description, desc)
	}
	if sok != expect.hasScope || scope != expect.scope {
		t.Errorf("expected scope %q (%v), got %q (%v)", expect.scope, expect.hasScope, scope, sok)
	}
	if !expect.structured {
		if _, ok := m.Subject().(Unstructured); !ok {
			t.Errorf("expected unstructured subject, got %T", m.Subject())
		}
	}

	body, bok := m.Body()
	if bok != (expect.body != "") || body != expect.body {
		t.Errorf("expected body %q, got %q (%v)", expect.body, body, bok)
	}
	if !reflect.DeepEqual(m.Footers(), expect.footers) {
		t.Errorf("expected footers %+v, got %+v", expect.footers, m.Footers())
	}
	if m.Breaking() != expect.breaking {
		t.Errorf("expected breaking=%v, got %v", expect.breaking, m.Breaking())
	}
}

func TestParse(t *testing.T) {
	tcs := []struct {
		name   string
		raw    string
		expect expectMessage
	}{
		{
			name: "empty",
		},
		{
			name: "scoped",
			raw:  "feat(parser): add support",
			expect: expectMessage{
				subject:     "feat(parser): add support",
				typ:         "feat",
				scope:       "parser",
				hasScope:    true,
				description: "add support",
				structured:  true,
			},
		},
		{
			name: "unscoped",
			raw:  "fix: correct bug",
			expect: expectMessage{
				subject:     "fix: correct bug",
				typ:         "fix",
				description: "correct bug",
				structured:  true,
			},
		},
		{
			name:   "unstructured",
			raw:    "update docs",
			expect: expectMessage{subject: "update docs"},
		},
		{
			name: "body-and-breaking-footer",
			raw:  "feat: x\n\nSome body text.\n\nBREAKING CHANGE: changes API",
			expect: expectMessage{
				subject:     "feat: x",
				typ:         "feat",
				description: "x",
				structured:  true,
				body:        "Some body text.",
				footers:     Footers{{Token: "BREAKING CHANGE", Separator: ": ", Value: "changes API"}},
				breaking:    true,
			},
		},
		{
			name: "breaking-marker",
			raw:  "feat(api)!: remove v1",
			expect: expectMessage{
				subject:     "feat(api)!: remove v1",
				typ:         "feat",
				scope:       "api",
				hasScope:    true,
				description: "remove v1",
				structured:  true,
				breaking:    true,
			},
		},
		{
			name: "unstructured-with-body",
			raw:  "Merge branch 'main'\n\nConflicts resolved.\n\nSigned-off-by: someone",
			expect: expectMessage{
				subject: "Merge branch 'main'",
				body:    "Conflicts resolved.",
				footers: Footers{{Token: "Signed-off-by", Separator: ": ", Value: "someone"}},
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			m := Parse(tc.raw)
			if m.Raw() != tc.raw {
				t.Fatalf("expected raw %q, got %q", tc.raw, m.Raw())
			}
			checkMessage(t, m, tc.expect)

			again := Parse(m.Raw())
			if !reflect.DeepEqual(m, again) {
				t.Errorf("expected reparsing raw to be identical:\n%+v\n%+v", m, again)
			}
		})
	}
}

func TestMessageFootersCopy(t *testing.T) {
	m := Parse("fix: x\n\nRefs: 1")
	fs := m.Footers()
	fs[0].Value = "changed"
	if v, _ := m.Footers().Get("Refs"); v != "1" {
		t.Fatalf("expected message footers to be unchanged, got %q", v)
	}
}

func TestMessageJSON(t *testing.T) {
	m := Parse("feat(api)!: x\n\nRefs: 1")
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	for k, v := range map[string]interface{}{
		"subject":     "feat(api)!: x",
		"type":        "feat",
		"scope":       "api",
		"description": "x",
		"breaking":    true,
	} {
		if got[k] != v {
			t.Errorf("expected %s=%v, got %v", k, v, got[k])
		}
	}
	if _, ok := got["body"]; ok {
		t.Error("expected body to be omitted")
	}

	b, err = json.Marshal(Parse("update docs"))
	if err != nil {
		t.Fatal(err)
	}
	got = nil
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if _, ok := got["type"]; ok {
		t.Errorf("expected type to be omitted: %s", b)
	}
}
