package commit

import "regexp"

// Subject is the first paragraph of a commit message. It is either
// Unstructured or Structured.
type Subject interface {
	// Text returns the subject exactly as it appeared in the message, trimmed.
	Text() string
	isSubject()
}

// Unstructured is a subject that doesn't follow the conventional commit
// header format.
type Unstructured string

func (u Unstructured) Text() string { return string(u) }
func (Unstructured) isSubject()     {}

// Structured is a subject that matched
//
//	<type>[(<scope>)][!]: <description>
type Structured struct {
	Raw         string `json:"-"`
	Type        string `json:"type"`
	Scope       string `json:"scope,omitempty"`
	Breaking    bool   `json:"breaking,omitempty"`
	Description string `json:"description"`
}

func (s Structured) Text() string { return s.Raw }
func (Structured) isSubject()     {}

// HasScope reports whether the subject had a parenthesized scope. The grammar
// doesn't allow empty scopes, so an empty Scope means there was none.
func (s Structured) HasScope() bool { return s.Scope != "" }

var subjectRE = regexp.MustCompile(`^(?P<type>[^\s():!]+)(?:\((?P<scope>[^()\r\n]+)\))?(?P<breaking>!)?: (?P<description>[^\r\n]+)$`)

// ParseSubject decomposes a subject line into its conventional commit parts.
// It returns false if s doesn't match the header grammar as a whole.
func ParseSubject(s string) (Structured, bool) {
	m := subjectRE.FindStringSubmatch(s)
	if m == nil {
		return Structured{}, false
	}
	return Structured{
		Raw:         s,
		Type:        m[subjectRE.SubexpIndex("type")],
		Scope:       m[subjectRE.SubexpIndex("scope")],
		Breaking:    m[subjectRE.SubexpIndex("breaking")] != "",
		Description: m[subjectRE.SubexpIndex("description")],
	}, true
}

func parseSubject(s string) Subject {
	if st, ok := ParseSubject(s); ok {
		return st
	}
	return Unstructured(s)
}
