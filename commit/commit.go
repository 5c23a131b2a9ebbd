// Package commit parses commit messages into their conventional commit parts.
//
//	<type>[(<scope>)][!]: <description>
//
//	[body]
//
//	[footer(s)]
package commit

import "encoding/json"

// Message is a parsed commit message. It is immutable once returned by Parse
// and safe to share between goroutines.
type Message struct {
	raw     string
	subject Subject
	body    string
	footers Footers
}

// Parse builds a Message from raw. It never fails: anything that can't be
// decomposed is reported as absent through the accessors.
func Parse(raw string) *Message {
	subject, body, footers := Split(raw)
	return &Message{
		raw:     raw,
		subject: parseSubject(subject),
		body:    body,
		footers: footers,
	}
}

// Raw returns the message exactly as it was given to Parse.
func (m *Message) Raw() string { return m.raw }

func (m *Message) Subject() Subject { return m.subject }

// Header returns the subject text.
func (m *Message) Header() string {
	if m.subject == nil {
		return ""
	}
	return m.subject.Text()
}

// Structured returns the decomposed subject, if it followed the conventional
// format.
func (m *Message) Structured() (Structured, bool) {
	s, ok := m.subject.(Structured)
	return s, ok
}

func (m *Message) Type() (string, bool) {
	s, ok := m.Structured()
	return s.Type, ok
}

func (m *Message) Scope() (string, bool) {
	s, ok := m.Structured()
	return s.Scope, ok && s.HasScope()
}

func (m *Message) Description() (string, bool) {
	s, ok := m.Structured()
	return s.Description, ok
}

func (m *Message) Body() (string, bool) {
	return m.body, m.body != ""
}

// Footers returns a copy of the message footers, or nil if there were none.
func (m *Message) Footers() Footers {
	if m.footers == nil {
		return nil
	}
	fs := make(Footers, len(m.footers))
	copy(fs, m.footers)
	return fs
}

// Breaking reports whether the subject had a "!" marker or a footer announces
// a breaking change.
func (m *Message) Breaking() bool {
	if s, ok := m.Structured(); ok && s.Breaking {
		return true
	}
	return m.footers.HasBreakingChange()
}

type messageJSON struct {
	Raw         string  `json:"raw"`
	Subject     string  `json:"subject"`
	Type        string  `json:"type,omitempty"`
	Scope       string  `json:"scope,omitempty"`
	Breaking    bool    `json:"breaking,omitempty"`
	Description string  `json:"description,omitempty"`
	Body        string  `json:"body,omitempty"`
	Footers     Footers `json:"footers,omitempty"`
}

func (m *Message) MarshalJSON() ([]byte, error) {
	mj := messageJSON{
		Raw:      m.raw,
		Subject:  m.Header(),
		Breaking: m.Breaking(),
		Body:     m.body,
		Footers:  m.footers,
	}
	if s, ok := m.Structured(); ok {
		mj.Type = s.Type
		mj.Scope = s.Scope
		mj.Description = s.Description
	}
	return json.Marshal(mj)
}
