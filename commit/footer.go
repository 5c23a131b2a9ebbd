package commit

import "regexp"

// Breaking change footer tokens. The hyphenated form is a synonym.
const (
	BreakingChangeToken       = "BREAKING CHANGE"
	BreakingChangeTokenHyphen = "BREAKING-CHANGE"
)

// Footer is a single trailer line, such as "Refs: 123" or "Closes #42".
type Footer struct {
	Token     string `json:"token"`
	Separator string `json:"separator"`
	Value     string `json:"value"`
}

// IsBreakingChange reports whether the footer announces a breaking change.
func (f Footer) IsBreakingChange() bool {
	return f.Token == BreakingChangeToken || f.Token == BreakingChangeTokenHyphen
}

func (f Footer) String() string {
	return f.Token + f.Separator + f.Value
}

// Footers are kept in message order. Tokens may repeat.
type Footers []Footer

// Get returns the value of the first footer with the given token.
func (fs Footers) Get(token string) (string, bool) {
	for _, f := range fs {
		if f.Token == token {
			return f.Value, true
		}
	}
	return "", false
}

// Values returns every value for token, in order.
func (fs Footers) Values(token string) []string {
	var vals []string
	for _, f := range fs {
		if f.Token == token {
			vals = append(vals, f.Value)
		}
	}
	return vals
}

func (fs Footers) Has(token string) bool {
	_, ok := fs.Get(token)
	return ok
}

// HasBreakingChange reports whether any footer is a breaking change footer.
func (fs Footers) HasBreakingChange() bool {
	for _, f := range fs {
		if f.IsBreakingChange() {
			return true
		}
	}
	return false
}

var footerRE = regexp.MustCompile(`^(?P<token>BREAKING CHANGE|[^\s:#]+)(?P<sep>: | #)(?P<value>.+)$`)

func parseFooter(line string) (Footer, bool) {
	m := footerRE.FindStringSubmatch(line)
	if m == nil {
		return Footer{}, false
	}
	return Footer{
		Token:     m[footerRE.SubexpIndex("token")],
		Separator: m[footerRE.SubexpIndex("sep")],
		Value:     m[footerRE.SubexpIndex("value")],
	}, true
}
