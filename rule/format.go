package rule

import (
	"fmt"
	"regexp"
	"sync"
	"unicode/utf8"
)

// pattern compiles a rule's format once. Later calls reuse the result, so
// rules are safe to share between goroutines whether or not Rules.Check ran.
type pattern struct {
	once sync.Once
	re   *regexp.Regexp
	err  error
}

func (p *pattern) get(src string) (*regexp.Regexp, error) {
	p.once.Do(func() {
		p.re, p.err = regexp.Compile(src)
		if p.err != nil {
			p.err = fmt.Errorf("rule: invalid format %q: %w", src, p.err)
		}
	})
	return p.re, p.err
}

func checkFormat(r Rule, p *pattern, src, part, value string) *Violation {
	re, err := p.get(src)
	if err != nil {
		return violation(r, "%v", err)
	}
	if !re.MatchString(value) {
		return violation(r, "%s %q doesn't match format %q", part, value, src)
	}
	return nil
}

func checkMaxLength(r Rule, max int, part, value string) *Violation {
	if n := utf8.RuneCountInString(value); n > max {
		return violation(r, "%s is longer than %d characters (%d)", part, max, n)
	}
	return nil
}

func oneOf(s string, l []string) bool {
	for _, cand := range l {
		if s == cand {
			return true
		}
	}
	return false
}
