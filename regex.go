package obelizmo

import (
	"iter"
	"regexp"
)

// Regexer is the minimal regular-expression capability consumed by the
// match helpers. All positions are half-open byte ranges into text. Any
// conforming implementation will do; Regexp adapts the standard library's
// regexp package.
type Regexer interface {
	// Match returns the first match in text.
	Match(text string) (start, end int, ok bool)
	// MatchPos returns the first match at or after byte position pos.
	MatchPos(pos int, text string) (start, end int, ok bool)
	// Iterate yields every non-overlapping match in text, left to right.
	Iterate(text string) iter.Seq[[2]int]
}

// Regexp wraps a compiled standard-library regexp as a Regexer.
func Regexp(re *regexp.Regexp) Regexer {
	return goRegexp{re: re}
}

type goRegexp struct {
	re *regexp.Regexp
}

func (g goRegexp) Match(text string) (int, int, bool) {
	loc := g.re.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

func (g goRegexp) MatchPos(pos int, text string) (int, int, bool) {
	loc := g.re.FindStringIndex(text[pos:])
	if loc == nil {
		return 0, 0, false
	}
	return pos + loc[0], pos + loc[1], true
}

func (g goRegexp) Iterate(text string) iter.Seq[[2]int] {
	return func(yield func([2]int) bool) {
		for _, loc := range g.re.FindAllStringIndex(text, -1) {
			if !yield([2]int{loc[0], loc[1]}) {
				return
			}
		}
	}
}
