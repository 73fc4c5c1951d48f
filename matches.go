package resplit

import (
	"regexp"
	"unicode/utf8"
)

// Matches is a lazy [MatchSource] over the matches of a compiled regular
// expression in a byte slice. It finds one match per call to Next, scanning
// only the part of the text that has not been consumed yet.
//
// Its spans follow the conventions of [regexp.Regexp.FindAllIndex]: matches
// are non-overlapping and ascending, the scan advances by one rune after a
// zero-length match, and a zero-length match landing exactly on the end of
// the previous match is skipped. Because each scan starts at the current
// position rather than at the beginning of the text, a ^ anchor matches at
// every scan position.
type Matches struct {
	re      *regexp.Regexp
	text    []byte
	pos     int
	prevEnd int
}

// NewMatches returns a lazy match source for the matches of re in text.
func NewMatches(re *regexp.Regexp, text []byte) *Matches {
	return &Matches{re: re, text: text, prevEnd: -1}
}

// Next returns the next match of the expression, or false once the text is
// exhausted.
func (m *Matches) Next() (Span, bool) {
	for m.pos <= len(m.text) {
		loc := m.re.FindIndex(m.text[m.pos:])
		if loc == nil {
			break
		}
		start, end := m.pos+loc[0], m.pos+loc[1]
		if start == end {
			// Step over one rune so the scan always makes progress.
			if end < len(m.text) {
				_, width := utf8.DecodeRune(m.text[end:])
				m.pos = end + width
			} else {
				m.pos = end + 1
			}
			if end == m.prevEnd {
				// An empty match abutting the previous match marks no new
				// boundary; FindAll skips it and so do we.
				continue
			}
		} else {
			m.pos = end
		}
		m.prevEnd = end
		return Span{Start: start, End: end}, true
	}
	m.pos = len(m.text) + 1
	return Span{}, false
}

// StringMatches is like [Matches] but matches against a string.
type StringMatches struct {
	re      *regexp.Regexp
	text    string
	pos     int
	prevEnd int
}

// NewStringMatches returns a lazy match source for the matches of re in
// text.
func NewStringMatches(re *regexp.Regexp, text string) *StringMatches {
	return &StringMatches{re: re, text: text, prevEnd: -1}
}

// Next returns the next match of the expression, or false once the text is
// exhausted.
func (m *StringMatches) Next() (Span, bool) {
	for m.pos <= len(m.text) {
		loc := m.re.FindStringIndex(m.text[m.pos:])
		if loc == nil {
			break
		}
		start, end := m.pos+loc[0], m.pos+loc[1]
		if start == end {
			// Step over one rune so the scan always makes progress.
			if end < len(m.text) {
				_, width := utf8.DecodeRuneInString(m.text[end:])
				m.pos = end + width
			} else {
				m.pos = end + 1
			}
			if end == m.prevEnd {
				// An empty match abutting the previous match marks no new
				// boundary; FindAll skips it and so do we.
				continue
			}
		} else {
			m.pos = end
		}
		m.prevEnd = end
		return Span{Start: start, End: end}, true
	}
	m.pos = len(m.text) + 1
	return Span{}, false
}
