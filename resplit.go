package resplit

import "regexp"

// SplitAfter returns a splitter over the pieces of text cut after each
// match of re, with the matched delimiter ending the piece that precedes
// it. It is the sub-slice-preserving analogue of [strings.SplitAfter] for
// regular expressions. No matching is performed until the first call to
// [Splitter.Next].
func SplitAfter(re *regexp.Regexp, text []byte) *Splitter {
	return NewSplitter(text, NewMatches(re, text), DelimiterEnd)
}

// SplitBefore returns a splitter over the pieces of text cut before each
// match of re, with the matched delimiter starting the piece that follows
// it. No matching is performed until the first call to [Splitter.Next].
func SplitBefore(re *regexp.Regexp, text []byte) *Splitter {
	return NewSplitter(text, NewMatches(re, text), DelimiterStart)
}

// SplitAfterString is like [SplitAfter] but splits a string.
func SplitAfterString(re *regexp.Regexp, text string) *StringSplitter {
	return NewStringSplitter(text, NewStringMatches(re, text), DelimiterEnd)
}

// SplitBeforeString is like [SplitBefore] but splits a string.
func SplitBeforeString(re *regexp.Regexp, text string) *StringSplitter {
	return NewStringSplitter(text, NewStringMatches(re, text), DelimiterStart)
}
