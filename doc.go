/*
Package resplit splits a text at pattern matches while preserving the matched
delimiters.

The standard split operations discard the text that separated the pieces.
This package keeps it: every match of a pattern becomes a cut point, and the
matched delimiter text is attached to either the piece before the cut or the
piece after it, depending on the mode. Concatenating all pieces always
reproduces the original text exactly, with no gaps and no overlaps.

# Overview

Using this package, you can:
  - Split a text after each match, keeping the delimiter at the end of the
    preceding piece (like a lines() that keeps its newlines)
  - Split a text before each match, keeping the delimiter at the start of
    the following piece (useful when the delimiter carries context that
    belongs to the text on its right)
  - Drive either mode from any source of match positions, not just a
    regular expression

All pieces are sub-slices of the input. The package never copies text and
never allocates piece contents; a piece is only valid as long as the text
it was cut from.

# Getting Started

For splitting with a compiled regular expression:
  - [SplitAfter] / [SplitAfterString] - delimiter ends the preceding piece
  - [SplitBefore] / [SplitBeforeString] - delimiter starts the following piece

For splitting with a custom source of match positions:
  - [NewSplitter] / [NewStringSplitter] with a [MatchSource]

For lazy regexp matching on its own:
  - [NewMatches] / [NewStringMatches]

# Splitting After Matches

[DelimiterEnd] mode attaches each matched delimiter to the end of the piece
it terminates:

	re := regexp.MustCompile("\r?\n")
	s := resplit.SplitAfterString(re, "This is just\na set of lines\r\nwith different newlines.")
	for s.Next() {
		fmt.Printf("%q\n", s.Str())
	}
	// "This is just\n"
	// "a set of lines\r\n"
	// "with different newlines."

If the final match ends exactly at the end of the text, no trailing empty
piece is produced. A text with no matches at all yields itself as a single
piece, even when it is empty.

# Splitting Before Matches

[DelimiterStart] mode attaches each matched delimiter to the start of the
piece it introduces:

	re := regexp.MustCompile(`(?m)^-`)
	s := resplit.SplitBeforeString(re, "List of fruits:\n-apple\n-pear\n-banana")
	for s.Next() {
		fmt.Printf("%q\n", s.Str())
	}
	// "List of fruits:\n"
	// "-apple\n"
	// "-pear\n"
	// "-banana"

If the first match starts at offset 0 there is nothing before it, so no
leading empty piece is produced.

# Custom Match Sources

The splitter does not know about regular expressions. It consumes a
[MatchSource], which yields ascending, non-overlapping [Span] values one at
a time. [Matches] and [StringMatches] adapt a [regexp.Regexp] to this
interface; any other matcher (a literal scanner, a different regex engine,
a precomputed list) can be plugged in the same way.

Iteration is fully lazy in both directions: the splitter pulls spans from
its source only as pieces are requested, and requesting no pieces performs
no matching at all.
*/
package resplit
