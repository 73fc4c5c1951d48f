package resplit

// cuts is the boundary state machine shared by [Splitter] and
// [StringSplitter]. It turns a stream of delimiter spans into a stream of
// piece bounds; the text itself is never consulted, only its length, so the
// same machine serves both text forms.
//
// The machine has two states, active and finished. It becomes finished the
// call after the final piece (the one reaching the end of the text) has been
// produced, and every call while finished reports no piece.
type cuts struct {
	src  MatchSource
	size int // length of the text being split
	mode Mode

	cursor   int  // next unconsumed offset (DelimiterEnd)
	ahead    Span // buffered lookahead span (DelimiterStart)
	hasAhead bool
	started  bool // a piece has been produced
	finished bool
}

// next returns the bounds of the next piece. It advances the match source by
// at most one span per call, except for the first DelimiterStart call on a
// text whose first match starts at offset 0, which needs the following span
// to know where its piece ends.
func (c *cuts) next() (start, end int, ok bool) {
	if c.finished {
		return 0, 0, false
	}
	if c.mode == DelimiterStart {
		return c.nextBefore()
	}
	return c.nextAfter()
}

// nextAfter produces pieces that end with their delimiter. The cursor marks
// the first offset not yet covered by an emitted piece.
func (c *cuts) nextAfter() (start, end int, ok bool) {
	if span, ok := c.src.Next(); ok {
		start = c.cursor
		c.cursor = span.End
		c.started = true
		return start, span.End, true
	}
	c.finished = true
	if c.cursor < c.size || !c.started {
		// The remainder after the last match, or the whole text when there
		// were no matches at all (a single piece even for an empty text).
		c.started = true
		return c.cursor, c.size, true
	}
	// The last match ended exactly at the end of the text; no empty tail.
	return 0, 0, false
}

// nextBefore produces pieces that start with their delimiter. Because a
// match terminates the piece *before* it while the matched text belongs to
// the piece *after* it, the machine keeps a one-span lookahead buffer.
func (c *cuts) nextBefore() (start, end int, ok bool) {
	if !c.started {
		c.started = true
		span, ok := c.src.Next()
		if !ok {
			// No matches: the whole text is the only piece.
			c.finished = true
			return 0, c.size, true
		}
		if span.Start > 0 {
			c.ahead, c.hasAhead = span, true
			return 0, span.Start, true
		}
		// A match at offset 0 has nothing before it; no leading empty
		// piece. Fall through to emit the piece it introduces.
		c.ahead, c.hasAhead = span, true
	}
	if !c.hasAhead {
		c.finished = true
		return 0, 0, false
	}
	start = c.ahead.Start
	if span, ok := c.src.Next(); ok {
		c.ahead = span
		return start, span.Start, true
	}
	c.hasAhead = false
	c.finished = true
	return start, c.size, true
}

// A Splitter iterates over the pieces of a byte slice cut at the spans of a
// [MatchSource]. Instances are created with [NewSplitter], [SplitAfter], or
// [SplitBefore].
//
// A Splitter is bound to one text and one match source for its lifetime and
// is not safe for concurrent use. The sequence it produces cannot be
// restarted: the match source is single-pass.
type Splitter struct {
	text  []byte
	cuts  cuts
	start int
	end   int
}

// NewSplitter returns a splitter over text driven by the given match
// source, attaching delimiters according to mode. No work is performed
// until [Splitter.Next] is called.
func NewSplitter(text []byte, src MatchSource, mode Mode) *Splitter {
	return &Splitter{
		text: text,
		cuts: cuts{src: src, size: len(text), mode: mode},
	}
}

// Next advances the splitter to the next piece. It returns false once all
// pieces have been produced, after which it keeps returning false.
func (s *Splitter) Next() bool {
	start, end, ok := s.cuts.next()
	if !ok {
		s.start, s.end = len(s.text), len(s.text)
		return false
	}
	s.start, s.end = start, end
	return true
}

// Bytes returns the current piece as a sub-slice of the original text. It
// is only valid after a call to [Splitter.Next] that returned true, and
// only as long as the original text is valid.
func (s *Splitter) Bytes() []byte {
	return s.text[s.start:s.end]
}

// Positions returns the byte offsets of the current piece within the
// original text, so that text[from:to] is the piece.
func (s *Splitter) Positions() (from, to int) {
	return s.start, s.end
}

// A StringSplitter is like [Splitter] but iterates over the pieces of a
// string. Instances are created with [NewStringSplitter],
// [SplitAfterString], or [SplitBeforeString].
type StringSplitter struct {
	text  string
	cuts  cuts
	start int
	end   int
}

// NewStringSplitter returns a splitter over text driven by the given match
// source, attaching delimiters according to mode. No work is performed
// until [StringSplitter.Next] is called.
func NewStringSplitter(text string, src MatchSource, mode Mode) *StringSplitter {
	return &StringSplitter{
		text: text,
		cuts: cuts{src: src, size: len(text), mode: mode},
	}
}

// Next advances the splitter to the next piece. It returns false once all
// pieces have been produced, after which it keeps returning false.
func (s *StringSplitter) Next() bool {
	start, end, ok := s.cuts.next()
	if !ok {
		s.start, s.end = len(s.text), len(s.text)
		return false
	}
	s.start, s.end = start, end
	return true
}

// Str returns the current piece as a substring of the original text. It is
// only valid after a call to [StringSplitter.Next] that returned true.
func (s *StringSplitter) Str() string {
	return s.text[s.start:s.end]
}

// Positions returns the byte offsets of the current piece within the
// original text, so that text[from:to] is the piece.
func (s *StringSplitter) Positions() (from, to int) {
	return s.start, s.end
}
