package resplit

// A Span is a matched delimiter's position within a text, given as byte
// offsets. Start and End bound the matched text with the usual slice
// convention, so text[Start:End] is the delimiter itself. A span may be
// empty (Start == End); an empty span attaches no delimiter text but still
// marks a cut point.
type Span struct {
	Start int
	End   int
}

// A MatchSource produces the match positions that drive a [Splitter].
//
// Next returns the next span and true, or a zero span and false once the
// source is exhausted. Sources must yield spans lazily, in ascending order,
// non-overlapping (each span's End is at most the next span's Start), and
// within the bounds of the text the splitter was created with. The splitter
// does not defend against a source that violates this contract.
type MatchSource interface {
	Next() (Span, bool)
}

// Mode selects which side of a cut the matched delimiter is attached to.
// It is the mode argument for [NewSplitter] and [NewStringSplitter].
type Mode int

// These constants define where the matched delimiter ends up in the output.
const (
	DelimiterEnd   Mode = iota // Delimiter ends the piece preceding it.
	DelimiterStart             // Delimiter starts the piece following it.
)
