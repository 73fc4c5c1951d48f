package resplit_test

import (
	"fmt"
	"regexp"

	"github.com/scalecode-solutions/resplit"
)

func ExampleSplitAfterString() {
	re := regexp.MustCompile("\r?\n")
	s := resplit.SplitAfterString(re, "This is just\na set of lines\r\nwith different newlines.")
	for s.Next() {
		fmt.Printf("%q\n", s.Str())
	}
	// Output: "This is just\n"
	//"a set of lines\r\n"
	//"with different newlines."
}

func ExampleSplitBeforeString() {
	re := regexp.MustCompile(`(?m)^-`)
	s := resplit.SplitBeforeString(re, "List of fruits:\n-apple\n-pear\n-banana")
	for s.Next() {
		fmt.Printf("%q\n", s.Str())
	}
	// Output: "List of fruits:\n"
	//"-apple\n"
	//"-pear\n"
	//"-banana"
}

func ExampleSplitAfter() {
	re := regexp.MustCompile(`,\s*`)
	s := resplit.SplitAfter(re, []byte("one, two,three"))
	for s.Next() {
		fmt.Printf("%q\n", s.Bytes())
	}
	// Output: "one, "
	//"two,"
	//"three"
}

func ExampleSplitter_Positions() {
	re := regexp.MustCompile("-")
	text := "a-b-c"
	s := resplit.SplitAfter(re, []byte(text))
	for s.Next() {
		from, to := s.Positions()
		fmt.Println(from, to)
	}
	// Output: 0 2
	//2 4
	//4 5
}

func ExampleNewStringSplitter() {
	// Any source of ascending, non-overlapping spans can drive a splitter.
	// Here the spans are precomputed instead of coming from a regexp.
	src := &spanList{spans: []resplit.Span{{Start: 5, End: 6}, {Start: 12, End: 13}}}
	s := resplit.NewStringSplitter("first second third", src, resplit.DelimiterEnd)
	for s.Next() {
		fmt.Printf("%q\n", s.Str())
	}
	// Output: "first "
	//"second "
	//"third"
}

type spanList struct {
	spans []resplit.Span
}

func (l *spanList) Next() (resplit.Span, bool) {
	if len(l.spans) == 0 {
		return resplit.Span{}, false
	}
	span := l.spans[0]
	l.spans = l.spans[1:]
	return span, true
}
