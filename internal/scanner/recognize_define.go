package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// recognizeDefine handles `` `define `` (spec.md §4.6.12): the macro name
// is captured as a constant tag; the rest of the line (the replacement
// text) is never inspected.
func (s *scanner) recognizeDefine() {
	c := s.skipWhite(s.stream.Next())
	var tok Token
	if s.readClassifiedWord(c, &tok) {
		s.emit(&tok, keyword.Constant)
	} else if c != 0 {
		s.stream.Unget(c)
	}
	s.skipToNewLine()
}
