package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// recognizeAssertion handles a labeled assert/assume/cover statement
// (spec.md §4.6.11): the label was captured earlier as the enclosing
// context's BlockName by the top-level loop's ':' handling.
func (s *scanner) recognizeAssertion(word *Token) {
	if s.ctx.BlockName != "" {
		tok := Token{Name: s.ctx.BlockName, Line: word.Line, FilePos: word.FilePos}
		s.emit(&tok, keyword.Assertion)
		s.ctx.BlockName = ""
	}
	s.skipToSemiColon()
}
