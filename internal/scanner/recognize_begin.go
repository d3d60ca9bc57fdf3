package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// recognizeBegin implements spec.md §4.6.1's "begin" half: it increments
// the enclosing nest counter and, only when the begin carries a trailing
// ": label", emits a block tag and pushes a BLOCK context for it.
func (s *scanner) recognizeBegin(word *Token) {
	s.ctx.NestLevel++

	c := s.skipWhite(s.stream.Next())
	if c != ':' {
		if c != 0 {
			s.stream.Unget(c)
		}
		return
	}

	c = s.skipWhite(s.stream.Next())
	var label Token
	if !s.readClassifiedWord(c, &label) {
		if c != 0 {
			s.stream.Unget(c)
		}
		return
	}

	blk := Token{Name: label.Name, Line: word.Line, FilePos: word.FilePos}
	s.emit(&blk, keyword.Block)
}
