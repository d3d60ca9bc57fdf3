package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// recognizeStruct handles "struct"/"union" (spec.md §4.6.9).
func (s *scanner) recognizeStruct(word *Token, entryKind keyword.ParserKind) {
	c := s.skipWhite(s.stream.Next())
	consumedWord := false
	for isIdentStart(c) {
		var tok Token
		if !s.readClassifiedWord(c, &tok) {
			break
		}
		consumedWord = true
		if tok.Name != "packed" && tok.Name != "signed" && tok.Name != "unsigned" {
			break
		}
		c = s.skipWhite(s.stream.Next())
		consumedWord = false
	}

	if c != '{' {
		proto := *word
		s.emit(&proto, keyword.Prototype)
		// consumedWord means c is stale (the first rune of an already fully
		// read, unexpected qualifier word, not an unconsumed stream
		// character): ungetting it would reinsert a single stray rune.
		// That input shape is not valid Verilog/SystemVerilog, so it is
		// dropped rather than risking stream corruption (spec.md §9
		// "Transient lists via the same link" applies the same one-rune-
		// pushback discipline throughout this scanner).
		if c != 0 && !consumedWord {
			s.stream.Unget(c)
		}
		return
	}

	c = s.skipWhite(s.skipPastMatch('{', '}'))
	c = s.skipDimension(c)
	if c != 0 {
		s.stream.Unget(c)
	}
	s.recognizeNameListWithEntry(entryKind)
}
