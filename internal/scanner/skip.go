package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// Skip primitives (spec.md §4.2). Each returns the stopping character,
// already consumed from the stream — never left unread — so a caller that
// needs to re-examine it ungets it itself.

// skipWhite reads past whitespace if c is whitespace, returning the first
// non-whitespace character; otherwise returns c unchanged.
func (s *scanner) skipWhite(c rune) rune {
	for isSpace(c) {
		c = s.stream.Next()
	}
	return c
}

// skipPastMatch skips to the matching close, given that open has already
// been consumed by the caller; it returns the character after close.
func (s *scanner) skipPastMatch(open, close rune) rune {
	depth := 1
	for {
		c := s.stream.Next()
		if c == 0 {
			return 0
		}
		switch c {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s.stream.Next()
			}
		}
	}
}

// skipDimension skips zero or more balanced [...] groups (and the
// whitespace between/after them), returning the first non-'[' character.
func (s *scanner) skipDimension(c rune) rune {
	for c == '[' {
		c = s.skipPastMatch('[', ']')
		c = s.skipWhite(c)
	}
	return c
}

func isBracketOrTerminator(r rune) bool {
	switch r {
	case ';', ',', '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

// skipDelay handles '#(...)', '# <value>', and the '##delay' shorthand
// (which it deliberately overshoots to the next ';' — spec.md §9's second
// Open Question, reproduced faithfully). The caller has already consumed
// the leading '#'.
func (s *scanner) skipDelay() rune {
	c := s.stream.Next()
	switch {
	case c == '(':
		return s.skipWhite(s.skipPastMatch('(', ')'))
	case c == '#':
		return s.skipToSemiColon()
	default:
		for c != 0 && !isSpace(c) && !isBracketOrTerminator(c) {
			c = s.stream.Next()
		}
		return s.skipWhite(c)
	}
}

// skipExpression reads until an unbalanced ',', ';', ')', '}', or ']' at
// depth 0, honoring nested (), {}, []. It returns the stopping delimiter.
func (s *scanner) skipExpression(c rune) rune {
	depth := 0
	for {
		switch c {
		case 0:
			return 0
		case '(', '{', '[':
			depth++
		case ')', '}', ']':
			if depth == 0 {
				return c
			}
			depth--
		case ',', ';':
			if depth == 0 {
				return c
			}
		case '"':
			// charstream already collapsed string literals to the filler
			// rune; nothing left to balance here.
		}
		c = s.stream.Next()
	}
}

// skipToSemiColon reads until ';' or EOF, returning whichever was found.
func (s *scanner) skipToSemiColon() rune {
	for {
		c := s.stream.Next()
		if c == 0 || c == ';' {
			return c
		}
	}
}

// skipToNewLine reads until an unescaped '\n' or EOF, honoring a
// line-continuation backslash before the newline.
func (s *scanner) skipToNewLine() rune {
	for {
		c := s.stream.Next()
		if c == 0 {
			return 0
		}
		if c == '\\' {
			nxt := s.stream.Next()
			if nxt == '\n' {
				continue
			}
			if nxt != 0 {
				s.stream.Unget(nxt)
			}
			continue
		}
		if c == '\n' {
			return c
		}
	}
}

// skipMacro handles a '`'-led token encountered where no declaration is
// expected: directives skip to end of line, `` `define `` delegates to the
// define recognizer, and a bare macro invocation followed by '(' skips a
// balanced argument list (spec.md §4.2 skipMacro).
func (s *scanner) skipMacro(c rune) rune {
	if c != '`' {
		return c
	}
	var tok Token
	if !s.readClassifiedWord(c, &tok) {
		return s.stream.Next()
	}
	if tok.Kind == keyword.Define {
		s.recognizeDefine()
		return s.stream.Next()
	}
	if tok.Kind == keyword.Directive {
		return s.skipToNewLine()
	}
	next := s.stream.Next()
	if next == '(' {
		return s.skipPastMatch('(', ')')
	}
	return next
}
