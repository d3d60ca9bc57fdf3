package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// recognizeNameList handles the generic declarator-list shape used by
// nets, registers, ports, parameters, events, and constants (spec.md
// §4.6.10). word is the classifying keyword already consumed by the
// top-level loop.
func (s *scanner) recognizeNameList(word *Token) {
	s.recognizeNameListWithEntry(word.Kind)
}

// recognizeNameListWithEntry is recognizeNameList's body, reusable by the
// enum/struct recognizers which resume a name-list scan right after a
// "{...}" body (spec.md §4.6.8/§4.6.9's final step).
func (s *scanner) recognizeNameListWithEntry(declKind keyword.ParserKind) {
	actualKind := declKind
	c := s.skipWhite(s.stream.Next())
	if c == '(' {
		c = s.skipWhite(s.skipPastMatch('(', ')'))
	}
	c = s.skipDimension(c)
	if c == '#' {
		c = s.skipWhite(s.skipDelay())
	}

	for {
		if c == 0 {
			return
		}
		if c == '`' {
			c = s.skipWhite(s.skipMacro(c))
			continue
		}
		if !isIdentStart(c) {
			if c != ';' && c != ',' && c != ')' {
				s.stream.Unget(c)
			}
			return
		}

		var tok Token
		if !s.readClassifiedWord(c, &tok) {
			return
		}

		if (tok.Kind == keyword.Net || tok.Kind == keyword.Register) && declKind == keyword.Identifier {
			actualKind = tok.Kind
			c = s.skipWhite(s.stream.Next())
			continue
		}
		if tok.Kind != keyword.Identifier {
			c = s.skipWhite(s.stream.Next())
			continue
		}

		c = s.skipWhite(s.stream.Next())
		c = s.skipDimension(c)

		switch c {
		case '(':
			// Module instance or function-style declarator: not a tag.
			s.skipPastMatch('(', ')')
			return
		case ',':
			s.emit(&tok, actualKind)
			c = s.skipWhite(s.stream.Next())
		case ';', ')':
			s.emit(&tok, actualKind)
			return
		case '=':
			s.emit(&tok, actualKind)
			c = s.skipExpression(s.stream.Next())
			if c == ';' || c == ')' {
				return
			}
			c = s.skipWhite(s.stream.Next())
		default:
			return
		}
	}
}
