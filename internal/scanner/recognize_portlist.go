package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// recognizePortList consumes a parenthesized formal port list through its
// terminating ';' (spec.md §4.6.7). The caller must not have consumed the
// '(' yet.
func (s *scanner) recognizePortList() {
	open := s.stream.Next()
	if open != '(' {
		if open != 0 {
			s.stream.Unget(open)
		}
		return
	}

	depth := 1
	for {
		c := s.stream.Next()
		if c == 0 {
			return
		}
		switch c {
		case '(', '{', '[':
			depth++
			continue
		case ')', '}', ']':
			depth--
			continue
		case '`':
			s.skipMacro(c)
			continue
		case '=':
			// A default value may end at a closing bracket, such as the
			// list's own ')'; skipExpression consumes it, so count it here.
			switch s.skipExpression(s.stream.Next()) {
			case ')', '}', ']':
				depth--
			}
			continue
		case ';':
			if depth <= 0 {
				return
			}
			continue
		}
		if !isIdentStart(c) {
			continue
		}
		var tok Token
		if !s.readClassifiedWord(c, &tok) {
			continue
		}
		nc := s.skipWhite(s.stream.Next())
		if nc != 0 {
			s.stream.Unget(nc)
		}
		if isIdentStart(nc) {
			// another word follows directly (a type name before the real
			// declarator, or a qualifier) — not the tag-worthy word yet.
			continue
		}
		if tok.Kind == keyword.Identifier || tok.Kind == keyword.Port {
			s.emit(&tok, keyword.Port)
		}
	}
}
