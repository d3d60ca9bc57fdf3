package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// recognizeEnum handles "enum" and, via recognizeTypedef's delegation, a
// "typedef enum" rebrand (spec.md §4.6.8). entryKind is the kind the
// eventual name-list tag should carry: Enum for a bare enum, or Typedef
// when reached through a typedef.
func (s *scanner) recognizeEnum(word *Token, entryKind keyword.ParserKind) {
	c := s.skipWhite(s.stream.Next())
	// Optional base type words (e.g. "enum bit [1:0]").
	for {
		if !isIdentStart(c) {
			break
		}
		var tok Token
		if !s.readClassifiedWord(c, &tok) {
			break
		}
		c = s.skipWhite(s.stream.Next())
		c = s.skipDimension(c)
	}

	if c != '{' {
		// Forward declaration.
		proto := *word
		s.emit(&proto, keyword.Prototype)
		if c != 0 {
			s.stream.Unget(c)
		}
		return
	}

	for {
		c = s.skipWhite(s.stream.Next())
		if c == '}' || c == 0 {
			break
		}
		var member Token
		if !s.readClassifiedWord(c, &member) {
			c = s.stream.Next()
			continue
		}
		c = s.skipWhite(s.stream.Next())
		c = s.skipDimension(c)
		if c == '=' {
			c = s.stream.Next()
			depth := 0
			for {
				if c == 0 {
					break
				}
				if c == '{' {
					depth++
				} else if c == '}' {
					if depth == 0 {
						break
					}
					depth--
				} else if c == ',' && depth == 0 {
					break
				}
				c = s.stream.Next()
			}
		}
		member.Kind = keyword.Constant
		s.queueTagContent(&member)
		if c == '}' {
			break
		}
	}

	s.recognizeNameListWithEntry(entryKind)
}
