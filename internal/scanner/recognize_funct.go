package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// recognizeFunctionOrTask handles "function"/"task" (spec.md §4.6.3),
// including the out-of-body "ClassName::method" shape.
func (s *scanner) recognizeFunctionOrTask(word *Token) {
	kind := word.Kind
	var last Token
	classPrefix := ""
	prototype := s.ctx.Prototype

	c := s.skipWhite(s.stream.Next())
	for isIdentStart(c) {
		var tok Token
		if !s.readClassifiedWord(c, &tok) {
			break
		}

		nc := s.stream.Next()
		if nc == ':' {
			nc2 := s.stream.Next()
			if nc2 == ':' {
				classPrefix = tok.Name
				c = s.skipWhite(s.stream.Next())
				continue
			}
			if nc2 != 0 {
				s.stream.Unget(nc2)
			}
		} else if nc != 0 {
			s.stream.Unget(nc)
		}

		last = tok
		c = s.skipWhite(s.stream.Next())
		if c == '(' || c == ';' {
			break
		}
	}

	if last.Name == "" {
		if c != 0 {
			s.stream.Unget(c)
		}
		return
	}

	if classPrefix != "" {
		s.ctx = createContext(s.ctx, keyword.Class, classPrefix)
		s.ctx.ClassScope = true
	}

	s.emit(&last, kind)

	if c == '(' {
		if prototype {
			// An extern/pure declaration still has a formal port list, but
			// emit pushed no scope for it (spec.md §8): skip the parens
			// opaquely rather than scoping ports under the enclosing
			// container, and leave the terminating ';' for the top-level
			// loop to consume so the prototype hint clears normally.
			c = s.skipWhite(s.skipPastMatch('(', ')'))
			for c != ';' && c != 0 {
				c = s.stream.Next()
			}
			if c != 0 {
				s.stream.Unget(c)
			}
			return
		}
		s.stream.Unget(c)
		s.recognizePortList()
		return
	}
	if c != 0 {
		s.stream.Unget(c)
	}
}
