package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// readNameSkippingIgnore reads words, discarding IGNORE-classified ones
// (e.g. "virtual", "automatic" between a design-element keyword and its
// name), and returns the first word that is not IGNORE. A zero Token means
// none was found before EOF or an unreadable character.
func (s *scanner) readNameSkippingIgnore() Token {
	for {
		c := s.skipWhite(s.stream.Next())
		var tok Token
		if !s.readClassifiedWord(c, &tok) {
			if c != 0 {
				s.stream.Unget(c)
			}
			return Token{}
		}
		if tok.Kind == keyword.Ignore {
			continue
		}
		return tok
	}
}

// recognizeDesignElement handles module/interface/package/program/property/
// covergroup/modport (spec.md §4.6.2).
func (s *scanner) recognizeDesignElement(word *Token) {
	kind := word.Kind
	name := s.readNameSkippingIgnore()
	if name.Name == "" {
		return
	}
	s.emit(&name, kind)

	c := s.skipWhite(s.stream.Next())
	if c == '#' {
		c = s.skipWhite(s.recognizeParamList())
		s.ctx.HasParamList = true
	}

	switch {
	case c == '(' && kind == keyword.Modport:
		c = s.skipWhite(s.skipPastMatch('(', ')'))
	case c == '(':
		switch kind {
		case keyword.Module, keyword.Task, keyword.Function, keyword.Class,
			keyword.Interface, keyword.Program, keyword.Property:
			s.stream.Unget(c)
			s.recognizePortList()
			return
		default:
			c = s.skipWhite(s.skipPastMatch('(', ')'))
		}
	}

	if c != 0 {
		s.stream.Unget(c)
	}
}
