package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// recognizeClass handles "class" (spec.md §4.6.4).
func (s *scanner) recognizeClass(word *Token) {
	name := s.readNameSkippingIgnore()
	if name.Name == "" {
		return
	}

	c := s.skipWhite(s.stream.Next())
	var params []Token
	if c == '#' {
		params = s.captureParamListTokens()
		c = s.skipWhite(s.stream.Next())
	}

	if isIdentStart(c) {
		var next Token
		if s.readClassifiedWord(c, &next) && next.Name == "extends" {
			nc := s.skipWhite(s.stream.Next())
			var base Token
			if s.readClassifiedWord(nc, &base) {
				name.Inheritance = base.Name
				c = s.skipWhite(s.stream.Next())
			} else {
				c = nc
			}
		} else {
			c = s.skipWhite(s.stream.Next())
		}
	}

	s.emit(&name, keyword.Class)
	for i := range params {
		p := params[i]
		s.emitParam(&p, keyword.Parameter, true)
	}

	if c != 0 {
		s.stream.Unget(c)
	}
}

// captureParamListTokens consumes a "#(...)" list the same way
// recognizeParamList does, but returns the captured declarator tokens
// instead of emitting them immediately — class's own header parameters
// must be emitted only after the class tag itself (spec.md §4.6.4).
func (s *scanner) captureParamListTokens() []Token {
	open := s.stream.Next()
	if open != '(' {
		if open != 0 {
			s.stream.Unget(open)
		}
		return nil
	}

	var out []Token
	c := s.skipWhite(s.stream.Next())
	for {
		switch {
		case c == 0, c == ')':
			return out
		case c == ',':
			c = s.skipWhite(s.stream.Next())
		case c == '`':
			c = s.skipWhite(s.skipMacro(c))
		case c == '[':
			c = s.skipWhite(s.skipDimension(c))
		default:
			var tok Token
			if !s.readClassifiedWord(c, &tok) {
				c = s.stream.Next()
				continue
			}
			if tok.Kind == keyword.Parameter || tok.Kind == keyword.Localparam {
				c = s.skipWhite(s.stream.Next())
				continue
			}
			nc := s.skipWhite(s.stream.Next())
			nc = s.skipDimension(nc)
			switch nc {
			case ',', ')':
				out = append(out, tok)
			case '=':
				nc = s.skipExpression(s.stream.Next())
				out = append(out, tok)
			}
			c = nc
		}
	}
}
