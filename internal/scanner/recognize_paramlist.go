package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// recognizeParamList consumes a "#(...)" list (spec.md §4.6.6). The
// caller must not have consumed the '(' yet; it returns the character
// immediately after the closing ')'. Every captured element is emitted as
// a constant under the current parameter/localparam polarity, which
// toggles as those keywords are encountered inside the list. Every
// element captured here is a design element's own header parameter, so it
// is always eligible for the overridable attribute (spec.md §9's
// documented resolution), subject only to the class/package exclusion in
// paramOverridable.
func (s *scanner) recognizeParamList() rune {
	open := s.stream.Next()
	if open != '(' {
		if open != 0 {
			s.stream.Unget(open)
		}
		return open
	}

	declKind := keyword.Parameter
	c := s.skipWhite(s.stream.Next())

	for {
		switch {
		case c == 0:
			return 0
		case c == ')':
			return s.stream.Next()
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
			switch tok.Kind {
			case keyword.Parameter:
				declKind = keyword.Parameter
				c = s.skipWhite(s.stream.Next())
			case keyword.Localparam:
				declKind = keyword.Localparam
				c = s.skipWhite(s.stream.Next())
			default:
				// Only the last identifier before ',', ')', or '=' is the
				// declarator name; earlier words are type references.
				nc := s.skipWhite(s.stream.Next())
				nc = s.skipDimension(nc)
				switch nc {
				case ',', ')':
					s.emitParam(&tok, declKind, true)
				case '=':
					nc = s.skipExpression(s.stream.Next())
					s.emitParam(&tok, declKind, true)
				}
				c = nc
			}
		}
	}
}
