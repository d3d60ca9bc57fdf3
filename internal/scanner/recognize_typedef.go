package scanner

import "github.com/ljwgithub/svtags/pkg/keyword"

// recognizeTypedef handles "typedef" (spec.md §4.6.5).
func (s *scanner) recognizeTypedef(word *Token) {
	c := s.skipWhite(s.stream.Next())
	var tok Token
	if !s.readClassifiedWord(c, &tok) {
		if c != 0 {
			s.stream.Unget(c)
		}
		return
	}

	switch tok.Kind {
	case keyword.Class:
		// Forward declaration: "typedef class Foo;" — the name itself
		// still gets a tag (spec.md §4.6.5 "emit at the next ';'"),
		// rewritten to prototype since nothing ever pushes a scope for
		// the not-yet-defined class.
		s.emitTypedefForwardName()

	case keyword.Interface:
		// "typedef interface class Foo;"
		c2 := s.skipWhite(s.stream.Next())
		var tok2 Token
		if s.readClassifiedWord(c2, &tok2) && tok2.Kind == keyword.Class {
			s.emitTypedefForwardName()
			return
		}
		if c2 != 0 {
			s.stream.Unget(c2)
		}

	case keyword.Enum:
		s.recognizeEnum(word, keyword.Typedef)

	case keyword.Struct:
		s.recognizeStruct(word, keyword.Typedef)

	default:
		s.recognizeTypedefAlias(tok)
	}
}

// emitTypedefForwardName reads the declared name following a "typedef
// class"/"typedef interface class" hint and emits it, rewritten to a
// prototype tag by the Prototype flag it sets first (spec.md §4.6.5). The
// trailing character is left unconsumed so the top-level loop's ';' case
// clears the flag normally.
func (s *scanner) emitTypedefForwardName() {
	c := s.skipWhite(s.stream.Next())
	var name Token
	if !s.readClassifiedWord(c, &name) {
		if c != 0 {
			s.stream.Unget(c)
		}
		return
	}
	s.ctx.Prototype = true
	s.emit(&name, keyword.Typedef)
	c = s.skipWhite(s.stream.Next())
	if c != 0 {
		s.stream.Unget(c)
	}
}

// recognizeTypedefAlias handles the default §4.6.5 path: skip optional
// signed/unsigned, dimensions, and a parameter override, then read the
// final identifier and emit it as a typedef tag. base is the first word
// already read after "typedef" (often the aliased base type, sometimes
// the name itself when there is no base type word).
func (s *scanner) recognizeTypedefAlias(base Token) {
	current := base
	c := s.skipWhite(s.stream.Next())
	for {
		c = s.skipDimension(c)
		if c == '#' {
			nc := s.stream.Next()
			if nc == '(' {
				c = s.skipWhite(s.skipPastMatch('(', ')'))
			} else {
				c = nc
			}
			continue
		}
		if c == ';' || c == 0 {
			break
		}
		if isIdentStart(c) {
			var next Token
			if !s.readClassifiedWord(c, &next) {
				break
			}
			current = next
			c = s.skipWhite(s.stream.Next())
			continue
		}
		c = s.stream.Next()
	}

	if current.Name == "" {
		s.ctx.Prototype = true
	} else {
		s.emit(&current, keyword.Typedef)
	}
	if c != 0 {
		s.stream.Unget(c)
	}
}
